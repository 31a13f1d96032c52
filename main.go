package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mager/coverscope/config"
	"github.com/mager/coverscope/handler/health"
	indexHandler "github.com/mager/coverscope/handler/index"
	resultsHandler "github.com/mager/coverscope/handler/results"
	"github.com/mager/coverscope/logger"
	"github.com/mager/coverscope/youtube"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

func main() {
	fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			youtube.Options,
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

func NewHTTPServer(
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg config.Config,
	youtubeClient *youtube.YoutubeClient,
) *http.Server {
	r := mux.NewRouter()

	// Define handlers
	for _, route := range []Route{
		indexHandler.NewIndexHandler(log),
		resultsHandler.NewResultsHandler(log, youtubeClient),
		health.NewHealthHandler(log, cfg),
	} {
		r.Handle(route.Pattern(), route)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: r}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infof("Starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
