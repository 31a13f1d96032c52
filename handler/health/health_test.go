package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/coverscope/config"
	"github.com/mager/coverscope/logger"
)

func TestHealthHandler(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewHealthHandler(log, config.Config{YoutubeApiKey: "test-key"})

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusOK)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Errorf("failed to unmarshal response: %v", err)
	}

	if !resp.Server {
		t.Error("handler reported server down")
	}
	if !resp.Youtube {
		t.Error("handler reported youtube unconfigured")
	}
}

func TestHealthHandlerMissingKey(t *testing.T) {
	log, _ := logger.NewTestLogger()
	handler := NewHealthHandler(log, config.Config{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Youtube {
		t.Error("handler reported youtube configured without a key")
	}
}
