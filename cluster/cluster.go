// Package cluster groups covers by text similarity: TF-IDF over
// title+description, KMeans partitioning, keyword-based cluster naming, and a
// PCA projection for the scatter plot. The grouping is experimental and never
// overrides the rule-based categories.
package cluster

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/mager/coverscope/classify"
	"github.com/mager/coverscope/coverscope"
	"github.com/mager/coverscope/util"
	"gonum.org/v1/gonum/mat"
)

const (
	numClusters    = 4
	maxFeatures    = 800
	kmeansRestarts = 10
	kmeansMaxIter  = 100
	// Fixed seed keeps cluster assignments repeatable across requests.
	kmeansSeed  = 42
	topKeywords = 5
	titleMax    = 60
)

// ErrInsufficientData means there are too few covers to run KMeans. Callers
// omit the experimental panel and keep the rule-based results.
var ErrInsufficientData = errors.New("not enough covers to cluster")

type Result struct {
	// Labels holds one cluster id per input video, in input order.
	Labels   []int
	Names    map[int]string
	Keywords map[string][]string
	Points   []coverscope.ScatterPoint
	Stats    []coverscope.ClusterStat
}

// Covers clusters the given videos. It returns ErrInsufficientData when there
// are fewer videos than clusters or the corpus yields no usable terms.
func Covers(videos []coverscope.Video) (*Result, error) {
	if len(videos) < numClusters {
		return nil, ErrInsufficientData
	}

	corpus := make([]string, len(videos))
	for i, v := range videos {
		corpus[i] = strings.TrimSpace(v.Title + " " + v.Description)
	}

	vec := fitVectorizer(corpus, maxFeatures)
	if len(vec.terms) == 0 {
		return nil, ErrInsufficientData
	}
	X := vec.transform(corpus)

	rng := rand.New(rand.NewSource(kmeansSeed))
	labels, centers := kMeansFit(X, numClusters, kmeansRestarts, kmeansMaxIter, rng)

	names := clusterNames(corpus, labels)
	keywords := topTerms(centers, vec.terms, names)

	coords := project2D(X)
	points := make([]coverscope.ScatterPoint, len(videos))
	for i, v := range videos {
		points[i] = coverscope.ScatterPoint{
			X:     coords[i][0],
			Y:     coords[i][1],
			Label: names[labels[i]],
			Title: util.Truncate(v.Title, titleMax),
		}
	}

	return &Result{
		Labels:   labels,
		Names:    names,
		Keywords: keywords,
		Points:   points,
		Stats:    clusterStats(videos, labels, names, keywords),
	}, nil
}

// clusterNames maps each cluster id to the category whose keyword bucket has
// the most hits across the cluster's documents, falling back to Other.
func clusterNames(corpus []string, labels []int) map[int]string {
	texts := make(map[int][]string)
	for i, lab := range labels {
		texts[lab] = append(texts[lab], strings.ToLower(corpus[i]))
	}

	groups := classify.Groups()
	names := make(map[int]string, len(texts))
	for lab, docs := range texts {
		counts := make(map[string]int, len(groups))
		for name, keywords := range groups {
			hits := 0
			for _, doc := range docs {
				for _, kw := range keywords {
					if strings.Contains(doc, kw) {
						hits++
					}
				}
			}
			counts[name] = hits
		}

		ranked := util.RankByCount(counts)
		if counts[ranked[0]] == 0 {
			names[lab] = classify.Other.Name
		} else {
			names[lab] = ranked[0]
		}
	}
	return names
}

// topTerms finds the highest-weighted centroid terms per named cluster. When
// two clusters share a name the lower cluster id wins.
func topTerms(centers *mat.Dense, terms []string, names map[int]string) map[string][]string {
	k, _ := centers.Dims()

	firstIdx := make(map[string]int)
	for lab := 0; lab < k; lab++ {
		name, ok := names[lab]
		if !ok {
			continue
		}
		if _, seen := firstIdx[name]; !seen {
			firstIdx[name] = lab
		}
	}

	out := make(map[string][]string, len(firstIdx))
	for name, lab := range firstIdx {
		row := centers.RawRowView(lab)
		idx := make([]int, len(row))
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return row[idx[a]] > row[idx[b]] })

		var top []string
		for _, j := range idx {
			if row[j] <= 0 || len(top) == topKeywords {
				break
			}
			top = append(top, terms[j])
		}
		out[name] = top
	}
	return out
}

// project2D computes PCA scores of the row-centered matrix via a thin SVD and
// keeps the first two components.
func project2D(X *mat.Dense) [][2]float64 {
	n, d := X.Dims()
	coords := make([][2]float64, n)

	centered := mat.DenseCopyOf(X)
	for j := 0; j < d; j++ {
		mean := 0.0
		for i := 0; i < n; i++ {
			mean += centered.At(i, j)
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			centered.Set(i, j, centered.At(i, j)-mean)
		}
	}

	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return coords
	}
	var u mat.Dense
	svd.UTo(&u)
	s := svd.Values(nil)

	for i := 0; i < n; i++ {
		coords[i][0] = u.At(i, 0) * s[0]
		if len(s) > 1 {
			coords[i][1] = u.At(i, 1) * s[1]
		}
	}
	return coords
}

func clusterStats(videos []coverscope.Video, labels []int, names map[int]string, keywords map[string][]string) []coverscope.ClusterStat {
	sizes := make([]int, numClusters)
	views := make([]int64, numClusters)
	for i, lab := range labels {
		sizes[lab]++
		views[lab] += videos[i].Views
	}

	var stats []coverscope.ClusterStat
	for lab := 0; lab < numClusters; lab++ {
		if sizes[lab] == 0 {
			continue
		}
		name := names[lab]
		stats = append(stats, coverscope.ClusterStat{
			Name:     name,
			Size:     sizes[lab],
			AvgViews: float64(views[lab]) / float64(sizes[lab]),
			Keywords: keywords[name],
		})
	}
	return stats
}
