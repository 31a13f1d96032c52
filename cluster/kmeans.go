package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// kMeansFit runs Lloyd's algorithm with random restarts and returns the
// labeling with the lowest within-cluster sum of squares, plus its centers.
// Callers must guarantee k <= number of rows.
func kMeansFit(X *mat.Dense, k, restarts, maxIter int, rng *rand.Rand) ([]int, *mat.Dense) {
	n, d := X.Dims()

	bestInertia := math.Inf(1)
	bestLabels := make([]int, n)
	bestCenters := mat.NewDense(k, d, nil)

	labels := make([]int, n)
	for r := 0; r < restarts; r++ {
		centers := initCenters(X, k, rng)
		for i := range labels {
			labels[i] = -1
		}

		for iter := 0; iter < maxIter; iter++ {
			changed := false
			for i := 0; i < n; i++ {
				c := nearest(X.RawRowView(i), centers)
				if c != labels[i] {
					labels[i] = c
					changed = true
				}
			}
			if !changed {
				break
			}
			recomputeCenters(X, labels, centers, rng)
		}

		inertia := 0.0
		for i := 0; i < n; i++ {
			inertia += sqDist(X.RawRowView(i), centers.RawRowView(labels[i]))
		}
		if inertia < bestInertia {
			bestInertia = inertia
			copy(bestLabels, labels)
			bestCenters.Copy(centers)
		}
	}
	return bestLabels, bestCenters
}

// initCenters seeds centers from k distinct input rows.
func initCenters(X *mat.Dense, k int, rng *rand.Rand) *mat.Dense {
	n, d := X.Dims()
	centers := mat.NewDense(k, d, nil)
	for c, i := range rng.Perm(n)[:k] {
		centers.SetRow(c, X.RawRowView(i))
	}
	return centers
}

func nearest(p []float64, centers *mat.Dense) int {
	k, _ := centers.Dims()
	best, bestDist := 0, math.Inf(1)
	for c := 0; c < k; c++ {
		if dist := sqDist(p, centers.RawRowView(c)); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// recomputeCenters averages each cluster's members. A cluster left empty is
// reseeded from a random input row so k partitions survive.
func recomputeCenters(X *mat.Dense, labels []int, centers *mat.Dense, rng *rand.Rand) {
	n, d := X.Dims()
	k, _ := centers.Dims()

	counts := make([]int, k)
	sums := mat.NewDense(k, d, nil)
	for i := 0; i < n; i++ {
		c := labels[i]
		counts[c]++
		row := sums.RawRowView(c)
		for j, x := range X.RawRowView(i) {
			row[j] += x
		}
	}

	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			centers.SetRow(c, X.RawRowView(rng.Intn(n)))
			continue
		}
		row := sums.RawRowView(c)
		for j := range row {
			row[j] /= float64(counts[c])
		}
		centers.SetRow(c, row)
	}
}
