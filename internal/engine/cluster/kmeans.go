package cluster

import (
	"fmt"
	"math"
	"math/rand"
)

// kmeans partitions rows into k groups by Lloyd iteration: assign each row
// to its nearest centroid, recompute centroids as the mean of assigned
// rows, repeat until stable or maxIter is exhausted. It restarts nInit
// times from k-means++-style seeds drawn from a fixed-seed source and
// keeps the run with the lowest inertia, so results are reproducible for a
// fixed seed and input order.
func kmeans(rows [][]float64, k, maxIter, nInit int, seed int64) (labels []int, centroids [][]float64, err error) {
	if k < 1 {
		return nil, nil, fmt.Errorf("cluster: k must be at least 1, got %d", k)
	}
	if len(rows) < k {
		return nil, nil, fmt.Errorf("cluster: k=%d exceeds %d rows", k, len(rows))
	}

	rng := rand.New(rand.NewSource(seed))
	bestInertia := math.Inf(1)
	for run := 0; run < nInit; run++ {
		runLabels, runCentroids := lloyd(rows, k, maxIter, rng)
		inertia := totalInertia(rows, runCentroids, runLabels)
		if inertia < bestInertia {
			bestInertia = inertia
			labels = runLabels
			centroids = runCentroids
		}
	}
	return labels, centroids, nil
}

// lloyd runs one k-means pass from fresh seeds.
func lloyd(rows [][]float64, k, maxIter int, rng *rand.Rand) ([]int, [][]float64) {
	centroids := seedCentroids(rows, k, rng)
	labels := make([]int, len(rows))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, row := range rows {
			best := nearest(row, centroids)
			if best != labels[i] {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}
		recompute(rows, labels, centroids)
	}
	return labels, centroids
}

// seedCentroids picks k initial centroids k-means++ style: the first
// uniformly at random, each subsequent one weighted by squared distance to
// the nearest centroid chosen so far.
func seedCentroids(rows [][]float64, k int, rng *rand.Rand) [][]float64 {
	dim := len(rows[0])
	centroids := make([][]float64, 0, k)

	first := rows[rng.Intn(len(rows))]
	centroids = append(centroids, append(make([]float64, 0, dim), first...))

	dists := make([]float64, len(rows))
	for len(centroids) < k {
		var total float64
		for i, row := range rows {
			d := sqDist(row, centroids[len(centroids)-1])
			if len(centroids) == 1 || d < dists[i] {
				dists[i] = d
			}
			total += dists[i]
		}

		var next int
		if total == 0 {
			// All rows coincide with a centroid; fall back to uniform.
			next = rng.Intn(len(rows))
		} else {
			target := rng.Float64() * total
			var acc float64
			for i, d := range dists {
				acc += d
				if acc >= target {
					next = i
					break
				}
			}
		}
		centroids = append(centroids, append(make([]float64, 0, dim), rows[next]...))
	}
	return centroids
}

// recompute replaces each centroid with the mean of its assigned rows. A
// centroid that lost every row is reseeded to the row farthest from its
// current assignment, which keeps the partition at exactly k groups.
func recompute(rows [][]float64, labels []int, centroids [][]float64) {
	dim := len(centroids[0])
	counts := make([]int, len(centroids))
	for c := range centroids {
		centroids[c] = make([]float64, dim)
	}
	for i, row := range rows {
		c := labels[i]
		counts[c]++
		for j, v := range row {
			centroids[c][j] += v
		}
	}
	for c := range centroids {
		if counts[c] == 0 {
			copy(centroids[c], farthestRow(rows, labels, centroids))
			continue
		}
		for j := range centroids[c] {
			centroids[c][j] /= float64(counts[c])
		}
	}
}

func farthestRow(rows [][]float64, labels []int, centroids [][]float64) []float64 {
	var worst float64 = -1
	var pick []float64
	for i, row := range rows {
		d := sqDist(row, centroids[labels[i]])
		if d > worst {
			worst = d
			pick = row
		}
	}
	return pick
}

func nearest(row []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDist(row, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func totalInertia(rows [][]float64, centroids [][]float64, labels []int) float64 {
	var sum float64
	for i, row := range rows {
		sum += sqDist(row, centroids[labels[i]])
	}
	return sum
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for j := range a {
		d := a[j] - b[j]
		sum += d * d
	}
	return sum
}
