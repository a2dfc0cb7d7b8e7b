package model

import (
	"math/rand"
	"sort"
)

// treeNode is one node of a CART tree. Leaves hold a value: the fatigued
// fraction for classification trees, the fitted residual step for regression
// trees.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	value     float64
}

func (n *treeNode) eval(x []float64) float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// treeConfig holds the growth limits shared by both ensembles.
type treeConfig struct {
	maxDepth        int
	minSamplesSplit int
	// featuresPerSplit limits the candidate features considered at each
	// split. Zero means all features (no subsampling, rng unused).
	featuresPerSplit int
}

// growTree fits a CART tree to target over the rows in idx by recursive
// variance-reduction splitting. On 0/1 targets variance splitting picks the
// same splits as gini impurity, so one splitter serves classification and
// regression alike.
func growTree(x [][]float64, target []float64, idx []int, depth int, cfg treeConfig, rng *rand.Rand) *treeNode {
	sum := 0.0
	for _, i := range idx {
		sum += target[i]
	}
	mean := sum / float64(len(idx))

	if depth >= cfg.maxDepth || len(idx) < cfg.minSamplesSplit || isPure(target, idx, mean) {
		return &treeNode{leaf: true, value: mean}
	}

	feature, threshold, ok := bestSplit(x, target, idx, cfg, rng)
	if !ok {
		return &treeNode{leaf: true, value: mean}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, value: mean}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(x, target, left, depth+1, cfg, rng),
		right:     growTree(x, target, right, depth+1, cfg, rng),
	}
}

func isPure(target []float64, idx []int, mean float64) bool {
	const eps = 1e-12
	for _, i := range idx {
		d := target[i] - mean
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// bestSplit searches the candidate features for the split maximizing the
// sum-of-squares reduction. Thresholds are midpoints between adjacent
// distinct values.
func bestSplit(x [][]float64, target []float64, idx []int, cfg treeConfig, rng *rand.Rand) (int, float64, bool) {
	nFeatures := len(x[idx[0]])

	features := make([]int, nFeatures)
	for i := range features {
		features[i] = i
	}
	if cfg.featuresPerSplit > 0 && cfg.featuresPerSplit < nFeatures {
		rng.Shuffle(nFeatures, func(a, b int) {
			features[a], features[b] = features[b], features[a]
		})
		features = features[:cfg.featuresPerSplit]
	}

	type pair struct {
		value  float64
		target float64
	}
	pairs := make([]pair, len(idx))

	var (
		total float64
		found bool
		best  float64
		bestF int
		bestT float64
	)
	for _, i := range idx {
		total += target[i]
	}

	n := float64(len(idx))
	// Baseline objective: all rows in one node.
	baseline := total * total / n

	for _, f := range features {
		for p, i := range idx {
			pairs[p] = pair{value: x[i][f], target: target[i]}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].value < pairs[b].value })

		var leftSum float64
		for p := 0; p < len(pairs)-1; p++ {
			leftSum += pairs[p].target
			if pairs[p].value == pairs[p+1].value {
				continue
			}

			nl := float64(p + 1)
			nr := n - nl
			rightSum := total - leftSum

			// Maximizing the per-side squared sums minimizes the residual
			// sum of squares.
			objective := leftSum*leftSum/nl + rightSum*rightSum/nr
			if !found || objective > best {
				found = true
				best = objective
				bestF = f
				bestT = (pairs[p].value + pairs[p+1].value) / 2
			}
		}
	}

	if !found || best <= baseline {
		return 0, 0, false
	}
	return bestF, bestT, true
}
