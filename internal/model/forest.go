package model

import (
	"math"
	"math/rand"
)

// ForestConfig holds random forest hyperparameters. Fixed configuration, not
// learned.
type ForestConfig struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	// FeaturesPerSplit is the candidate feature count per split.
	// Zero selects sqrt(feature count).
	FeaturesPerSplit int
}

// DefaultForestConfig returns the pinned behavioral pipeline defaults.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:           300,
		MaxDepth:        12,
		MinSamplesSplit: 2,
	}
}

// Forest is a bagged ensemble of classification trees.
type Forest struct {
	trees []*treeNode
}

// TrainForest fits a random forest on 0/1 class labels: each tree is grown on
// a bootstrap sample with per-split feature subsampling. Deterministic for a
// fixed rng.
func TrainForest(x [][]float64, y []int, cfg ForestConfig, rng *rand.Rand) *Forest {
	if cfg.Trees <= 0 {
		cfg.Trees = DefaultForestConfig().Trees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultForestConfig().MaxDepth
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}

	nFeatures := len(x[0])
	k := cfg.FeaturesPerSplit
	if k <= 0 {
		k = int(math.Sqrt(float64(nFeatures)))
		if k < 1 {
			k = 1
		}
	}

	target := make([]float64, len(y))
	for i, v := range y {
		target[i] = float64(v)
	}

	tc := treeConfig{
		maxDepth:         cfg.MaxDepth,
		minSamplesSplit:  cfg.MinSamplesSplit,
		featuresPerSplit: k,
	}

	trees := make([]*treeNode, cfg.Trees)
	idx := make([]int, len(x))
	for t := range trees {
		for i := range idx {
			idx[i] = rng.Intn(len(x))
		}
		trees[t] = growTree(x, target, idx, 0, tc, rng)
	}

	return &Forest{trees: trees}
}

// Name returns the classifier name.
func (f *Forest) Name() string {
	return "random_forest"
}

// Predict returns the fraction of trees voting fatigued for x. The ensemble
// label is the majority vote, so fatigued corresponds to a fraction of at
// least one half.
func (f *Forest) Predict(x []float64) float64 {
	votes := 0
	for _, t := range f.trees {
		if t.eval(x) >= 0.5 {
			votes++
		}
	}
	return float64(votes) / float64(len(f.trees))
}
