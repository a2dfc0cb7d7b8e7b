package model

import "math"

// BoostConfig holds gradient boosting hyperparameters. Fixed configuration,
// not learned.
type BoostConfig struct {
	Rounds          int
	MaxDepth        int
	MinSamplesSplit int
	LearningRate    float64
}

// DefaultBoostConfig returns the pinned questionnaire pipeline defaults.
func DefaultBoostConfig() BoostConfig {
	return BoostConfig{
		Rounds:          150,
		MaxDepth:        3,
		MinSamplesSplit: 2,
		LearningRate:    0.1,
	}
}

// Boost is an ensemble of shallow regression trees boosted on logistic loss.
// Training is fully deterministic: every round fits the full gradient, no
// subsampling.
type Boost struct {
	bias  float64
	rate  float64
	trees []*treeNode
}

// TrainBoost fits gradient-boosted trees on 0/1 class labels. Each round fits
// a regression tree to the residuals of the current log-odds and shrinks its
// step by the learning rate.
func TrainBoost(x [][]float64, y []int, cfg BoostConfig) *Boost {
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultBoostConfig().Rounds
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultBoostConfig().MaxDepth
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	if cfg.LearningRate <= 0 || cfg.LearningRate > 1 {
		cfg.LearningRate = DefaultBoostConfig().LearningRate
	}

	n := len(x)
	pos := 0
	for _, v := range y {
		if v == 1 {
			pos++
		}
	}
	p := clampProb(float64(pos) / float64(n))
	bias := math.Log(p / (1 - p))

	margin := make([]float64, n)
	for i := range margin {
		margin[i] = bias
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	residual := make([]float64, n)
	tc := treeConfig{
		maxDepth:        cfg.MaxDepth,
		minSamplesSplit: cfg.MinSamplesSplit,
	}

	trees := make([]*treeNode, 0, cfg.Rounds)
	for round := 0; round < cfg.Rounds; round++ {
		for i := range residual {
			residual[i] = float64(y[i]) - sigmoid(margin[i])
		}

		tree := growTree(x, residual, idx, 0, tc, nil)
		trees = append(trees, tree)

		for i := range margin {
			margin[i] += cfg.LearningRate * tree.eval(x[i])
		}
	}

	return &Boost{bias: bias, rate: cfg.LearningRate, trees: trees}
}

// Name returns the classifier name.
func (b *Boost) Name() string {
	return "gradient_boost"
}

// Predict returns the sigmoid of the boosting margin for x: the ensemble's
// estimated probability of the fatigued class. Not calibrated; a relative
// confidence signal only.
func (b *Boost) Predict(x []float64) float64 {
	m := b.bias
	for _, t := range b.trees {
		m += b.rate * t.eval(x)
	}
	return sigmoid(m)
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}

func clampProb(p float64) float64 {
	const eps = 1e-6
	if p < eps {
		return eps
	}
	if p > 1-eps {
		return 1 - eps
	}
	return p
}
