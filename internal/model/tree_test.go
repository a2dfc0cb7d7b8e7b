package model

import (
	"math/rand"
	"testing"
)

func TestGrowTree_PureLeaf(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}}
	target := []float64{1, 1, 1}
	idx := []int{0, 1, 2}

	tree := growTree(x, target, idx, 0, treeConfig{maxDepth: 5, minSamplesSplit: 2}, nil)
	if !tree.leaf {
		t.Fatal("pure targets should yield a leaf")
	}
	if tree.value != 1 {
		t.Errorf("leaf value = %f, want 1", tree.value)
	}
}

func TestGrowTree_SimpleSplit(t *testing.T) {
	// Perfectly separable on feature 0 at 2.5.
	x := [][]float64{{1}, {2}, {3}, {4}}
	target := []float64{0, 0, 1, 1}
	idx := []int{0, 1, 2, 3}

	tree := growTree(x, target, idx, 0, treeConfig{maxDepth: 5, minSamplesSplit: 2}, nil)
	if tree.leaf {
		t.Fatal("expected an internal node")
	}

	if got := tree.eval([]float64{1.5}); got != 0 {
		t.Errorf("eval(1.5) = %f, want 0", got)
	}
	if got := tree.eval([]float64{3.5}); got != 1 {
		t.Errorf("eval(3.5) = %f, want 1", got)
	}
}

func TestGrowTree_RespectsMaxDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 200
	x := make([][]float64, n)
	target := make([]float64, n)
	idx := make([]int, n)
	for i := range x {
		x[i] = []float64{rng.Float64(), rng.Float64()}
		target[i] = rng.Float64()
		idx[i] = i
	}

	tree := growTree(x, target, idx, 0, treeConfig{maxDepth: 3, minSamplesSplit: 2}, nil)
	if got := treeDepth(tree); got > 3 {
		t.Errorf("tree depth %d exceeds limit 3", got)
	}
}

func TestGrowTree_PicksInformativeFeature(t *testing.T) {
	// Feature 1 is noise, feature 0 separates the classes.
	x := [][]float64{
		{0, 9}, {0.1, 1}, {0.2, 5}, {0.3, 7},
		{5, 2}, {5.1, 8}, {5.2, 3}, {5.3, 6},
	}
	target := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	idx := []int{0, 1, 2, 3, 4, 5, 6, 7}

	tree := growTree(x, target, idx, 0, treeConfig{maxDepth: 4, minSamplesSplit: 2}, nil)
	if tree.leaf {
		t.Fatal("expected a split")
	}
	if tree.feature != 0 {
		t.Errorf("split on feature %d, want 0", tree.feature)
	}
}

func treeDepth(n *treeNode) int {
	if n.leaf {
		return 0
	}
	l := treeDepth(n.left)
	r := treeDepth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
