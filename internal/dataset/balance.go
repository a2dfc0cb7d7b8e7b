package dataset

import (
	"math"
	"math/rand"
	"sort"

	"github.com/roadguard/roadguard/internal/fatigue"
)

// maxNeighbors caps how many nearest minority neighbors a synthetic sample
// may interpolate toward.
const maxNeighbors = 5

// Balance oversamples the minority class until the label distribution is
// uniform, by interpolating between each minority sample and one of its
// nearest minority neighbors in feature space (synthetic minority
// oversampling). Interpolated Likert values are rounded and clamped back into
// the valid range. Majority samples are never altered and the input slice is
// never mutated. Fails with a *fatigue.InsufficientDataError if the minority
// class has fewer than two members.
func Balance(samples []fatigue.QuestionnaireSample, rng *rand.Rand) ([]fatigue.QuestionnaireSample, error) {
	out := make([]fatigue.QuestionnaireSample, len(samples))
	copy(out, samples)

	counts := map[fatigue.Label]int{}
	for _, s := range samples {
		counts[s.Label]++
	}

	minorityLabel, majorityLabel := fatigue.LabelFatigued, fatigue.LabelAlert
	if counts[fatigue.LabelAlert] < counts[fatigue.LabelFatigued] {
		minorityLabel, majorityLabel = fatigue.LabelAlert, fatigue.LabelFatigued
	}

	need := counts[majorityLabel] - counts[minorityLabel]
	if need == 0 {
		return out, nil
	}

	var minority []fatigue.QuestionnaireSample
	for _, s := range samples {
		if s.Label == minorityLabel {
			minority = append(minority, s)
		}
	}
	if len(minority) < 2 {
		return nil, &fatigue.InsufficientDataError{Op: "balance", Need: 2, Got: len(minority)}
	}

	neighbors := nearestNeighbors(minority)

	for i := 0; i < need; i++ {
		base := minority[i%len(minority)]
		nbs := neighbors[i%len(minority)]
		nb := minority[nbs[rng.Intn(len(nbs))]]

		gap := rng.Float64()
		var synth fatigue.QuestionnaireSample
		for j := range synth.Responses {
			v := float64(base.Responses[j]) + gap*float64(nb.Responses[j]-base.Responses[j])
			synth.Responses[j] = clampLikert(int(math.Round(v)))
		}
		synth.Label = minorityLabel
		out = append(out, synth)
	}

	return out, nil
}

// nearestNeighbors returns, for each minority sample, the indices of its
// k nearest minority neighbors by euclidean distance (excluding itself).
func nearestNeighbors(minority []fatigue.QuestionnaireSample) [][]int {
	k := maxNeighbors
	if k > len(minority)-1 {
		k = len(minority) - 1
	}

	result := make([][]int, len(minority))
	for i := range minority {
		type candidate struct {
			idx  int
			dist float64
		}
		candidates := make([]candidate, 0, len(minority)-1)
		for j := range minority {
			if j == i {
				continue
			}
			candidates = append(candidates, candidate{j, likertDistance(minority[i], minority[j])})
		}
		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].dist != candidates[b].dist {
				return candidates[a].dist < candidates[b].dist
			}
			return candidates[a].idx < candidates[b].idx
		})

		nbs := make([]int, k)
		for n := 0; n < k; n++ {
			nbs[n] = candidates[n].idx
		}
		result[i] = nbs
	}
	return result
}

func likertDistance(a, b fatigue.QuestionnaireSample) float64 {
	sum := 0.0
	for j := range a.Responses {
		d := float64(a.Responses[j] - b.Responses[j])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func clampLikert(v int) int {
	if v < fatigue.LikertMin {
		return fatigue.LikertMin
	}
	if v > fatigue.LikertMax {
		return fatigue.LikertMax
	}
	return v
}
