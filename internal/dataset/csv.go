package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/roadguard/roadguard/internal/fatigue"
)

// labelColumn is the header of the final CSV column.
const labelColumn = "label"

// LoadQuestionnaireCSV reads a caller-provided questionnaire dataset. The
// file must carry exactly the 14 Likert columns plus a label column, in the
// canonical feature order; a different shape fails with a
// *fatigue.SchemaMismatchError. Responses are clamped into the Likert range
// per the standard clamping policy; an unparsable cell or unknown label fails
// with a *fatigue.ValidationError. The engine only ever reads this file.
func LoadQuestionnaireCSV(r io.Reader) ([]fatigue.QuestionnaireSample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	want := append(fatigue.QuestionnaireFeatureNames(), labelColumn)
	if len(header) != len(want) {
		return nil, &fatigue.SchemaMismatchError{Want: len(want), Got: len(header)}
	}
	for i, name := range want {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, &fatigue.ValidationError{
				Field:  "header",
				Reason: fmt.Sprintf("column %d is %q, expected %q", i+1, header[i], name),
			}
		}
	}

	var samples []fatigue.QuestionnaireSample
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		if len(record) != len(want) {
			return nil, &fatigue.SchemaMismatchError{Want: len(want), Got: len(record)}
		}

		responses := make([]int, fatigue.QuestionCount)
		for i := 0; i < fatigue.QuestionCount; i++ {
			v, err := strconv.Atoi(strings.TrimSpace(record[i]))
			if err != nil {
				return nil, &fatigue.ValidationError{
					Field:  want[i],
					Reason: fmt.Sprintf("line %d: not an integer: %q", line, record[i]),
				}
			}
			responses[i] = v
		}

		sample, err := fatigue.ValidateResponses(responses)
		if err != nil {
			return nil, err
		}

		label := fatigue.Label(strings.ToLower(strings.TrimSpace(record[fatigue.QuestionCount])))
		if !label.IsValid() {
			return nil, &fatigue.ValidationError{
				Field:  labelColumn,
				Reason: fmt.Sprintf("line %d: unknown label %q", line, record[fatigue.QuestionCount]),
			}
		}
		sample.Label = label
		samples = append(samples, sample)
	}

	return samples, nil
}

// LoadQuestionnaireCSVFile opens path read-only and loads it.
func LoadQuestionnaireCSVFile(path string) ([]fatigue.QuestionnaireSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return LoadQuestionnaireCSV(f)
}
