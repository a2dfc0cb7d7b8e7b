package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run the fatigue self-assessment questionnaire",
	Long: `Answer the 14-item questionnaire (each item rated 1-5, where 1 means
"strongly disagree" and 5 "strongly agree") and send it to the server for
classification.

Examples:
  roadguard quiz                               # interactive prompts
  roadguard quiz --responses 2,3,1,4,2,3,2,1,3,2,4,2,3,2`,
	RunE: runQuiz,
}

var quizResponses string

func init() {
	quizCmd.Flags().StringVar(&quizResponses, "responses", "", "comma-separated answers (skips prompts)")
	rootCmd.AddCommand(quizCmd)
}

// quizQuestions are statements the driver rates on a 1-5 scale.
var quizQuestions = [...]string{
	"I had trouble keeping my eyes open while driving today.",
	"I feel physically exhausted after my recent shifts.",
	"I caught myself drifting out of my lane or missing exits.",
	"I slept poorly or too little before this shift.",
	"I need caffeine to stay alert behind the wheel.",
	"My reaction to sudden braking ahead feels slower than usual.",
	"I feel irritable or impatient with other drivers.",
	"I find it hard to concentrate on the road for long stretches.",
	"I yawn frequently while driving.",
	"I have briefly nodded off or experienced microsleeps recently.",
	"My eyes feel heavy, dry or strained.",
	"I struggle to remember the last few kilometers I drove.",
	"I feel drowsy during the early afternoon or late night hours.",
	"I would rather pull over and rest than keep driving right now.",
}

type quizRequest struct {
	Responses []int `json:"responses"`
}

type quizResponse struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Model       string  `json:"model"`
}

func runQuiz(cmd *cobra.Command, args []string) error {
	var answers []int
	var err error

	if quizResponses != "" {
		answers, err = parseResponses(quizResponses)
	} else {
		answers, err = promptResponses(os.Stdin)
	}
	if err != nil {
		return err
	}

	client := NewClient()

	data, status, err := client.Post("/questionnaire", quizRequest{Responses: answers})
	if err != nil {
		return fmt.Errorf("failed to submit questionnaire: %w", err)
	}

	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", status, string(data))
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var resp quizResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	fmt.Println("\n=== Questionnaire Result ===")
	fmt.Printf("Verdict: %s (probability %.2f)\n", resp.Label, resp.Probability)
	if resp.Label == "fatigued" {
		fmt.Println("\nConsider resting before continuing to drive.")
	}

	return nil
}

func parseResponses(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(quizQuestions) {
		return nil, fmt.Errorf("expected %d answers, got %d", len(quizQuestions), len(parts))
	}

	answers := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, p)
		}
		if v < 1 || v > 5 {
			return nil, fmt.Errorf("answer %d: %d out of range 1-5", i+1, v)
		}
		answers[i] = v
	}
	return answers, nil
}

func promptResponses(in *os.File) ([]int, error) {
	fmt.Println("Rate each statement from 1 (strongly disagree) to 5 (strongly agree).")
	fmt.Println()

	reader := bufio.NewReader(in)
	answers := make([]int, 0, len(quizQuestions))

	for i, q := range quizQuestions {
		for {
			fmt.Printf("%2d. %s\n    > ", i+1, q)

			line, err := reader.ReadString('\n')
			if err != nil {
				return nil, fmt.Errorf("failed to read answer: %w", err)
			}

			v, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || v < 1 || v > 5 {
				fmt.Println("    please enter a number from 1 to 5")
				continue
			}

			answers = append(answers, v)
			break
		}
	}

	return answers, nil
}
