package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess driver fatigue from behavioral inputs",
	Long: `Submit behavioral inputs to the roadguard server and print the fatigue
score, classifier verdict and risk band.

Examples:
  roadguard assess --sleep 4 --driving 10 --stress 8 --time night --age 45
  roadguard assess --driver alice --sleep 7.5 --rest 3 --json`,
	RunE: runAssess,
}

var (
	assessDriver   string
	assessSleep    float64
	assessDriving  float64
	assessCaffeine float64
	assessRest     float64
	assessStress   int
	assessTime     string
	assessAge      int
)

func init() {
	assessCmd.Flags().StringVar(&assessDriver, "driver", "", "driver identifier")
	assessCmd.Flags().Float64Var(&assessSleep, "sleep", 7, "sleep in the last 24h (hours)")
	assessCmd.Flags().Float64Var(&assessDriving, "driving", 4, "continuous driving time (hours)")
	assessCmd.Flags().Float64Var(&assessCaffeine, "caffeine", 1, "caffeine intake (cups)")
	assessCmd.Flags().Float64Var(&assessRest, "rest", 2, "rest breaks taken")
	assessCmd.Flags().IntVar(&assessStress, "stress", 5, "stress level (1-10)")
	assessCmd.Flags().StringVar(&assessTime, "time", "afternoon", "time of day (morning|afternoon|night)")
	assessCmd.Flags().IntVar(&assessAge, "age", 35, "driver age")
	rootCmd.AddCommand(assessCmd)
}

type assessRequest struct {
	Driver       string  `json:"driver,omitempty"`
	SleepHours   float64 `json:"sleep_hours"`
	DrivingHours float64 `json:"driving_hours"`
	CaffeineCups float64 `json:"caffeine_cups"`
	RestBreaks   float64 `json:"rest_breaks"`
	StressLevel  int     `json:"stress_level"`
	TimeOfDay    string  `json:"time_of_day"`
	Age          int     `json:"age"`
}

type assessResponse struct {
	Score       float64 `json:"score"`
	ScoreMax    float64 `json:"score_max"`
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Risk        string  `json:"risk"`
	Action      string  `json:"action"`
}

func runAssess(cmd *cobra.Command, args []string) error {
	req := assessRequest{
		Driver:       assessDriver,
		SleepHours:   assessSleep,
		DrivingHours: assessDriving,
		CaffeineCups: assessCaffeine,
		RestBreaks:   assessRest,
		StressLevel:  assessStress,
		TimeOfDay:    assessTime,
		Age:          assessAge,
	}

	client := NewClient()

	data, status, err := client.Post("/assess", req)
	if err != nil {
		return fmt.Errorf("failed to assess: %w", err)
	}

	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", status, string(data))
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var resp assessResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	fmt.Println("=== Fatigue Assessment ===")
	if assessDriver != "" {
		fmt.Printf("Driver: %s\n", assessDriver)
	}
	fmt.Printf("Score:  %.1f / %.0f\n", resp.Score, resp.ScoreMax)
	fmt.Printf("Verdict: %s (probability %.2f)\n", resp.Label, resp.Probability)
	fmt.Printf("Risk:   %s\n", resp.Risk)
	fmt.Printf("\n%s\n", resp.Action)

	return nil
}
