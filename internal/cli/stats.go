package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment statistics",
	Long:  `Query the roadguard server for aggregate statistics over stored assessments.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

type statsResponse struct {
	Total    int     `json:"total"`
	Alert    int     `json:"alert"`
	Fatigued int     `json:"fatigued"`
	AvgScore float64 `json:"avg_score"`
}

func runStats(cmd *cobra.Command, args []string) error {
	client := NewClient()

	data, status, err := client.Get("/stats")
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", status, string(data))
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var stats statsResponse
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	fmt.Println("=== Assessment Statistics ===")
	fmt.Printf("Total:     %d\n", stats.Total)
	fmt.Printf("Alert:     %d\n", stats.Alert)
	fmt.Printf("Fatigued:  %d\n", stats.Fatigued)
	fmt.Printf("Avg score: %.1f\n", stats.AvgScore)

	return nil
}
