package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get server status, cached models and system usage",
	Long:  `Query the running roadguard server for its trained models and resource usage.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusModel struct {
	Pipeline string `json:"pipeline"`
	Seed     int64  `json:"seed"`
	Samples  int    `json:"samples"`
	Model    string `json:"model"`
}

type statusSystem struct {
	CPUPercent   float64 `json:"cpu_percent"`
	MemPercent   float64 `json:"mem_percent"`
	MemUsedMB    float64 `json:"mem_used_mb"`
	MemTotalMB   float64 `json:"mem_total_mb"`
	ProcessRSSMB float64 `json:"process_rss_mb"`
	Goroutines   int     `json:"goroutines"`
}

type statusResponse struct {
	Name          string        `json:"name"`
	Version       string        `json:"version"`
	UptimeSeconds float64       `json:"uptime_seconds"`
	Records       int           `json:"records"`
	Models        []statusModel `json:"models"`
	System        statusSystem  `json:"system"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := NewClient()

	data, status, err := client.Get("/status")
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", status, string(data))
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var resp statusResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return err
	}

	fmt.Println("=== Server Status ===")
	fmt.Printf("%s %s, up %.0fs, %d records\n", resp.Name, resp.Version, resp.UptimeSeconds, resp.Records)

	fmt.Printf("\nModels:\n")
	if len(resp.Models) == 0 {
		fmt.Println("  none trained yet")
	}
	for _, m := range resp.Models {
		fmt.Printf("  %-13s %s (seed %d, %d samples)\n", m.Pipeline, m.Model, m.Seed, m.Samples)
	}

	fmt.Printf("\nSystem:\n")
	fmt.Printf("  CPU:    %.1f%%\n", resp.System.CPUPercent)
	fmt.Printf("  Memory: %.1f%% (%.0f / %.0f MB)\n", resp.System.MemPercent, resp.System.MemUsedMB, resp.System.MemTotalMB)
	fmt.Printf("  RSS:    %.1f MB, %d goroutines\n", resp.System.ProcessRSSMB, resp.System.Goroutines)

	return nil
}
