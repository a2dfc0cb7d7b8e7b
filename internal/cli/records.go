package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List, export or clear stored assessments",
	Long: `Work with the server's assessment log.

Examples:
  roadguard records                    # list recent assessments
  roadguard records --limit 5
  roadguard records --export out.csv   # download as CSV
  roadguard records --undo             # drop the most recent entry
  roadguard records --clear`,
	RunE: runRecords,
}

var (
	recordsLimit  int
	recordsExport string
	recordsClear  bool
	recordsUndo   bool
)

func init() {
	recordsCmd.Flags().IntVar(&recordsLimit, "limit", 20, "maximum records to list")
	recordsCmd.Flags().StringVar(&recordsExport, "export", "", "write all records to a CSV file")
	recordsCmd.Flags().BoolVar(&recordsClear, "clear", false, "delete all stored records")
	recordsCmd.Flags().BoolVar(&recordsUndo, "undo", false, "delete the most recent record")
	rootCmd.AddCommand(recordsCmd)
}

type recordEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Driver      string    `json:"driver"`
	Score       float64   `json:"score"`
	Label       string    `json:"label"`
	Probability float64   `json:"probability"`
	Risk        string    `json:"risk"`
}

func runRecords(cmd *cobra.Command, args []string) error {
	client := NewClient()

	if recordsClear {
		data, status, err := client.Delete("/records")
		if err != nil {
			return fmt.Errorf("failed to clear records: %w", err)
		}
		if status != http.StatusOK {
			return fmt.Errorf("server returned status %d: %s", status, string(data))
		}
		if jsonOut {
			fmt.Println(string(data))
		} else {
			fmt.Println("records cleared")
		}
		return nil
	}

	if recordsUndo {
		data, status, err := client.Delete("/records/last")
		if err != nil {
			return fmt.Errorf("failed to remove record: %w", err)
		}
		if status == http.StatusNotFound {
			fmt.Println("no records to remove")
			return nil
		}
		if status != http.StatusOK {
			return fmt.Errorf("server returned status %d: %s", status, string(data))
		}
		fmt.Println("last record removed")
		return nil
	}

	if recordsExport != "" {
		data, status, err := client.Get("/records/export")
		if err != nil {
			return fmt.Errorf("failed to export records: %w", err)
		}
		if status != http.StatusOK {
			return fmt.Errorf("server returned status %d: %s", status, string(data))
		}
		if err := os.WriteFile(recordsExport, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", recordsExport, err)
		}
		fmt.Printf("exported to %s\n", recordsExport)
		return nil
	}

	data, status, err := client.Get(fmt.Sprintf("/records?limit=%d", recordsLimit))
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", status, string(data))
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var list []recordEntry
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("no assessments recorded yet")
		return nil
	}

	fmt.Printf("%-20s %-12s %7s  %-8s %-8s\n", "TIME", "DRIVER", "SCORE", "LABEL", "RISK")
	for _, r := range list {
		driver := r.Driver
		if driver == "" {
			driver = "-"
		}
		fmt.Printf("%-20s %-12s %7.1f  %-8s %-8s\n",
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			driver, r.Score, r.Label, r.Risk)
	}

	return nil
}
