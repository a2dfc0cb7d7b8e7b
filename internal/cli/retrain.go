package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var retrainCmd = &cobra.Command{
	Use:   "retrain",
	Short: "Retrain both classification models",
	Long: `Drop the server's cached models and retrain both pipelines.

Examples:
  roadguard retrain
  roadguard retrain --seed 7`,
	RunE: runRetrain,
}

var retrainSeed int64

func init() {
	retrainCmd.Flags().Int64Var(&retrainSeed, "seed", -1, "training seed (default: server config)")
	rootCmd.AddCommand(retrainCmd)
}

func runRetrain(cmd *cobra.Command, args []string) error {
	body := map[string]any{}
	if cmd.Flags().Changed("seed") {
		body["seed"] = retrainSeed
	}

	client := NewClient()

	data, status, err := client.Post("/retrain", body)
	if err != nil {
		return fmt.Errorf("failed to retrain: %w", err)
	}

	if status != http.StatusOK {
		return fmt.Errorf("server returned status %d: %s", status, string(data))
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	fmt.Println("models retrained")
	return nil
}
