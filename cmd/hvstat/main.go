// Command hvstat runs HVStat aggregations offline and loads datasets into
// the database.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/harvest"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/utils"
)

var (
	dataFile string
	timeout  time.Duration
	verbose  bool

	country string
	admin1  string
	admin2  string
)

var rootCmd = &cobra.Command{
	Use:   "hvstat",
	Short: "HVStat crop statistics toolkit",
	Long: `Offline companion of the HVStat explorer API.

Summarize a selection straight from the CSV, export it as a report, or
import the CSV into the database the API reads from.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		utils.InitLogger("development", level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "HVStat CSV file (default: DATASET_PATH)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	for _, cmd := range []*cobra.Command{summarizeCmd, exportCmd} {
		cmd.Flags().StringVar(&country, "country", "", "Country (required)")
		cmd.Flags().StringVar(&admin1, "admin1", "", "Admin-1 unit")
		cmd.Flags().StringVar(&admin2, "admin2", "", "Admin-2 unit (needs --admin1)")
		_ = cmd.MarkFlagRequired("country")
	}

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// datasetPath resolves --file against the environment config
func datasetPath() string {
	if dataFile != "" {
		return dataFile
	}
	return config.LoadConfig().DatasetPath
}

func selection() harvest.Selection {
	return harvest.Selection{Country: country, Admin1: admin1, Admin2: admin2}
}
