package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/core/dataset"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/repositories"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/modules/hvstat/services"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/hvstat-explorer-be/internal/shared/database"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the database records with the CSV contents",
	Long: `Parse the HVStat CSV and replace the hvstat_crop_records table with it in
one transaction. An hvstat_dataset_imports row records the load.

Run "migrate -module hvstat" first.`,
	RunE: runImport,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored row count and the latest import",
	RunE:  runStatus,
}

// openImportService connects to DATABASE_URL; call the returned func to close it
func openImportService() (*services.ImportService, func(), error) {
	cfg := config.LoadConfig()

	db, err := database.NewDB(cfg.DatabaseURL, verbose)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = db.Close() }
	return services.NewImportService(repositories.NewCropRecordRepo(db.GORM)), closeDB, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	svc, closeDB, err := openImportService()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	imp, err := svc.Import(ctx, dataset.NewFileLoader(datasetPath()))
	if err != nil {
		return err
	}

	stats, err := imp.DecodeStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📥 Imported %d rows from %s\n", imp.RowCount, imp.Source)
	fmt.Fprintf(out, "   Countries: %d, crops: %d, rows without planting year: %d\n", stats.Countries, stats.Crops, stats.MissingYears)
	fmt.Fprintf(out, "   Import ID: %s\n", imp.ID)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	svc, closeDB, err := openImportService()
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	rows, err := svc.StoredRows(ctx)
	if err != nil {
		return fmt.Errorf("count records: %w", err)
	}
	imp, err := svc.Latest(ctx)
	if err != nil {
		return fmt.Errorf("latest import: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📊 Stored rows: %d\n", rows)
	if imp == nil {
		fmt.Fprintln(out, "   No import recorded yet")
		return nil
	}
	fmt.Fprintf(out, "   Last import: %s from %s at %s (%d rows)\n",
		imp.ID, imp.Source, imp.CreatedAt.Format("2006-01-02 15:04:05"), imp.RowCount)
	return nil
}
