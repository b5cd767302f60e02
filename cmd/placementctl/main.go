// Command placementctl prints placement reports and exports student data
// from the persisted placement state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/bootstrap"
	"github.com/yigit/placement/internal/config"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/seed"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML configuration file")
	report := flag.String("report", "all", "report to print: dashboard, crt or all")
	exportPath := flag.String("export", "", "write the student export CSV to this path instead of printing reports")
	demo := flag.Bool("demo", false, "use an in-memory store filled with demo data")
	flag.Parse()

	if err := run(context.Background(), *configPath, *report, *exportPath, *demo); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, report, exportPath string, demo bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	// reports go to stdout; keep logs quiet unless something fails
	lgr := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)

	store, closeFn, err := openStore(ctx, cfg, demo, lgr)
	if err != nil {
		return err
	}
	defer closeFn()

	if exportPath != "" {
		return exportStudents(store, exportPath)
	}

	switch report {
	case "dashboard":
		renderDashboard(os.Stdout, store.DashboardStats())
	case "crt":
		renderCRTReport(os.Stdout, store.CRTFeeStatusReport())
	case "all":
		renderDashboard(os.Stdout, store.DashboardStats())
		renderCRTReport(os.Stdout, store.CRTFeeStatusReport())
	default:
		return fmt.Errorf("unknown report %q", report)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, demo bool, lgr zerolog.Logger) (*placement.Store, func(), error) {
	renderer, err := bootstrap.NewLetterRenderer(cfg)
	if err != nil {
		return nil, nil, err
	}
	opts := bootstrap.StoreOptions(cfg, renderer)

	if demo || !cfg.UsesPostgres() {
		if !demo {
			color.Yellow("storage driver is %q; showing demo data", cfg.Storage.Driver)
		}
		store := placement.NewStore(opts...)
		if err := seed.CreateDemoData(ctx, store, lgr); err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := bootstrap.RestoreStore(ctx, database, opts...)
	if err != nil {
		database.Close()
		return nil, nil, err
	}
	return store, database.Close, nil
}

func exportStudents(store *placement.Store, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	students := store.ListStudents(placement.StudentFilter{})
	if err := services.WriteStudentsCSV(f, students); err != nil {
		return err
	}
	color.Green("Exported %d students to %s", len(students), path)
	return nil
}
