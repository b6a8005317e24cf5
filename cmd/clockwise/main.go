package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/ostrella/clockwise/internal/cli"
	"github.com/ostrella/clockwise/internal/config"
	"github.com/ostrella/clockwise/internal/db"
	"github.com/ostrella/clockwise/internal/repository"
	"github.com/ostrella/clockwise/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	reference, display, err := cfg.Zones()
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	workerRepo := repository.NewSQLiteWorkerRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)

	// Service events go to stderr only on a real terminal session.
	var obs service.Observer
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		obs = service.NewLogObserver(os.Stderr, cfg.LogLevel)
	}

	app := &cli.App{
		Workers:    service.NewWorkerService(workerRepo),
		Schedules:  service.NewScheduleService(workerRepo, scheduleRepo),
		Attendance: service.NewAttendanceService(workerRepo, scheduleRepo, entryRepo, reminderRepo, db.NewUnitOfWork(database), reference, display, obs, nil),
		Reports:    service.NewReportService(workerRepo, scheduleRepo, entryRepo, display, nil),
		Display:    display,
		Refresh:    cfg.RefreshInterval(),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
