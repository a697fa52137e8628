package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/epeers/fundsdash/config"
	"github.com/epeers/fundsdash/internal/handlers"
	"github.com/epeers/fundsdash/internal/repository"
	"github.com/epeers/fundsdash/internal/scheduler"
	"github.com/epeers/fundsdash/internal/services"
)

// @title fundsdash API
// @version 1.0
// @description Mutual fund dashboard: filter, sort, paginate, analyze and compare funds.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// app is the state shared by all commands once configuration is loaded
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.Defaults(a.v)

	root := &cobra.Command{
		Use:           "fundsdash",
		Short:         "Explore and compare mutual funds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWith(a.v)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.cfg = cfg
			setupLogging(cfg.LogLevel)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("data-dir", "", "directory holding the fund CSV files (DATA_DIR)")
	flags.String("log-level", "", "log level: debug, info, warn, error (LOG_LEVEL)")
	flags.Int("page-size", 0, "rows per page (PAGE_SIZE)")
	flags.Int("top-n", 0, "size of the top funds ranking (TOP_N)")
	flags.String("pg-url", "", "read the fund table from Postgres instead of CSV (PG_URL)")
	flags.String("pg-table", "", "Postgres table holding the funds (PG_TABLE)")
	for key, name := range map[string]string{
		"data_dir":  "data-dir",
		"log_level": "log-level",
		"page_size": "page-size",
		"top_n":     "top-n",
		"pg_url":    "pg-url",
		"pg_table":  "pg-table",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newServeCmd(a),
		newFundsCmd(a),
		newRiskCmd(a),
		newPerformanceCmd(a),
		newCompareCmd(a),
	)
	return root
}

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// newDatasetService wires the configured fund source. The performance table always
// comes from the data directory. The returned func releases the database pool.
func newDatasetService(ctx context.Context, cfg *config.Config) (*services.DatasetService, func(), error) {
	files := repository.NewFileRepository(cfg.DataDir)
	if cfg.PGURL == "" {
		return services.NewDatasetService(files, files), func() {}, nil
	}

	pool, err := repository.Connect(ctx, cfg.PGURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	funds := repository.NewFundRepository(pool, cfg.PGTable)
	return services.NewDatasetService(funds, files), pool.Close, nil
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, services.ErrNoFundNameColumn), errors.Is(err, services.ErrNoNAVColumn):
		return "The fund table needs a column whose name contains \"name\" and one containing \"NAV\"."
	case errors.Is(err, repository.ErrNoTable):
		return "Place funds_clean.csv in the data directory (--data-dir or DATA_DIR)."
	}
	return ""
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve()
		},
	}
	cmd.Flags().String("port", "", "listen port (PORT)")
	_ = a.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}

func (a *app) serve() error {
	cfg := a.cfg
	ctx := context.Background()

	datasets, closeDB, err := newDatasetService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	// A failed first load is served as 503 with guidance until the files are fixed
	if err := datasets.Refresh(ctx); err != nil {
		log.Errorf("Initial load failed: %v", err)
	}

	sessions := services.NewSessionStore(cfg.SessionTTL)

	sched := scheduler.New(30 * time.Second)
	if err := sched.AddJob(cfg.ReloadSchedule, datasets); err != nil {
		return err
	}
	if err := sched.AddJob("@every 10m", sessions); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	router := handlers.NewRouter(handlers.Deps{
		Datasets:      datasets,
		Sessions:      sessions,
		Dashboard:     services.NewDashboardService(cfg.PageSize, cfg.TopN),
		Comparison:    services.NewComparisonService(),
		SessionCookie: cfg.SessionCookie,
		SessionTTL:    cfg.SessionTTL,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
