package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/app"
	"github.com/fastep-work/fastep-backend-go/internal/config"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/fixtures"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	payrollService "github.com/fastep-work/fastep-backend-go/internal/service/payroll"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "payrollctl",
		Short:         "Fastep Work payroll operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				level = slog.LevelInfo
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		statementCmd(),
		overviewCmd(),
		sheetCmd(),
		seedCmd(),
		breakdownCmd(),
	)
	return cmd
}

// withServices loads config, connects to the database and runs fn with the wired services.
func withServices(ctx context.Context, fn func(cfg *config.Config, s app.Services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	services, err := app.NewServices(cfg, db)
	if err != nil {
		return err
	}
	return fn(cfg, services)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func statementCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "statement [worker-id]",
		Short: "Print one worker's statement, or every worker's with totals",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, s app.Services) error {
				if len(args) == 1 {
					statement, err := s.Payroll.GetStatement(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					return writeJSON(cmd.OutOrStdout(), statement)
				}

				list, err := s.Payroll.ListStatements(cmd.Context(), payroll.StatementFilter{ActiveOnly: activeOnly})
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), list)
			})
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only include active workers")
	return cmd
}

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print the admin dashboard overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(_ *config.Config, s app.Services) error {
				overview, err := s.Dashboard.GetOverview(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), overview)
			})
		},
	}
}

func sheetCmd() *cobra.Command {
	var (
		out        string
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Export the salary sheet as an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = fmt.Sprintf("salary-sheet-%s.xlsx", time.Now().Format(time.DateOnly))
			}

			return withServices(cmd.Context(), func(_ *config.Config, s app.Services) error {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}

				if err := s.Payroll.ExportSheet(cmd.Context(), f, payroll.StatementFilter{ActiveOnly: activeOnly}); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Salary sheet written to %s\n", out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default salary-sheet-<date>.xlsx)")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only include active workers")
	return cmd
}

func seedCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo workers with recent shifts, a leave and an advance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withServices(ctx, func(cfg *config.Config, s app.Services) error {
				if cfg.Seed.AdminCode != "" {
					if err := s.Worker.EnsureAdmin(ctx, cfg.Seed.AdminCode, cfg.Seed.AdminPassword); err != nil {
						return err
					}
				}

				today := utils.Today(cfg.Location())
				var workerIDs []string
				for _, req := range fixtures.DemoWorkers(today) {
					created, err := s.Worker.Create(ctx, req)
					if errors.Is(err, worker.ErrWorkerCodeExists) {
						fmt.Fprintf(cmd.OutOrStdout(), "Worker %s already exists, skipping\n", req.WorkerCode)
						continue
					}
					if err != nil {
						return fmt.Errorf("create worker %s: %w", req.WorkerCode, err)
					}
					workerIDs = append(workerIDs, created.ID)
				}
				if len(workerIDs) == 0 {
					return nil
				}

				imported, err := s.Shift.Import(ctx, shift.ImportShiftsRequest{
					Entries: fixtures.DemoShiftEntries(workerIDs, today, days),
				})
				if err != nil {
					return fmt.Errorf("import shifts: %w", err)
				}
				if _, err := s.Leave.Request(ctx, workerIDs[0], fixtures.DemoLeave(today)); err != nil {
					return fmt.Errorf("request leave: %w", err)
				}
				if _, err := s.Advance.Request(ctx, workerIDs[0], fixtures.DemoAdvance()); err != nil {
					return fmt.Errorf("request advance: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d workers and %d shifts (password %q)\n", len(workerIDs), imported.Imported, fixtures.DemoPassword)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Days of attendance to create per worker")
	return cmd
}

func breakdownCmd() *cobra.Command {
	var (
		salary       float64
		start, end   string
		breakMinutes int
		daysInMonth  float64
		baseHours    float64
	)

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Preview one shift's regular and overtime pay without touching the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := payroll.BreakdownPreviewRequest{StartTime: start, EndTime: end, BreakMinutes: breakMinutes}
			if err := req.Validate(); err != nil {
				return err
			}
			if salary <= 0 {
				return payroll.ErrWorkerHasNoSalary
			}

			settings := payroll.Settings{DaysInMonth: daysInMonth, BaseHours: baseHours}
			date := utils.Today(time.UTC)
			startAt, err := utils.AtClock(date, start, time.UTC)
			if err != nil {
				return err
			}
			endAt, err := utils.AtClock(date, end, time.UTC)
			if err != nil {
				return err
			}

			rates := payrollService.DeriveRates(settings, salary)
			breakdown := payrollService.CalculateBreakdown(settings, rates, startAt, endAt, breakMinutes)
			return writeJSON(cmd.OutOrStdout(), payroll.NewBreakdownResponse(rates, breakdown))
		},
	}
	cmd.Flags().Float64Var(&salary, "salary", 0, "Monthly salary")
	cmd.Flags().StringVar(&start, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End time HH:MM")
	cmd.Flags().IntVar(&breakMinutes, "break", 0, "Unpaid break in minutes")
	cmd.Flags().Float64Var(&daysInMonth, "days-in-month", payroll.DefaultDaysInMonth, "Divisor for the daily rate")
	cmd.Flags().Float64Var(&baseHours, "base-hours", payroll.DefaultBaseHours, "Overtime threshold per shift")
	_ = cmd.MarkFlagRequired("salary")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
