package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/UnknownOlympus/mnemosyne/internal/config"
	"github.com/UnknownOlympus/mnemosyne/internal/lib/logger/sl"
	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/presenter"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application. It runs a fixed demonstration
// sequence against the employee store; only a failed database connection is
// fatal, every later failure is logged and the sequence continues.
func main() {
	ctx := context.Background()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	logger.InfoContext(ctx, "Database connection established", "path", cfg.DBPath)

	repo := repository.NewEmployeeRepository(dtb, appMetrics)
	pres := presenter.NewPresenter(os.Stdout)

	if err = repo.EnsureSchema(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to create employees table", sl.Err(err))
	} else {
		logger.InfoContext(ctx, "Table 'employees' is ready")
	}

	samples := []models.Employee{
		{Name: "Rinku Singh", Position: "Software Developer", Salary: 85000.0},
		{Name: "Sai Gill", Position: "Project Manager", Salary: 95000.0},
		{Name: "Shubhman Johnson", Position: "QA Engineer", Salary: 75000.0},
		{Name: "Alice Tiwary", Position: "Senior Developer", Salary: 105000.0},
		{Name: "Charlie Harper", Position: "DevOps Engineer", Salary: 90000.0},
	}
	for _, emp := range samples {
		rows, insErr := repo.Insert(ctx, emp.Name, emp.Position, emp.Salary)
		if insErr != nil {
			logger.ErrorContext(ctx, "Failed to insert employee", "name", emp.Name, sl.Err(insErr))
			continue
		}
		logger.InfoContext(ctx, "Employee inserted", "name", emp.Name, sl.Rows(rows))
	}

	listEmployees(ctx, logger, repo, pres, "EMPLOYEE LIST")

	updateSalary(ctx, logger, repo, 2, 10000.0)

	searchPosition := "Developer"
	found, err := repo.FindByPosition(ctx, searchPosition)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to search employees", "position", searchPosition, sl.Err(err))
	} else {
		pres.Render("EMPLOYEES MATCHING: "+searchPosition, found)
	}

	deleteEmployee(ctx, logger, repo, 3)

	listEmployees(ctx, logger, repo, pres, "EMPLOYEE LIST")

	logger.InfoContext(ctx, "Demo sequence finished")
}

func listEmployees(
	ctx context.Context,
	logger *slog.Logger,
	repo repository.EmployeeRepoIface,
	pres *presenter.Presenter,
	label string,
) {
	employees, err := repo.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return
	}

	pres.Render(label, employees)
}

func updateSalary(
	ctx context.Context,
	logger *slog.Logger,
	repo repository.EmployeeRepoIface,
	identifier int64,
	salary float64,
) {
	rows, err := repo.UpdateSalary(ctx, identifier, salary)
	switch {
	case err != nil:
		logger.ErrorContext(ctx, "Failed to update employee salary", "id", identifier, sl.Err(err))
	case rows == 0:
		logger.InfoContext(ctx, "No employee found with given ID", "id", identifier)
	default:
		logger.InfoContext(ctx, "Employee salary updated", "id", identifier, sl.Rows(rows))
	}
}

func deleteEmployee(
	ctx context.Context,
	logger *slog.Logger,
	repo repository.EmployeeRepoIface,
	identifier int64,
) {
	rows, err := repo.Delete(ctx, identifier)
	switch {
	case err != nil:
		logger.ErrorContext(ctx, "Failed to delete employee", "id", identifier, sl.Err(err))
	case rows == 0:
		logger.InfoContext(ctx, "No employee found with given ID", "id", identifier)
	default:
		logger.InfoContext(ctx, "Employee deleted", "id", identifier, sl.Rows(rows))
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
