package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/blogem/keysubmit/config"
	"github.com/blogem/keysubmit/controllers"
	"github.com/blogem/keysubmit/database"
	"github.com/blogem/keysubmit/dom"
	"github.com/blogem/keysubmit/prompt"
	"github.com/blogem/keysubmit/repositories"
	"github.com/blogem/keysubmit/services"
)

// openAudit initializes the audit database when AUDIT_DB is set
func openAudit(cfg *config.Config) (*repositories.Repositories, error) {
	if !cfg.AuditEnabled() {
		return nil, nil
	}
	if err := database.InitializeDatabase(cfg.AuditDB); err != nil {
		return nil, err
	}
	return repositories.NewRepositories(database.GetDB()), nil
}

func handlerOptions(cfg *config.Config, repos *repositories.Repositories) services.Options {
	opts := services.Options{
		FormID:   cfg.FormID,
		Endpoint: cfg.Endpoint,
		BaseURL:  cfg.BaseURL,
		Client:   &http.Client{Timeout: cfg.RequestTimeout},
		Console:  services.NewLogConsole(nil),
	}
	if repos != nil {
		opts.Submissions = repos.Submissions
	}
	return opts
}

// parseAssignments turns name=value arguments into grouped field values,
// keeping first-seen name order.
func parseAssignments(args []string) ([]string, map[string][]string, error) {
	var order []string
	values := make(map[string][]string)
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, nil, fmt.Errorf("invalid field assignment %q, expected name=value", arg)
		}
		if _, seen := values[name]; !seen {
			order = append(order, name)
		}
		values[name] = append(values[name], value)
	}
	return order, values, nil
}

// runSubmit fills the form, raises one submit event and waits for the
// request to finish. It returns the number of failed submissions.
func runSubmit(cfg *config.Config, args []string) (int, error) {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	valuesFile := fs.String("values", "", "YAML file with field presets")
	interactive := fs.Bool("prompt", false, "Prompt for empty text fields")
	verbose := fs.Bool("verbose", false, "Report failed submissions on stderr")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	order, assignments, err := parseAssignments(fs.Args())
	if err != nil {
		return 0, err
	}

	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	var presets map[string]string
	if *valuesFile != "" {
		loaded, err := config.LoadPresets(*valuesFile)
		if err != nil {
			return 0, err
		}
		if loaded.FormID != "" {
			cfg.FormID = loaded.FormID
		}
		presets = loaded.Fields
	}

	doc, err := dom.ParseFile(cfg.PageFile)
	if err != nil {
		return 0, err
	}

	repos, err := openAudit(cfg)
	if err != nil {
		return 0, err
	}
	defer database.CloseDB()

	var failed atomic.Int32
	opts := handlerOptions(cfg, repos)
	opts.OnFailure = func(o services.Outcome) {
		failed.Add(1)
		if *verbose {
			fmt.Fprintf(os.Stderr, "❌ Submission to %s failed: %v\n", o.Endpoint, o.Err)
		}
	}

	handler, err := services.Init(doc, opts)
	if err != nil {
		return 0, err
	}
	form := handler.Form()

	for name, value := range presets {
		if err := form.SetValue(name, value); err != nil {
			return 0, fmt.Errorf("failed to apply preset: %w", err)
		}
	}
	for _, name := range order {
		if err := form.SetValues(name, assignments[name]); err != nil {
			return 0, fmt.Errorf("failed to apply field: %w", err)
		}
	}
	if *interactive {
		if err := prompt.FillMissing(context.Background(), form, prompt.NewSurveyDriver()); err != nil {
			return 0, err
		}
	}

	if _, err := form.Submit(); err != nil {
		return 0, err
	}
	handler.Wait()

	return int(failed.Load()), nil
}

// runServe hosts the page until interrupted
func runServe(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := dom.ParseFile(cfg.PageFile)
	if err != nil {
		return err
	}

	repos, err := openAudit(cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB()

	handler, err := services.Init(doc, handlerOptions(cfg, repos))
	if err != nil {
		return err
	}

	var srvs *services.Services
	if repos != nil {
		srvs = services.NewServices(repos)
	}

	router := controllers.NewRouter(controllers.NewControllers(doc, handler, srvs))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("🚀 keysubmit host starting on port %s\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)
	fmt.Printf("📨 Submitting #%s to %s\n", cfg.FormID, handler.Endpoint())
	if cfg.AuditEnabled() {
		fmt.Printf("🗃️  Audit database: %s\n", cfg.AuditDB)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
	}

	// let in-flight submissions finish and record
	handler.Wait()
	return nil
}

// runHistory prints recent audit records
func runHistory(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("limit", services.DefaultHistoryLimit, "Number of records to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !cfg.AuditEnabled() {
		return fmt.Errorf("%w: AUDIT_DB", config.ErrMissing)
	}

	repos, err := openAudit(cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB()

	history := services.NewServices(repos).History
	ctx := context.Background()

	summary, err := history.GetSummary(ctx)
	if err != nil {
		return err
	}
	records, err := history.GetRecent(ctx, *limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s submissions recorded\n", humanize.Comma(int64(summary.Total)))
	for _, record := range records {
		mark := "✅"
		if !record.Succeeded() {
			mark = "❌"
		}
		fmt.Fprintf(out, "%s %-16s %3d  #%s  %s  %s\n",
			mark,
			humanize.Time(record.Timestamp),
			record.StatusCode,
			record.FormID,
			strings.Join(record.FieldNames, ","),
			record.Duration.Round(time.Millisecond),
		)
		if record.Error != "" {
			fmt.Fprintf(out, "   %s\n", record.Error)
		}
	}
	return nil
}
