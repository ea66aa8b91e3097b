package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sustainlab/esgview"
	"github.com/sustainlab/esgview/bubbletea"
	"github.com/sustainlab/esgview/esgapi"
	"github.com/sustainlab/esgview/jsonfile"
	"github.com/sustainlab/esgview/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoCompanies is returned when the dataset contains no companies to
// display.
var ErrNoCompanies = errors.New("no companies to display")

// App encapsulates the application logic for testing.
type App struct {
	CompaniesPath string
	Loader        esgview.CompanyLoader
	Weights       esgview.WeightSource // optional
	Rescore       bool
	Logger        *zap.Logger

	// NewViewer builds the viewer once the reference table is known.
	NewViewer func(table *esgview.WeightTable) esgview.Viewer
}

// Run loads the dataset and displays the dashboard.
func (a *App) Run(ctx context.Context) error {
	var (
		companies []esgview.Company
		table     *esgview.WeightTable
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		companies, err = a.Loader.Load(a.CompaniesPath)
		if err != nil {
			return fmt.Errorf("load companies: %w", err)
		}
		return nil
	})
	if a.Weights != nil {
		// Best-effort: a missing reference table degrades the topic-weight
		// panel, it never blocks startup.
		g.Go(func() error {
			t, err := a.Weights.WeightTable(gctx)
			if err != nil {
				a.Logger.Warn("reference table unavailable", zap.Error(err))
				return nil
			}
			table = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(companies) == 0 {
		return ErrNoCompanies
	}

	if a.Rescore {
		for i := range companies {
			s := esgview.CalculateScores(companies[i].Industry, companies[i].Claims, table)
			companies[i].E = s.E
			companies[i].S = s.S
			companies[i].G = s.G
			companies[i].Total = s.Total
		}
	}

	return a.NewViewer(table).View(ctx, companies)
}

func main() {
	var (
		companiesPath = flag.String("companies", "", "path to the company dataset (JSON array, required)")
		sasbPath      = flag.String("sasb", "", "path to the SASB topic-weight table (JSON, optional)")
		wordcloudDir  = flag.String("wordcloud-dir", "", "directory with per-company keyword files (optional)")
		apiURL        = flag.String("api", "", "base URL of the analysis backend (optional)")
		themeName     = flag.String("theme", "dark", "color theme: dark or light")
		rescore       = flag.Bool("rescore", false, "recompute scores from claims instead of trusting the dataset")
		logPath       = flag.String("log", "", "write logs to this file (optional; logging is off without it)")
		debug         = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *companiesPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: esgview -companies data.json [-sasb weights.json] [-wordcloud-dir dir] [-api url]")
		os.Exit(1)
	}

	logger, err := newLogger(*logPath, *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var theme esgview.Theme
	switch *themeName {
	case "light":
		theme = lipgloss.LightTheme()
	case "dark":
		theme = lipgloss.DarkTheme()
	default:
		fmt.Fprintf(os.Stderr, "Unknown theme %q (want dark or light)\n", *themeName)
		os.Exit(1)
	}

	var weights esgview.WeightSource
	if *sasbPath != "" {
		weights = jsonfile.NewSASBSource(*sasbPath)
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		CompaniesPath: *companiesPath,
		Loader:        jsonfile.NewLoader(),
		Weights:       weights,
		Rescore:       *rescore,
		Logger:        logger,
		NewViewer: func(table *esgview.WeightTable) esgview.Viewer {
			opts := []bubbletea.ModelOption{
				bubbletea.WithTheme(theme),
				bubbletea.WithLogger(logger),
			}
			if table != nil {
				opts = append(opts, bubbletea.WithWeightTable(table))
			}
			switch {
			case *apiURL != "":
				client := esgapi.NewClient(*apiURL, esgapi.WithLogger(logger))
				opts = append(opts,
					bubbletea.WithLookupService(client),
					bubbletea.WithKeywordSource(client),
				)
			case *wordcloudDir != "":
				opts = append(opts, bubbletea.WithKeywordSource(jsonfile.NewKeywordDir(*wordcloudDir)))
			}
			return bubbletea.NewViewer(opts...)
		},
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a logger writing to path. Log lines would corrupt the
// alternate-screen TUI, so without a path logging is a no-op.
func newLogger(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
