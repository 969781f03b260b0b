// Package main provides the result-reporter CLI, which turns a track's chart
// files into pace-figure guides and daily records.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/result-reporter/internal/chart"
	"github.com/yourusername/result-reporter/internal/config"
	"github.com/yourusername/result-reporter/internal/daily"
	"github.com/yourusername/result-reporter/internal/database"
	"github.com/yourusername/result-reporter/internal/guide"
	appLogger "github.com/yourusername/result-reporter/internal/logger"
	"github.com/yourusername/result-reporter/internal/metrics"
	"github.com/yourusername/result-reporter/internal/models"
	"github.com/yourusername/result-reporter/internal/repository"
	"github.com/yourusername/result-reporter/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	rootDir    string
	trackCode  string
	logger     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Directory searched for chart files (overrides charts.root_dir)")
	rootCmd.PersistentFlags().StringVar(&trackCode, "track", "", "Track code of the charts to load (overrides charts.track_code)")

	rootCmd.AddCommand(guideCmd(models.ShakeUpModel, "Write the Shake-Up pace guide"))
	rootCmd.AddCommand(guideCmd(models.BrohamerModel, "Write the Brohamer pace guide"))
	rootCmd.AddCommand(dayCmd, persistCmd, showCmd)
}

var rootCmd = &cobra.Command{
	Use:     "result-reporter",
	Short:   "Pace figures and track bias from race charts",
	Long:    `Reads a track's chart files, computes Shake-Up and Brohamer pace figures, and writes daily guides.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logger = appLogger.New(appLogger.Options{
			Level: cfg.App.LogLevel,
			JSON:  cfg.IsProduction(),
		})
		if cfg.Metrics.Enabled {
			metrics.InitRegistry()
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Metrics.Enabled || cfg.Metrics.TextfilePath == "" {
			return nil
		}
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if rootDir != "" {
		cfg.Charts.RootDir = rootDir
	}
	if trackCode != "" {
		cfg.Charts.TrackCode = trackCode
	}

	if err := config.LoadSecretsFromAWS(ctx, cfg); err != nil {
		return err
	}
	return config.Validate(cfg)
}

func newService(store repository.Store) *service.ReportService {
	tables := map[models.Model]string{
		models.ShakeUpModel:  cfg.TableFor(string(models.ShakeUpModel)),
		models.BrohamerModel: cfg.TableFor(string(models.BrohamerModel)),
	}
	return service.NewReportService(logger, guide.NewWriter(cfg.Guide.FontName, cfg.Guide.FontSize), store, tables)
}

func guideCmd(model models.Model, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(model),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(nil)
			charts, err := svc.LoadCharts(cfg.Charts.RootDir, cfg.Charts.TrackCode)
			if err != nil {
				return err
			}
			if len(charts) == 0 {
				return fmt.Errorf("no %s charts found under %s", cfg.Charts.TrackCode, cfg.Charts.RootDir)
			}

			path := cfg.GuidePath(string(model))
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := svc.WriteGuide(cmd.Context(), charts, model, path); err != nil {
				return err
			}

			svc.Summary().Finish()
			logger.WithField("summary", svc.Summary().String()).Info("Guide complete")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

var dayCmd = &cobra.Command{
	Use:   "day <chart-file>",
	Short: "Print the Brohamer reports and daily records of one chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chart.ParseFile(args[0])
		if err != nil {
			return err
		}

		svc := newService(nil)
		out := cmd.OutOrStdout()
		if err := svc.DayReport(out, c); err != nil {
			return err
		}

		charts := []*chart.Chart{c}
		for _, model := range []models.Model{models.ShakeUpModel, models.BrohamerModel} {
			days, err := svc.BuildDays(charts, model)
			if err != nil {
				return err
			}
			for _, day := range days {
				fmt.Fprint(out, "\n", guide.GenerateConsoleReport(day))
			}
		}
		return nil
	},
}

var persistCmd = &cobra.Command{
	Use:   "persist",
	Short: "Store both models' daily records in PostgreSQL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, repos, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := newService(repos)
		charts, err := svc.LoadCharts(cfg.Charts.RootDir, cfg.Charts.TrackCode)
		if err != nil {
			return err
		}

		var days []*daily.Day
		for _, model := range []models.Model{models.ShakeUpModel, models.BrohamerModel} {
			built, err := svc.BuildDays(charts, model)
			if err != nil {
				return err
			}
			days = append(days, built...)
		}

		runID, err := svc.Persist(ctx, days)
		if err != nil {
			return err
		}

		svc.Summary().Finish()
		logger.WithFields(logrus.Fields{
			"run_id":  runID.String(),
			"summary": svc.Summary().String(),
		}).Info("Daily records stored")
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <model> <YYYYMMDD> <course> <sprint|route>",
	Short: "Print one stored daily record",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := models.ParseModel(args[0])
		if err != nil {
			return err
		}
		raceDate, err := time.Parse(daily.RaceDateLayout, args[1])
		if err != nil {
			return fmt.Errorf("invalid race date %q: %w", args[1], err)
		}
		key, err := models.ParseDistanceKey(args[3])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		db, repos, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		stored, err := newService(repos).Lookup(ctx, model, cfg.Charts.TrackCode, raceDate, args[2], key)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\nmin %s/%s/%s  max %s/%s/%s  %s\nrun %s at %s\n",
			stored.TrackCode, stored.RaceDate.Format(daily.RaceDateLayout), guide.HeaderTitle(stored.Surface, stored.Key),
			stored.Minimums[0], stored.Minimums[1], stored.Minimums[2],
			stored.Maximums[0], stored.Maximums[1], stored.Maximums[2],
			stored.Comment, stored.RunID, stored.CreatedAt.Format(time.RFC3339))
		return nil
	},
}

// openStore connects to PostgreSQL when persistence is enabled.
func openStore(ctx context.Context) (*database.DB, *repository.Repositories, error) {
	if !cfg.Persistence.Enabled {
		return nil, nil, service.ErrPersistenceDisabled
	}

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	repos, err := repository.NewRepositories(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}
	return db, repos, nil
}
