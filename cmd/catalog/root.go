package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/product-catalog/config"
	"github.com/yourusername/product-catalog/internal/delivery/console"
	"github.com/yourusername/product-catalog/internal/infrastructure/parser"
	"github.com/yourusername/product-catalog/internal/infrastructure/storage"
	"github.com/yourusername/product-catalog/internal/logging"
	"github.com/yourusername/product-catalog/internal/usecase"
)

// Build ma'lumotlari, -ldflags orqali o'rnatiladi
var (
	Version   = "dev"
	CommitID  = "unknown"
	BuildDate = "unknown"
)

func newRootCmd() *cobra.Command {
	var (
		noColor  bool
		seedFile string
		logLevel string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Interactive in-memory product catalog",
		Long:         `catalog keeps a list of products in memory for the lifetime of the process. Add products, list them sorted by price with a total, and search by name.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flaglar env qiymatlaridan ustun
			flags := cmd.Flags()
			if flags.Changed("no-color") {
				cfg.NoColor = noColor
			}
			if flags.Changed("seed") {
				cfg.SeedFile = seedFile
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringVar(&seedFile, "seed", "", "load initial products from an .xlsx workbook")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to a rotated file instead of stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s (commit %s, built %s)\n", Version, CommitID, BuildDate)
		},
	}
}

// run sessiyani yig'ish va ishga tushirish
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	logger, closeLog, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSizeMB,
	})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	productRepo := storage.NewMemoryProductRepository()
	productUseCase := usecase.NewProductUseCase(productRepo, parser.NewExcelParser(logger), logger)

	if cfg.SeedFile != "" {
		n, err := productUseCase.ImportCatalog(ctx, cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("seed catalog yuklanmadi: %w", err)
		}
		logger.Info("seed catalog loaded", zap.String("file", cfg.SeedFile), zap.Int("products", n))
	}

	var renderer console.Renderer
	if cfg.NoColor {
		renderer = console.NewPlainRenderer(out)
	} else {
		renderer = console.NewStyledRenderer(out)
	}

	session := console.NewSession(productUseCase, console.NewReaderSource(in), renderer, logger)
	return session.Run(ctx)
}
