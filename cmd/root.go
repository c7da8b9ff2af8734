package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jjenkins/volume/internal/config"
	"github.com/jjenkins/volume/internal/service"
)

var (
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "volume",
	Short: "Volume of the Book - daily devotionals, scripture search and study",
	Long: `Volume of the Book reads scripture from bible-api.com and uses Gemini
for daily reflections, verse insights, AI-assisted search and a study
assistant.

Configuration is read from the environment (GEMINI_API_KEY, BIBLE_API_URL,
BIBLE_TRANSLATION, SEARCH_MAX_REFERENCES, ...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// services holds the gateways and services built from configuration
type services struct {
	scripture *service.BibleClient
	daily     *service.DailyService
	search    *service.SearchResolver
	insights  *service.InsightService
	assistant *service.StudyAssistant
}

// newServices creates the gateways and injects them into every service
func newServices(ctx context.Context) (*services, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	scripture := service.NewBibleClient(cfg.BibleAPIURL, cfg.BibleTranslation, cfg.BibleAPITimeout)
	ai, err := service.NewGeminiClient(ctx, service.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		return nil, err
	}

	return &services{
		scripture: scripture,
		daily:     service.NewDailyService(scripture, ai, logger.Named("daily")),
		search: service.NewSearchResolver(scripture, ai, logger.Named("search"),
			service.WithMaxReferences(cfg.SearchMaxReferences),
			service.WithConcurrency(cfg.SearchConcurrency)),
		insights:  service.NewInsightService(ai, logger.Named("insight")),
		assistant: service.NewStudyAssistant(ai, cfg.StudyInstruction, logger.Named("study")),
	}, nil
}
