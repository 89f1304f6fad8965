package cli

import (
	"context"
	"os"

	"github.com/Project-Sylos/Mimic/internal/logger"
	"github.com/Project-Sylos/Mimic/sdk"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the mimic command tree
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mimic",
		Short:         "Mimic - deterministic fake personal records",
		Long:          `Generate reproducible batches of fake names, addresses and phone numbers with optional typo noise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a JSON config file (defaults are used when empty)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		NewGenerateCommand(),
		NewRegionsCommand(),
	)

	return cmd
}

// Execute runs the root command against os.Args
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		logger.GetDefault().Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setup loads the SDK from the --config flag and returns a context carrying
// the command logger
func setup(cobraCmd *cobra.Command) (context.Context, *sdk.Mimic, error) {
	configPath, err := cobraCmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	verbose, err := cobraCmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}

	m, err := sdk.New(configPath)
	if err != nil {
		return nil, nil, err
	}

	cfg := m.GetConfig()
	level := cfg.Log.Level
	if verbose {
		level = string(logger.DebugLevel)
	}
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(level),
		Output:     cobraCmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})

	ctx := cobraCmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.ContextWithLogger(ctx, log), m, nil
}
