package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/airdrop-manifest/config"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands"
	"github.com/smartcontractkit/airdrop-manifest/pkg/commands/text"
	"github.com/smartcontractkit/airdrop-manifest/pkg/logger"
)

const (
	// configPathEnv names the optional config file.
	configPathEnv = "AIRDROP_CONFIG"

	defaultConfigPath = "airdrop.yaml"
)

// defaultArgs is the command run when airdrop is invoked without arguments.
var defaultArgs = []string{"manifest", "convert"}

// app holds the root command and the logger shared by every command group.
type app struct {
	lggr    logger.Logger
	rootCmd *cobra.Command
}

// newApp builds the command tree.
func newApp(lggr logger.Logger, settings *config.Config) (*app, error) {
	rootCmd := &cobra.Command{
		Use:   "airdrop",
		Short: "Build airdrop manifests from address,amount CSV files",
		Long: text.LongDesc(`
			Builds the JSON airdrop manifest consumed by the token distribution tooling.

			Without arguments airdrop runs "manifest convert" with the configured defaults.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	manifestCmd, err := commands.New(lggr).Manifest(settings)
	if err != nil {
		return nil, err
	}
	rootCmd.AddCommand(manifestCmd)

	return &app{lggr: lggr, rootCmd: rootCmd}, nil
}

// Run executes the root command with args.
func (a *app) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = defaultArgs
	}
	a.rootCmd.SetArgs(args)

	return a.rootCmd.ExecuteContext(ctx)
}

// run loads the settings, builds the app and executes args. It returns the
// process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	settings, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)

		return 1
	}
	if err = settings.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	level, err := settings.LogLevel()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}
	lggr, err := logger.NewCLI(level, settings.Log.File)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create logger: %v\n", err)

		return 1
	}
	defer func() { _ = lggr.Sync() }()

	a, err := newApp(lggr, settings)
	if err != nil {
		lggr.Errorw("failed to build commands", "error", err)

		return 1
	}
	a.rootCmd.SetOut(stdout)
	a.rootCmd.SetErr(stderr)

	if err = a.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func configPath() string {
	if p, ok := os.LookupEnv(configPathEnv); ok {
		return p
	}

	return defaultConfigPath
}
