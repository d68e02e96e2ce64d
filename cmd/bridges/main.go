package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bridges/internal/cli"
	bridgeserrors "github.com/matzehuels/bridges/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return loadConfig(cmd, args)
	}

	return root.ExecuteContext(ctx)
}

// exitCode maps input mistakes to 2 and everything else to 1.
func exitCode(err error) int {
	switch bridgeserrors.GetCode(err) {
	case bridgeserrors.ErrCodeValidation, bridgeserrors.ErrCodeReference,
		bridgeserrors.ErrCodeInvalidInput, bridgeserrors.ErrCodeInvalidFormat,
		bridgeserrors.ErrCodeInvalidConfig, bridgeserrors.ErrCodeFileNotFound,
		bridgeserrors.ErrCodeUnsupported:
		return 2
	default:
		return 1
	}
}
