// Command passgen generates passwords and scores their strength from the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/logger"
)

func newRootCommand(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and score their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		generateCommand(cfg),
		strengthCommand(),
		tokenCommand(cfg),
	)
	return root
}

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		color.Red("invalid configuration: %v", err)
		os.Exit(1)
	}

	zl := logger.Setup(cfg.Env)
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	err = newRootCommand(cfg).Execute()
	_ = zl.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}
