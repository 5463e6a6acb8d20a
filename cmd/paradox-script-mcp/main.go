// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command paradox-script-mcp serves Paradox game scripts to MCP clients
// and offers the same browsing operations as one-shot commands.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/petar-djukic/paradox-script-mcp/internal/logging"
	"github.com/petar-djukic/paradox-script-mcp/pkg/explorer"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, explorer.ErrorText(err))
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paradox-script-mcp",
		Short:         "Browse Paradox game scripts symbol by symbol",
		Long:          "paradox-script-mcp parses Paradox script files and shows individual symbols, summarized or in full, over MCP or on the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("root", "", "Game installation directory")
	flags.String("game", explorer.DefaultGame, "Game type selecting directory knowledge")
	flags.Int("expand-depth", 2, "Key path depth at which structure output is fully expanded")
	flags.String("knowledge-dir", "", "Directory with <game>/directories.yml overriding the built-in knowledge")
	flags.Bool("allow-outside-root", false, "Allow file paths that resolve outside the game directory")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text or json)")
	bindFlags(flags)

	// Env vars: PARADOX_SCRIPT_ROOT, PARADOX_SCRIPT_GAME, etc.
	viper.SetEnvPrefix("PARADOX_SCRIPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".paradox-script-mcp")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newStructureCmd())
	rootCmd.AddCommand(newDirsCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// bindFlags binds every flag of fs to the viper key of the same name.
func bindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		viper.BindPFlag(f.Name, f)
	})
}

// newLogger builds the process logger. It always writes to stderr.
func newLogger() *slog.Logger {
	return logging.New(viper.GetString("log-level"), viper.GetString("log-format"), os.Stderr)
}

// newExplorer builds an Explorer from the bound configuration.
func newExplorer(logger *slog.Logger) (explorer.Explorer, error) {
	e, err := explorer.New(explorer.Config{
		ExpandDepth:      viper.GetInt("expand-depth"),
		KnowledgeDir:     viper.GetString("knowledge-dir"),
		AllowOutsideRoot: viper.GetBool("allow-outside-root"),
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return e, nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print paradox-script-mcp version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paradox-script-mcp %s\n", version)
		},
	}
}
