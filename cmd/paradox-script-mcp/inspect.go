// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/paradox-script-mcp/pkg/explorer"
)

// errMissingRoot is returned by one-shot commands run without --root.
var errMissingRoot = errors.New("--root (or PARADOX_SCRIPT_ROOT) is required")

// inspectFunc runs one operation against an initialized session and returns
// the text to print.
type inspectFunc func(e explorer.Explorer, s *explorer.Session, args []string) (string, error)

// inspect wraps fn in the shared setup: build the explorer, initialize the
// game from --root and print the result.
func inspect(fn inspectFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		root := viper.GetString("root")
		if root == "" {
			return errMissingRoot
		}

		e, err := newExplorer(newLogger())
		if err != nil {
			return err
		}
		s, err := e.Init(root, viper.GetString("game"))
		if err != nil {
			return err
		}
		out, err := fn(e, s, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
}

// newSymbolsCmd creates the "symbols" command.
func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>",
		Short: "List the top-level symbols of a script file",
		Args:  cobra.ExactArgs(1),
		RunE: inspect(func(e explorer.Explorer, s *explorer.Session, args []string) (string, error) {
			lines, err := e.ListSymbols(s, args[0])
			if err != nil {
				return "", err
			}
			return explorer.SymbolsText(args[0], lines), nil
		}),
	}
}

// newStructureCmd creates the "structure" command.
func newStructureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "structure <file> <symbol> [key-path]",
		Short: "Show the structure of a symbol",
		Long:  "Structure resolves a symbol in a script file, follows an optional dot-separated key path and prints the result, summarized until the path reaches --expand-depth keys.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: inspect(func(e explorer.Explorer, s *explorer.Session, args []string) (string, error) {
			keyPath := ""
			if len(args) == 3 {
				keyPath = args[2]
			}
			return e.GetStructure(s, args[0], args[1], keyPath)
		}),
	}
}

// newDirsCmd creates the "dirs" command.
func newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "List known script directories",
		Args:  cobra.NoArgs,
		RunE: inspect(func(e explorer.Explorer, s *explorer.Session, args []string) (string, error) {
			dirs, err := e.ListDirectories(s)
			if err != nil {
				return "", err
			}
			return explorer.DirectoriesText(dirs), nil
		}),
	}
}

// newDescribeCmd creates the "describe" command.
func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <path>",
		Short: "Describe the directory containing a path",
		Args:  cobra.ExactArgs(1),
		RunE: inspect(func(e explorer.Explorer, s *explorer.Session, args []string) (string, error) {
			d, err := e.DescribePath(s, args[0])
			if err != nil {
				return "", err
			}
			return explorer.DirectoryText(d), nil
		}),
	}
}
