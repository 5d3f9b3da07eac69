// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/labyrinth/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "mazegen",
		Short:         "Carve and solve random perfect mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default ./mazegen.yaml if present)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "Log format: json, text")

	root.AddCommand(newCarveCmd(opts), newVersionCmd())
	return root
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"width":        "maze.width",
	"height":       "maze.height",
	"seed":         "maze.seed",
	"algorithm":    "maze.algorithm",
	"solve":        "maze.solve",
	"metrics-file": "metrics.file",
}

// loadConfig layers the flags the user actually set over file and env.
func loadConfig(opts *rootOptions, flags *pflag.FlagSet) (*config.Config, error) {
	overrides := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	return config.NewLoader(
		config.WithConfigFile(opts.configPath),
		config.WithOverrides(overrides),
	).Load()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mazegen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mazegen %s\n", version)
		},
	}
}
