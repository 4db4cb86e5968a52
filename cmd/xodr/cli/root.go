// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// RootCmd is the parent of every xodr subcommand.
var RootCmd = &cobra.Command{
	Use:          "xodr",
	Short:        "Inspect, validate and reformat OpenDRIVE road networks",
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log decoding details to stderr")
	flags.BoolVarP(&quiet, "quiet", "q", false, "do not show a progress bar")
}

// Execute runs the command line and exits with a non-zero status on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// OpenInput opens the file named by the first argument, or stdin if there is
// none or it is "-".  Files are wrapped in a progress bar unless --quiet was
// given.
func OpenInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return WrapInputFile(os.Stdin)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}

	if quiet {
		return f, nil
	}

	in, err := WrapInputFile(f)
	if err != nil {
		f.Close()

		return nil, err
	}

	return in, nil
}
