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


// Package check implements the validate command.
package check

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/destel/rill"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"m4o.io/xodr"
	"m4o.io/xodr/cmd/xodr/cli"
)

var out io.Writer = os.Stdout

// errInvalid makes the command exit non-zero without printing twice.
var errInvalid = errors.New("invalid documents found")

type report struct {
	Path   string      `json:"path"`
	Error  string      `json:"error,omitempty"`
	Issues xodr.Issues `json:"issues,omitempty"`
}

func (r *report) ok() bool {
	return r.Error == "" && len(r.Issues) == 0
}

func init() {
	cli.RootCmd.AddCommand(validateCmd)

	flags := validateCmd.Flags()
	flags.BoolP("json", "j", false, "report in JSON, one object per line")
	flags.Uint16P("cpu", "c", uint16(runtime.GOMAXPROCS(-1)), "number of files to check concurrently")
}

var validateCmd = &cobra.Command{
	Use:   "validate [<OpenDRIVE file>...]",
	Short: "Check OpenDRIVE files for structural and semantic problems",
	Long: "Decode every file and report parse errors and semantic issues such as " +
		"dangling references, unordered segments and conflicting link attributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			return err
		}

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			return err
		}

		var reports []*report
		if len(args) == 0 {
			in, err := cli.OpenInput(nil)
			if err != nil {
				return err
			}

			defer in.Close()

			reports = []*report{check("-", func() error {
				_, err := xodr.Decode(in, xodr.WithValidation())

				return err
			})}
		} else {
			reports, err = runCheck(args, ncpu)
			if err != nil {
				return err
			}
		}

		valid := true
		for _, r := range reports {
			valid = valid && r.ok()

			if err := render(r, jsonfmt); err != nil {
				return err
			}
		}

		if !valid {
			cmd.SilenceErrors = true

			return errInvalid
		}

		return nil
	},
}

func check(path string, decode func() error) *report {
	r := &report{Path: path}

	err := decode()
	if issues, ok := xodr.AsIssues(err); ok {
		r.Issues = issues
	} else if err != nil {
		r.Error = err.Error()
	}

	return r
}

// runCheck validates paths with up to ncpu files in flight.  Reports are
// returned in the order of paths.
func runCheck(paths []string, ncpu uint16) ([]*report, error) {
	in := rill.FromSlice(paths, nil)
	reports := rill.OrderedMap(in, int(max(ncpu, 1)), func(path string) (*report, error) {
		return check(path, func() error {
			_, err := xodr.DecodeFile(path, xodr.WithValidation())

			return err
		}), nil
	})

	return rill.ToSlice(reports)
}

func render(r *report, jsonfmt bool) error {
	if jsonfmt {
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, string(b))

		return err
	}

	switch {
	case r.Error != "":
		fmt.Fprintf(out, "%s: error: %s\n", r.Path, r.Error)
	case len(r.Issues) > 0:
		for _, i := range r.Issues {
			fmt.Fprintf(out, "%s: %s at %s: %s\n", r.Path, i.Code, i.Path, i.Message)
		}
	default:
		fmt.Fprintf(out, "%s: ok\n", r.Path)
	}

	return nil
}
