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


// Package format implements the fmt command, which re-encodes a document in
// canonical form.
package format

import (
	"io"

	"github.com/spf13/cobra"

	"m4o.io/xodr"
	"m4o.io/xodr/cmd/xodr/cli"
)

var output string

func init() {
	cli.RootCmd.AddCommand(fmtCmd)

	flags := fmtCmd.Flags()
	flags.VarP(cli.NewOutputValue(&output, "file"), "output", "o", "write to file instead of stdout")
	flags.StringP("compression", "z", xodr.DefaultCompression.String(), "output compression: raw, gzip, zlib, lz4, xz or zstd")
	flags.BoolP("indent", "i", false, "put every element on its own line")
	flags.String("indent-string", "", "indentation per nesting level (implies --indent)")
	flags.Bool("validate", false, "refuse to write a document with semantic issues")
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [<OpenDRIVE file>]",
	Short: "Rewrite an OpenDRIVE file in canonical form",
	Long: "Decode an OpenDRIVE file and encode it again with canonical enumeration " +
		"tokens, lossless numbers and the requested compression",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		name, err := flags.GetString("compression")
		if err != nil {
			return err
		}

		compression, err := xodr.ParseCompression(name)
		if err != nil {
			return err
		}

		eopts := []xodr.EncoderOption{xodr.WithCompression(compression)}

		if indent, _ := flags.GetBool("indent"); indent {
			eopts = append(eopts, xodr.WithIndent())
		}

		if s, _ := flags.GetString("indent-string"); s != "" {
			eopts = append(eopts, xodr.WithIndentString(s))
		}

		var dopts []xodr.DecoderOption
		if v, _ := flags.GetBool("validate"); v {
			dopts = append(dopts, xodr.WithValidation())
		}

		in, err := cli.OpenInput(args)
		if err != nil {
			return err
		}

		defer in.Close()

		return runFormat(in, output, dopts, eopts)
	},
}

// runFormat decodes all of in before path is opened, so path may name the
// input file too.
func runFormat(in io.Reader, path string, dopts []xodr.DecoderOption, eopts []xodr.EncoderOption) error {
	doc, err := xodr.Decode(in, dopts...)
	if err != nil {
		return err
	}

	return cli.WriteOutput(path, func(w io.Writer) error {
		return xodr.Encode(w, doc, eopts...)
	})
}
