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


package info

import (
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"m4o.io/xodr"
	"m4o.io/xodr/cmd/xodr/cli"
	"m4o.io/xodr/model"
)

var out io.Writer = os.Stdout

type summary struct {
	model.Header `yaml:",inline"`

	Extent        *model.BoundingBox `json:"extent,omitempty" yaml:"extent,omitempty"`
	RoadCount     int64              `json:"road_count" yaml:"road_count"`
	JunctionCount int64              `json:"junction_count" yaml:"junction_count"`
	LaneCount     int64              `json:"lane_count" yaml:"lane_count"`
	ObjectCount   int64              `json:"object_count" yaml:"object_count"`
	TotalLength   model.Length       `json:"total_length" yaml:"total_length"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.StringP("format", "f", "text", "output format: text, json or yaml")
	flags.Int("max-depth", xodr.DefaultMaxDepth, "maximum element nesting depth")
}

var infoCmd = &cobra.Command{
	Use:   "info [<OpenDRIVE file>]",
	Short: "Print information about an OpenDRIVE file",
	Long:  "Print the header and element counts of an OpenDRIVE file, compressed or not",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		format, err := flags.GetString("format")
		if err != nil {
			return err
		}

		maxDepth, err := flags.GetInt("max-depth")
		if err != nil {
			return err
		}

		in, err := cli.OpenInput(args)
		if err != nil {
			return err
		}

		info, err := runInfo(in, xodr.WithMaxDepth(maxDepth))
		if cerr := in.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return err
		}

		return render(info, format)
	},
}

func runInfo(in io.Reader, opts ...xodr.DecoderOption) (*summary, error) {
	doc, err := xodr.Decode(in, opts...)
	if err != nil {
		return nil, err
	}

	info := &summary{
		Header:        doc.Header,
		Extent:        doc.Extent(),
		RoadCount:     int64(len(doc.Roads)),
		JunctionCount: int64(len(doc.Junctions)),
		TotalLength:   doc.TotalLength(),
	}

	for i := range doc.Roads {
		r := &doc.Roads[i]

		info.LaneCount += int64(r.Lanes.Count())
		if r.Objects != nil {
			info.ObjectCount += int64(len(r.Objects.Objects))
		}
	}

	return info, nil
}

func render(info *summary, format string) error {
	switch format {
	case "text":
		renderTxt(info)

		return nil
	case "json":
		return renderJSON(info)
	case "yaml":
		return renderYAML(info)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderJSON(info *summary) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(b))

	return err
}

func renderYAML(info *summary) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	if err := enc.Encode(info); err != nil {
		return err
	}

	return enc.Close()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func renderTxt(info *summary) {
	fmt.Fprintf(out, "Revision: %d.%d\n", info.RevMajor, info.RevMinor)
	fmt.Fprintf(out, "Name: %s\n", deref(info.Name))
	fmt.Fprintf(out, "Version: %s\n", deref(info.Version))
	fmt.Fprintf(out, "Date: %s\n", deref(info.Date))
	fmt.Fprintf(out, "Vendor: %s\n", deref(info.Vendor))

	if b := info.Bounds(); b != nil {
		fmt.Fprintf(out, "Bounds: %s\n", b)
	}

	if info.Extent != nil {
		fmt.Fprintf(out, "Extent: %s\n", info.Extent)
	}

	fmt.Fprintf(out, "RoadCount: %s\n", humanize.Comma(info.RoadCount))
	fmt.Fprintf(out, "JunctionCount: %s\n", humanize.Comma(info.JunctionCount))
	fmt.Fprintf(out, "LaneCount: %s\n", humanize.Comma(info.LaneCount))
	fmt.Fprintf(out, "ObjectCount: %s\n", humanize.Comma(info.ObjectCount))
	fmt.Fprintf(out, "TotalLength: %s\n", humanize.SIWithDigits(info.TotalLength.Meters(), 2, "m"))
}
