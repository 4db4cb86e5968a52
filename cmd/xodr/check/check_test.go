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


package check

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/xodr/validate"
)

const sample = "../../../testdata/sample.xodr"

const dangling = `<OpenDRIVE><header revMajor="1" revMinor="7"/>` +
	`<road id="1" junction="-1" length="10">` +
	`<link><successor elementType="road" elementId="9" contactPoint="start"/></link>` +
	`<planView><geometry s="0" x="0" y="0" hdg="0" length="10"><line/></geometry></planView>` +
	`<lanes><laneSection s="0"><center><lane id="0" type="none"/></center></laneSection></lanes>` +
	`</road></OpenDRIVE>`

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	saved := out
	out = buf

	t.Cleanup(func() { out = saved })

	return buf
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunCheck(t *testing.T) {
	bad := writeFile(t, "dangling.xodr", dangling)
	broken := writeFile(t, "broken.xodr", "<OpenDRIVE>")

	reports, err := runCheck([]string{sample, bad, broken}, 2)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, sample, reports[0].Path)
	assert.True(t, reports[0].ok())

	assert.Equal(t, bad, reports[1].Path)
	assert.Empty(t, reports[1].Error)
	require.Len(t, reports[1].Issues, 1)
	assert.Equal(t, validate.CodeDanglingReference, reports[1].Issues[0].Code)
	assert.Equal(t, "/OpenDRIVE/road[0]/link/successor", reports[1].Issues[0].Path)

	assert.Equal(t, broken, reports[2].Path)
	assert.Contains(t, reports[2].Error, broken)
	assert.Empty(t, reports[2].Issues)
}

func TestRenderText(t *testing.T) {
	buf := capture(t)

	reports := []*report{
		{Path: "a.xodr"},
		{Path: "b.xodr", Error: "line 1: unexpected EOF"},
		{Path: "c.xodr", Issues: validate.Issues{
			{Path: "/OpenDRIVE/road[0]", Code: validate.CodeDomainRange, Message: "negative length"},
		}},
	}

	for _, r := range reports {
		require.NoError(t, render(r, false))
	}

	assert.Equal(t, `a.xodr: ok
b.xodr: error: line 1: unexpected EOF
c.xodr: domain_range at /OpenDRIVE/road[0]: negative length
`, buf.String())
}

func TestRenderJSON(t *testing.T) {
	buf := capture(t)

	r := check("c.xodr", func() error {
		return validate.Issues{{Path: "/OpenDRIVE", Code: validate.CodeUniqueness, Message: "duplicate"}}
	})
	require.NoError(t, render(r, true))
	require.NoError(t, render(check("d.xodr", func() error { return nil }), true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	got := &report{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), got))
	assert.Equal(t, r, got)

	assert.Equal(t, `{"path":"d.xodr"}`, lines[1])
}
