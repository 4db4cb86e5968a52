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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xodr")

	var out string
	v := NewOutputValue(&out, "file")

	require.NoError(t, v.Set(path))
	assert.Equal(t, path, out)
	assert.Equal(t, path, v.String())
	assert.Equal(t, "file", v.Type())

	_, err := os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "setting the flag must not create the file")

	assert.Error(t, v.Set(filepath.Join(dir, "missing", "out.xodr")))
	assert.Equal(t, path, out)
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")

		return err
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestWriteOutputFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := WriteOutput(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")

		return boom
	})
	assert.ErrorIs(t, err, boom)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteOutputStdout(t *testing.T) {
	var buf bytes.Buffer

	saved := Stdout
	Stdout = &buf

	defer func() { Stdout = saved }()

	for _, path := range []string{"", "-"} {
		buf.Reset()
		require.NoError(t, WriteOutput(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "hello")

			return err
		}))
		assert.Equal(t, "hello", buf.String())
	}
}
