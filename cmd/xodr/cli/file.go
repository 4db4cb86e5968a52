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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

// Stdout receives the output of commands writing to "-" or no file at all.
var Stdout io.Writer = os.Stdout

// fileValue is a pflag.Value naming an output file.  Setting it only checks
// that the target directory exists; the file itself is left alone until
// WriteOutput replaces it.
type fileValue struct {
	value    *string
	typename string
}

// NewOutputValue creates a pflag.Value for the path of an output file.
func NewOutputValue(p *string, typename string) pflag.Value {
	return &fileValue{value: p, typename: typename}
}

func (f *fileValue) Set(val string) error {
	if val != "" && val != "-" {
		fi, err := os.Stat(filepath.Dir(val))
		if err != nil {
			return err
		}

		if !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", filepath.Dir(val))
		}
	}

	*f.value = val

	return nil
}

func (f *fileValue) Type() string {
	return f.typename
}

func (f *fileValue) String() string {
	return *f.value
}

// WriteOutput calls write with the destination named by path.  An empty path
// or "-" means Stdout.  Otherwise write fills a temporary file next to path
// which is renamed over path only once write succeeded, so a failed command
// leaves the previous content intact, even when it was also the input.
func WriteOutput(path string, write func(w io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(Stdout)
	}

	mode := os.FileMode(0o644)
	if fi, serr := os.Stat(path); serr == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}

	if err = tmp.Chmod(mode); err != nil {
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
