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


// Package validate checks the semantic rules of a decoded document that the
// decoder deliberately leaves alone: id formats and uniqueness, reference
// targets, s-coordinate ranges and ordering, lane id signs and conflicting
// link attributes.
package validate

import (
	"github.com/reoring/goskema"
)

// Issue is a single finding, addressed by a path such as
// /OpenDRIVE/road[2]/link/predecessor.
type Issue = goskema.Issue

// Issues is a collection of findings that implements error.
type Issues = goskema.Issues

// Issue codes.
const (
	CodeDomainRange   = goskema.CodeDomainRange
	CodeInvalidFormat = goskema.CodeInvalidFormat
	CodeConflict      = goskema.CodeConflict
	CodeUniqueness    = goskema.CodeUniqueness

	// CodeOrdering marks segments whose s-coordinates do not ascend.
	CodeOrdering = "ordering"

	// CodeDanglingReference marks an id that names no road or junction.
	CodeDanglingReference = "dangling_reference"
)

// AsIssues extracts Issues from an error.
func AsIssues(err error) (Issues, bool) {
	return goskema.AsIssues(err)
}

// ByCode returns the issues of iss carrying code.
func ByCode(iss Issues, code string) Issues {
	var out Issues

	for _, i := range iss {
		if i.Code == code {
			out = append(out, i)
		}
	}

	return out
}
