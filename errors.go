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


package xodr

import (
	"m4o.io/xodr/internal/decoder"
	"m4o.io/xodr/internal/encoder"
	"m4o.io/xodr/validate"
)

// Errors raised while decoding.  Match them with errors.As.
type (
	MissingAttributeError       = decoder.MissingAttributeError
	InvalidValueError           = decoder.InvalidValueError
	MissingElementError         = decoder.MissingElementError
	DuplicateElementError       = decoder.DuplicateElementError
	UnexpectedChildElementError = decoder.UnexpectedChildElementError
	SyntaxError                 = decoder.SyntaxError
)

// Issues is returned by Decode when validation is enabled and the document
// breaks a semantic rule.
type (
	Issue  = validate.Issue
	Issues = validate.Issues
)

// Codes of the issues reported by validation.
const (
	CodeDomainRange       = validate.CodeDomainRange
	CodeInvalidFormat     = validate.CodeInvalidFormat
	CodeConflict          = validate.CodeConflict
	CodeUniqueness        = validate.CodeUniqueness
	CodeOrdering          = validate.CodeOrdering
	CodeDanglingReference = validate.CodeDanglingReference
)

// AsIssues extracts the validation issues carried by err, if any.
func AsIssues(err error) (Issues, bool) {
	return validate.AsIssues(err)
}

var (
	// ErrMaxDepthExceeded is returned when elements nest deeper than allowed,
	// both while decoding and while encoding.
	ErrMaxDepthExceeded = decoder.ErrMaxDepthExceeded

	// ErrUnexpectedEOF is returned when the input ends inside an element.
	ErrUnexpectedEOF = decoder.ErrUnexpectedEOF

	// ErrUnknownCompression is returned for an unsupported compression.
	ErrUnknownCompression = encoder.ErrUnknownCompression
)
