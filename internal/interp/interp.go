// Copyright 2024 The cmdscan authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interp executes the print commands of a script.
package interp

import (
	"fmt"
	"io"

	"github.com/cmdscan/cmdscan/internal/scan"
)

// DefaultMaxScriptSize is the default capacity ceiling in bytes, one slot
// of which is reserved for a terminator: at most DefaultMaxScriptSize-1
// bytes of script are scanned.
const DefaultMaxScriptSize = 1000

const keywordPrint = "print"

// An Interpreter scans a script for print commands. Each print token
// consumes the single token immediately following it as its argument and
// echoes it to Out; every other token is ignored.
type Interpreter struct {
	Out io.Writer
	Err io.Writer

	// MaxScriptSize bounds the scanned script, terminator slot included.
	// Content beyond MaxScriptSize-1 bytes is silently ignored. Zero
	// disables the bound.
	MaxScriptSize int64
}

func New(out, err io.Writer) *Interpreter {
	return &Interpreter{Out: out, Err: err, MaxScriptSize: DefaultMaxScriptSize}
}

// Run scans src and executes its print commands. A print with no token
// following it is reported to Err; it does not fail the run.
func (in *Interpreter) Run(src string) {
	if in.MaxScriptSize > 0 && int64(len(src)) >= in.MaxScriptSize {
		src = src[:in.MaxScriptSize-1]
	}

	s := scan.New(src)
	for {
		tok, ok := s.Next()
		if !ok {
			return
		}
		if tok.Text != keywordPrint {
			continue
		}

		arg, ok := s.Next()
		if !ok {
			_, _ = fmt.Fprintf(in.Err, "Error: Missing argument for print (line %d, column %d)\n", tok.Line, tok.Column)
			return
		}

		// The argument is consumed as data, never as a keyword.
		_, _ = fmt.Fprintf(in.Out, "Printed: %s\n", arg.Text)
	}
}
