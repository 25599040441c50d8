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

// Package scan splits script text into whitespace-delimited tokens.
package scan

import "strings"

// delimiters are the characters separating tokens. Carriage return is not
// among them and is ordinary token content.
const delimiters = " \t\n"

func isDelimiter(b byte) bool {
	return strings.IndexByte(delimiters, b) >= 0
}

// A Token is a maximal run of non-delimiter bytes. Line and Column are
// 1-based and locate the token's first byte in the source.
type Token struct {
	Text   string
	Line   int
	Column int
}

// A Scanner produces the tokens of a script from left to right. The source
// is never modified and consumed input is never revisited.
type Scanner struct {
	src    string
	pos    int
	line   int
	column int
}

func New(src string) *Scanner {
	return &Scanner{src: src, line: 1, column: 1}
}

// Next returns the next token of the source. The second return value is
// false once no tokens remain.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) && isDelimiter(s.src[s.pos]) {
		if s.src[s.pos] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		s.pos++
	}

	if s.pos == len(s.src) {
		return Token{}, false
	}

	tok := Token{Line: s.line, Column: s.column}
	start := s.pos
	for s.pos < len(s.src) && !isDelimiter(s.src[s.pos]) {
		s.pos++
		s.column++
	}
	tok.Text = s.src[start:s.pos]
	return tok, true
}
