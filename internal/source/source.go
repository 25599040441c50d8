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

// Package source loads script files.
package source

import (
	"fmt"
	"io"
	"os"
)

// Load reads the entire contents of the named script file.
//
// The size is measured up front by seeking to the end of the file and
// back, and exactly that many bytes are read in one pass. A file that
// yields fewer bytes than measured is reported as a read failure.
func Load(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open the file %q: %w", filename, err)
	}
	defer func() { _ = f.Close() }()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return "", fmt.Errorf("failed to determine the size of %q: %w", filename, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind the file %q: %w", filename, err)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", fmt.Errorf("failed to read the file %q: %w", filename, err)
	}

	return string(buf), nil
}
