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

package source_test

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cmdscan/cmdscan/internal/source"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Load", func() {
	var tmpDir string
	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
	})

	It("should return the full file contents", func() {
		filename := filepath.Join(tmpDir, "script.txt")
		Expect(os.WriteFile(filename, []byte("print hello\nprint world\n"), 0666)).To(Succeed())

		code, err := source.Load(filename)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal("print hello\nprint world\n"))
	})

	It("should return an empty string for an empty file", func() {
		filename := filepath.Join(tmpDir, "empty.txt")
		Expect(os.WriteFile(filename, nil, 0666)).To(Succeed())

		code, err := source.Load(filename)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(BeEmpty())
	})

	It("should preserve bytes exactly, including carriage returns", func() {
		filename := filepath.Join(tmpDir, "crlf.txt")
		Expect(os.WriteFile(filename, []byte("print hello\r\n"), 0666)).To(Succeed())

		code, err := source.Load(filename)
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal("print hello\r\n"))
	})

	It("should fail for a nonexistent file", func() {
		_, err := source.Load(filepath.Join(tmpDir, "does-not-exist"))
		Expect(err).To(MatchError(fs.ErrNotExist))
		Expect(err).To(MatchError(ContainSubstring("failed to open the file")))
	})
})
