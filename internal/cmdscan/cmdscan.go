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

// Package cmdscan wires the command line surface to the loader and the
// interpreter.
package cmdscan

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cmdscan/cmdscan/internal/interp"
	"github.com/cmdscan/cmdscan/internal/source"
)

type Options struct {
	// MaxScriptSize is the script capacity ceiling in bytes, one slot of
	// which is reserved for a terminator. Zero disables the ceiling.
	MaxScriptSize int64
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&o.MaxScriptSize, "max-script-size", interp.DefaultMaxScriptSize,
		"Script capacity ceiling in bytes, terminator slot included. Content beyond the ceiling is silently ignored. 0 disables the ceiling.")
}

func Command() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "cmdscan file",
		Short: "Scan a script file and execute its print commands",
		Long: `cmdscan reads a script file, splits it into whitespace-delimited tokens
and executes every print command it finds: the token immediately after a
print keyword is echoed to standard output as 'Printed: <token>'. All
other tokens are ignored.

A print keyword with no token following it is reported on standard error
and does not fail the run.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return Run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	opts.AddFlags(cmd.Flags())

	return cmd
}

// Run loads the named script and interprets it. Open and read failures
// are returned; a print command missing its argument is reported on
// errOut by the interpreter and does not constitute a failure.
func Run(out, errOut io.Writer, filename string, opts Options) error {
	code, err := source.Load(filename)
	if err != nil {
		return fmt.Errorf("error loading script: %w", err)
	}

	in := interp.New(out, errOut)
	in.MaxScriptSize = opts.MaxScriptSize
	in.Run(code)
	return nil
}
