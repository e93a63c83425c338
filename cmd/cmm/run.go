package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mgomes/cmm/cmm"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var inline string

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a program and print its output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args, inline)
			if err != nil {
				return err
			}
			out := &trackingWriter{w: cmd.OutOrStdout()}
			cfg, fileCfg, err := opts.engineConfig(cmd, out)
			if err != nil {
				return err
			}

			engine := cmm.NewEngine(cfg)
			script, err := engine.Compile(source)
			if err != nil {
				return reportCompileError(cmd.OutOrStdout(), err, fileCfg.colorEnabled())
			}
			_, _, runErr := script.Run(nil)
			if out.written && !strings.HasSuffix(engine.Config().PrintSeparator, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if runErr != nil {
				return fmt.Errorf("execution failed: %w", runErr)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inline, "eval", "e", "", "run the given source instead of a script file")
	cmd.Flags().String("separator", "", `text written after every printed integer (escapes \n \t \s)`)
	cmd.Flags().Int("step-quota", 0, "abort after this many statements and loop iterations (0 = unlimited)")
	return cmd
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var inline string

	cmd := &cobra.Command{
		Use:   "check [script]",
		Short: "Parse a program and report syntax errors without running it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args, inline)
			if err != nil {
				return err
			}
			cfg, fileCfg, err := opts.engineConfig(cmd, io.Discard)
			if err != nil {
				return err
			}
			script, err := cmm.NewEngine(cfg).Compile(source)
			if err != nil {
				return reportCompileError(cmd.OutOrStdout(), err, fileCfg.colorEnabled())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d statement(s)\n", len(script.Program().Statements))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inline, "eval", "e", "", "check the given source instead of a script file")
	return cmd
}

// reportCompileError prints syntax diagnostics one per line as the program
// output. Lexical faults are returned untouched.
func reportCompileError(w io.Writer, err error, color bool) error {
	var compileErr *cmm.CompileError
	if !errors.As(err, &compileErr) {
		return fmt.Errorf("compile failed: %w", err)
	}
	for _, diag := range compileErr.Errors {
		line := diag.Error()
		if color {
			line = errorStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	return fmt.Errorf("compile failed: %d syntax error(s)", len(compileErr.Errors))
}

func readSource(args []string, inline string) (string, error) {
	switch {
	case inline != "" && len(args) > 0:
		return "", errors.New("cmm: pass either a script path or --eval, not both")
	case inline != "":
		return inline, nil
	case len(args) == 0:
		return "", errors.New("cmm: script path required")
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve script path: %w", err)
	}
	input, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(input), nil
}

type trackingWriter struct {
	w       io.Writer
	written bool
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		t.written = true
	}
	return t.w.Write(p)
}
