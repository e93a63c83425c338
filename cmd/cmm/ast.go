package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgomes/cmm/cmm"
)

func newASTCommand(opts *rootOptions) *cobra.Command {
	var inline string

	cmd := &cobra.Command{
		Use:   "ast [script]",
		Short: "Print the syntax tree of a program as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args, inline)
			if err != nil {
				return err
			}
			program, err := cmm.Parse(source)
			if err != nil {
				return reportCompileError(cmd.OutOrStdout(), err, !opts.noColor)
			}
			data, err := cmm.DumpAST(program)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&inline, "eval", "e", "", "dump the given source instead of a script file")
	return cmd
}
