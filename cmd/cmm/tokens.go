package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mgomes/cmm/cmm"
)

func newTokensCommand() *cobra.Command {
	var inline string

	cmd := &cobra.Command{
		Use:   "tokens [script]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args, inline)
			if err != nil {
				return err
			}
			tokens, err := cmm.Tokenize(source)
			if err != nil {
				return fmt.Errorf("tokenize failed: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				if tok.IsEOF() {
					fmt.Fprintln(out, tok.Type)
					continue
				}
				fmt.Fprintf(out, "%-6s %s\n", tok.Type, tok.Literal)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inline, "eval", "e", "", "tokenize the given source instead of a script file")
	return cmd
}
