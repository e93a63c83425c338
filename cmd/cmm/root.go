package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mgomes/cmm/cmm"
)

type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cmm",
		Short: "Interpreter for the C-- language",
		Long: `cmm runs programs written in C--, a tiny integer-only imperative language.

Commands:
  run      Run a program and print its output
  check    Parse a program and report syntax errors without running it
  tokens   Print the token stream of a program
  ast      Print the syntax tree of a program as YAML
  fmt      Rewrite programs in canonical layout
  analyze  Report likely runtime faults and non-terminating loops
  repl     Start an interactive session
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./"+defaultConfigFile+" when present)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log pipeline phases to stderr")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newRunCommand(opts),
		newCheckCommand(opts),
		newTokensCommand(),
		newASTCommand(opts),
		newFmtCommand(),
		newAnalyzeCommand(opts),
		newREPLCommand(opts),
	)
	return root
}

// engineConfig merges the config file with command flags. Flags win.
func (o *rootOptions) engineConfig(cmd *cobra.Command, stdout io.Writer) (cmm.Config, cliConfig, error) {
	fileCfg, err := loadCLIConfig(o.configPath)
	if err != nil {
		return cmm.Config{}, cliConfig{}, err
	}

	if flags := cmd.Flags(); flags.Lookup("separator") != nil && flags.Changed("separator") {
		fileCfg.Separator, _ = flags.GetString("separator")
	}
	if flags := cmd.Flags(); flags.Lookup("step-quota") != nil && flags.Changed("step-quota") {
		fileCfg.StepQuota, _ = flags.GetInt("step-quota")
	}
	if o.noColor {
		disabled := false
		fileCfg.Color = &disabled
	}

	cfg := cmm.Config{
		Stdout:         stdout,
		PrintSeparator: unescapeSeparator(fileCfg.Separator),
		StepQuota:      fileCfg.StepQuota,
		Logger:         o.logger(cmd),
	}
	return cfg, fileCfg, nil
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}
