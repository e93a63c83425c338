package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mgomes/cmm/cmm"
)

const sourceExt = ".cmm"

func newFmtCommand() *cobra.Command {
	var write, check bool

	cmd := &cobra.Command{
		Use:   "fmt <path>...",
		Short: "Rewrite programs in canonical layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectSourceFiles(args)
			if err != nil {
				return err
			}

			changedCount := 0
			for _, path := range files {
				originalBytes, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				original := string(originalBytes)
				program, err := cmm.Parse(original)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				formatted := cmm.Format(program)
				changed := formatted != original
				if changed {
					changedCount++
				}

				switch {
				case check && changed:
					fmt.Fprintln(cmd.OutOrStdout(), path)
				case write && changed:
					info, err := os.Stat(path)
					if err != nil {
						return fmt.Errorf("stat %s: %w", path, err)
					}
					if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
						return fmt.Errorf("write %s: %w", path, err)
					}
				case !write && !check:
					fmt.Fprint(cmd.OutOrStdout(), formatted)
				}
			}

			if check && changedCount > 0 {
				return fmt.Errorf("cmm fmt: %d file(s) need formatting", changedCount)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source files instead of stdout")
	cmd.Flags().BoolVar(&check, "check", false, "list files that need formatting and fail if any do")
	return cmd
}

func collectSourceFiles(targets []string) ([]string, error) {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	addFile := func(path string, explicit bool) {
		if !explicit && filepath.Ext(path) != sourceExt {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}
		files = append(files, abs)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}
		if !info.IsDir() {
			addFile(target, true)
			continue
		}
		err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			addFile(path, false)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
