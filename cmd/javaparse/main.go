// Command javaparse is the CLI named in spec.md §6: it walks each PATH
// argument (a file or directory), parses every .java file it finds, and
// reports one error per file to standard error, exiting non-zero on the
// first failure. It is the teacher's cobra-based command shape
// (cmd/javalyzer/main.go) cut down to this module's single parse
// operation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/c2nes/javalang/lexer"
	"github.com/c2nes/javalang/parser"
	"github.com/c2nes/javalang/unparser"
)

func main() {
	var walk bool
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "javaparse",
		Short: "Parse Java 8 source files and report syntax errors",
	}

	parseCmd := &cobra.Command{
		Use:   "parse PATH...",
		Short: "Parse every .java file under each PATH",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, walk, debug)
		},
	}
	parseCmd.Flags().BoolVar(&walk, "walk", false, "dump the parsed tree for every file")
	parseCmd.Flags().BoolVar(&debug, "debug", false, "enable trace logging of the tokens the parser expects")

	rootCmd.AddCommand(parseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runParse collects the .java files reachable from paths and parses them
// in order, stopping at the first SyntaxError or I/O error per spec.md
// §6 ("exits non-zero on first failure").
func runParse(paths []string, walk, debug bool) error {
	logger := commonlog.GetLogger("javaparse")

	files, err := collectJavaFiles(paths)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := parseFile(file, walk, debug, logger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}

	return nil
}

func parseFile(file string, walk, debug bool, logger commonlog.Logger) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	tokens, err := lexer.Tokenize(data)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	opts := []parser.Option{parser.WithFile(file)}
	if debug {
		opts = append(opts, parser.WithLogger(logger), parser.WithTraceEnabled(true))
	}

	unit, err := parser.Parse(tokens, opts...)
	if err != nil {
		logger.Warning(err.Error())
		return err
	}

	if walk {
		fmt.Println(unit.String())
	} else {
		fmt.Println(unparser.Unparse(unit))
	}

	return nil
}

// collectJavaFiles expands paths into a sorted-by-walk-order list of
// .java files: a file argument is taken as-is (regardless of extension,
// so a caller can force-parse a non-.java-suffixed source), a directory
// argument is walked recursively and only its .java members are kept.
func collectJavaFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			if filepath.Ext(p) == ".java" {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return files, nil
}
