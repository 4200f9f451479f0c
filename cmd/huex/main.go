package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"pkt.systems/huex"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("huex", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	colorMode := flags.String("color", "auto", "when to emit color: auto, always or never")
	compact := flags.Bool("compact", false, "single-line output without indentation")
	indent := flags.Int("indent", 2, "spaces per indentation level")
	prefix := flags.String("prefix", "", "string prepended to every output line")
	themeName := flags.String("theme", "default", "color theme (see --themes)")
	listThemes := flags.Bool("themes", false, "list available themes and exit")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: huex [flags] [file...]\n\nPretty-prints and colorizes JSON from the given files, or from stdin\nwhen no files (or \"-\") are given.\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *listThemes {
		fmt.Fprintln(stdout, strings.Join(huex.ThemeNames(), "\n"))
		return 0
	}

	mode, err := huex.ParseColorMode(*colorMode)
	if err != nil {
		fmt.Fprintf(stderr, "huex: %v\n", err)
		return 2
	}
	if *indent < 0 {
		fmt.Fprintln(stderr, "huex: --indent must be zero or greater")
		return 2
	}

	opts := &huex.Options{
		Color:   mode,
		Compact: *compact,
		Indent:  strings.Repeat(" ", *indent),
		Prefix:  *prefix,
		Theme:   *themeName,
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		src, err := readInput(path, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "huex: %v\n", err)
			return 1
		}
		if err := huex.RenderJSONTo(stdout, src, opts); err != nil {
			fmt.Fprintf(stderr, "huex: %s: %v\n", displayName(path), err)
			return 1
		}
		// The library emits no trailing newline; one per document here.
		if _, err := io.WriteString(stdout, "\n"); err != nil {
			fmt.Fprintf(stderr, "huex: write error: %v\n", err)
			return 1
		}
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
