// Command polaris evaluates Polaris placement scripts against a board
// description and prints the resulting placements.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/woozymasta/polaris"
)

const appName = "polaris"

const usageText = `usage: polaris <command> [flags] [args]

commands:
  resolve <board.json>   print the placement of every entity
  lint <board.json>      print validation issues
  fmt [-w] <script>      print a script in canonical form
  repl                   evaluate expressions interactively
`

// board is the JSON document read by resolve and lint.
type board struct {
	Scripts  []string         `json:"scripts"`  // Script texts found on the board
	Entities []polaris.Entity `json:"entities"` // Entities to place
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "resolve":
		os.Exit(cmdResolve(args))
	case "lint":
		os.Exit(cmdLint(args))
	case "fmt":
		os.Exit(cmdFmt(args))
	case "repl":
		os.Exit(cmdRepl(args))
	case "-h", "--help", "help":
		fmt.Print(usageText)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, os.Args[1])
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}
}

// newLogger returns a console logger on stderr.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("app", appName).
		Logger()
}

// readBoard decodes a board document from path; "-" reads stdin.
func readBoard(path string) (*board, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var b board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &b, nil
}

func cmdResolve(args []string) int {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	debug := fs.Bool("debug", false, "log every applied matcher")
	asJSON := fs.Bool("json", false, "print placements as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	log := newLogger(*debug)
	b, err := readBoard(fs.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("cannot read board")
		return 1
	}

	placements, err := polaris.Resolve(b.Scripts, b.Entities, &polaris.ResolveOptions{Logger: &log})
	if err != nil {
		var dup *polaris.DuplicatePrefixError
		if errors.As(err, &dup) {
			log.Error().Strs("prefixes", dup.Prefixes).Msg("duplicate matcher prefixes, nothing placed")
			return 1
		}
		var dupKeys *polaris.DuplicateEntityError
		if errors.As(err, &dupKeys) {
			log.Error().Strs("keys", dupKeys.Keys).Msg("entities share a key, set distinct ids; nothing placed")
			return 1
		}
		log.Error().Err(err).Msg("resolve failed, nothing placed")
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(placements); err != nil {
			log.Error().Err(err).Msg("encode placements")
			return 1
		}
		return 0
	}

	keys := make([]string, 0, len(placements))
	for k := range placements {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		t := placements[k]
		fmt.Printf("%s\t%.4f\t%.4f\t%.4f\n", k, t.X, t.Y, t.Degrees())
	}

	return 0
}

func cmdLint(args []string) int {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	noUnmatched := fs.Bool("no-unmatched", false, "do not report prefixes that match no entity")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	log := newLogger(false)
	b, err := readBoard(fs.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("cannot read board")
		return 1
	}

	matchers, err := polaris.ReadScripts(b.Scripts, &polaris.ResolveOptions{Logger: &log})
	if err != nil {
		fmt.Println(polaris.Issue{Level: polaris.IssueError, Message: err.Error()})
		return 1
	}

	issues := polaris.Validate(matchers, b.Entities, &polaris.ValidateOptions{DisableUnmatchedCheck: *noUnmatched})
	failed := false
	for _, issue := range issues {
		fmt.Println(issue)
		if issue.Level == polaris.IssueError {
			failed = true
		}
	}

	if failed {
		return 1
	}
	return 0
}

func cmdFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	write := fs.Bool("w", false, "write result back to the file")
	indent := fs.Int("indent", 2, "spaces before each matcher")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	log := newLogger(false)
	path := fs.Arg(0)
	matchers, err := polaris.DecodeScriptFile(path, nil)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("cannot parse script")
		return 1
	}

	opt := &polaris.FormatOptions{Indent: strings.Repeat(" ", *indent)}
	if *write {
		if err := polaris.EncodeScriptFile(path, matchers, opt); err != nil {
			log.Error().Err(err).Str("file", path).Msg("cannot write script")
			return 1
		}
		return 0
	}

	if err := polaris.EncodeScript(os.Stdout, matchers, opt); err != nil {
		log.Error().Err(err).Msg("cannot write script")
		return 1
	}

	return 0
}
