package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/woozymasta/polaris"
)

const (
	historyFile = ".polaris_history"
	prompt      = "polaris> "
)

const replHelp = `Enter an expression, e.g. mm(1, 2) @ deg(90).
  :index N   bind index to N for the following expressions
  :names     list visible names
  :quit      exit
`

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	root := polaris.NewRootScope()
	scope := withIndex(root, 0)
	fmt.Print(replHelp)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			fields := strings.Fields(line)
			switch fields[0] {
			case ":quit":
				return 0
			case ":names":
				fmt.Println(strings.Join(scope.Names(), " "))
			case ":index":
				if len(fields) != 2 {
					fmt.Fprintln(os.Stderr, "usage: :index N")
					continue
				}
				v, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					continue
				}
				scope = withIndex(root, v)
			default:
				fmt.Print(replHelp)
			}
			continue
		}

		n, err := polaris.ParseExpression(line, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		v, err := polaris.Evaluate(scope, n)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(describe(v))
	}
}

// withIndex returns a child of root binding index to v.
func withIndex(root *polaris.Scope, v float64) *polaris.Scope {
	return polaris.NewScope(root, map[string]polaris.Binding{
		polaris.IndexVariable: polaris.Variable{Value: polaris.Number(v)},
	})
}

// describe renders a value with the angle in degrees for poses.
func describe(v polaris.Value) string {
	if v.Kind != polaris.ValuePose {
		return v.String()
	}

	t := v.Pose
	return fmt.Sprintf("x=%g mm  y=%g mm  theta=%g rad (%g deg)", t.X, t.Y, t.Theta, t.Degrees())
}
