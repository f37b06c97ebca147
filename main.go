// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/tfctl/csvdiff/internal/cacheutil"
	"github.com/tfctl/csvdiff/internal/command"
	"github.com/tfctl/csvdiff/internal/config"
	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/version"
)

var ctx = context.Background()

// boolFlags names the flags that never take a value.
var boolFlags = []string{"color", "c", "help", "h", "summary", "titles", "t", "version", "v"}

func main() {
	os.Exit(realMain(os.Args, os.Stdout))
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string, w io.Writer) int {
	// Pre-create cache directory when caching is enabled.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}
	app.Writer = w

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain(args []string, w io.Writer) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, w) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	if !slices.Contains(args, "--help") && !slices.Contains(args, "-h") {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args, w)
}

// processSetOnly expands an @set argument into the flags listed under
// "<command>.<set>" in the config file, at the position of the @set.
func processSetOnly(args []string) []string {
	idx := 2
	if len(args) <= idx {
		return args
	}

	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("unknown argument set %s: %v", set, err)
	}

	var expanded []string
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:removeIdx]...)
	out = append(out, expanded...)
	return append(out, args[removeIdx+1:]...)
}

// deduplicateFlags drops earlier occurrences of a repeated flag so the last
// one wins. Positional arguments keep their order.
func deduplicateFlags(args []string) []string {
	type token struct {
		name  string
		parts []string
	}

	var tokens []token
	for i := 0; i < len(args); i++ {
		a := args[i]
		if i < 2 || !strings.HasPrefix(a, "-") || a == "-" || a == "--" {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if eq := strings.Index(name, "="); eq >= 0 {
			tokens = append(tokens, token{name: name[:eq], parts: []string{a}})
			continue
		}

		if !slices.Contains(boolFlags, name) && i+1 < len(args) {
			tokens = append(tokens, token{name: name, parts: []string{a, args[i+1]}})
			i++
			continue
		}
		tokens = append(tokens, token{name: name, parts: []string{a}})
	}

	last := map[string]int{}
	for i, tk := range tokens {
		if tk.name != "" {
			last[tk.name] = i
		}
	}

	out := make([]string, 0, len(args))
	for i, tk := range tokens {
		if tk.name != "" && last[tk.name] != i {
			continue
		}
		out = append(out, tk.parts...)
	}
	return out
}
