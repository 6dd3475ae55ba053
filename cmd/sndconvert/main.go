package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"sndconvert/internal/services"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree and returns the process exit code. Fatal
// errors are printed to stderr and exit 1; files that fail to convert do not
// change the exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(directoryArgs(cmd, args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(stderr, err)
		}
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, services.ErrDirectoryNotFound) {
		fmt.Fprintf(w, "File not found error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Unhandled error: %v\n", err)
}

// directoryArgs ends flag and subcommand parsing in front of the first
// positional argument when it names both a subcommand and an existing
// directory, so "sndconvert tools" converts ./tools if it exists.
func directoryArgs(root *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args
		case arg == "-c" || arg == "--config":
			i++
			continue
		case strings.HasPrefix(arg, "-"):
			continue
		}
		if !isSubcommand(root, arg) {
			return args
		}
		if info, err := os.Stat(arg); err != nil || !info.IsDir() {
			return args
		}
		rewritten := make([]string, 0, len(args)+1)
		rewritten = append(rewritten, args[:i]...)
		rewritten = append(rewritten, "--")
		return append(rewritten, args[i:]...)
	}
	return args
}

func isSubcommand(root *cobra.Command, name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, sub := range root.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}
