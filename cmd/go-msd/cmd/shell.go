// Copyright 2026 The go-msd Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the "shell" subcommand, an interactive MSD
// exploration REPL.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/smdbs01/go-msd"
)

const (
	historyFile = ".go-msd_history"
	promptMain  = "msd> "
	promptCont  = "...> "
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Explore MSD parsing interactively",
	Long: `Shell reads MSD input line by line and prints the parameters each
complete document parses into. Input that ends inside an unterminated
parameter continues on the next line. ":tokens" toggles a token-level
dump, ":help" lists commands and ":quit" exits.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "go-msd shell (:help for commands, :quit to exit)")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	showTokens := false

	for {
		src, ok := readDocumentLines(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			switch strings.TrimSpace(strings.ToLower(src)) {
			case ":quit", ":q":
				return nil
			case ":tokens":
				showTokens = !showTokens
				fmt.Fprintf(out, "token dump %s\n", onOff(showTokens))
			case ":help":
				fmt.Fprint(out, shellHelp)
			default:
				fmt.Fprintln(out, "unknown command. Type :help for commands, :quit to exit.")
			}
			continue
		}

		if strings.TrimSpace(src) == "" {
			continue
		}

		if showTokens {
			dumpTokens(out, src)
		}

		params, err := msd.Parse([]byte(src), parserOptions()...)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		for _, p := range params {
			fmt.Fprintf(out, "%q\n", p.Components)
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

const shellHelp = `:tokens  toggle the token-level dump
:help    show this help
:quit    exit the shell
Anything else is parsed as an MSD document. Input ending inside an
unterminated parameter continues on the next line.
`

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// readDocumentLines collects input lines until they form a complete
// document. The second return value is false on EOF.
func readDocumentLines(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !endsInsideParameter(src) {
			return src, true
		}
	}
}

// endsInsideParameter reports whether src stops inside an unterminated
// parameter, meaning further lines can still complete it.
func endsInsideParameter(src string) bool {
	scanner, err := msd.NewScanner(strings.NewReader(src), parserOptions()...)
	if err != nil {
		return false
	}
	inside := false
	var tok msd.Token
	for {
		if scanner.Scan(&tok) != nil {
			// only io.EOF on a strings.Reader
			return inside
		}
		switch tok.Type {
		case msd.StartParameterToken:
			inside = true
		case msd.EndParameterToken:
			inside = false
		}
	}
}

// dumpTokens prints the aligned token dump used by the tokens
// subcommand for one in-memory document.
func dumpTokens(w io.Writer, src string) {
	scanner, err := msd.NewScanner(strings.NewReader(src), parserOptions()...)
	if err != nil {
		return
	}
	var tok msd.Token
	for scanner.Scan(&tok) == nil {
		fmt.Fprintf(w, "%-15s %q\n", tok.Type, tok.Text)
	}
}
