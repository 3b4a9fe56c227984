// shell.go - Interactive shell
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
)

// runShell reads commands with line editing and history until quit or EOF.
func runShell(cfg *config.Config, board *chess.Board) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	session := NewSession(cfg, board, rl.Stdout())

	fmt.Fprintf(rl.Stdout(), "movecheck %s\n", programVersion)
	fmt.Fprintf(rl.Stdout(), "Type 'help' for commands\n\n")

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		quit, err := session.Execute(line)
		if err != nil {
			if werr := session.Report(line, err); werr != nil {
				return werr
			}
		}
		if quit {
			break
		}
	}

	return session.Close()
}
