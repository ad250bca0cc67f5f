package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"treetop/internal/scan"
)

// interactiveLoop prompts for scan parameters and runs one scan per
// round until the user quits or input is exhausted. The chosen mode is
// passed down explicitly each round; nothing persists between rounds
// except the prompt defaults, which start from the merged settings.
func interactiveLoop(ctx context.Context, st *settings, logger zerolog.Logger) error {
	return promptLoop(ctx, bufio.NewScanner(os.Stdin), st, logger)
}

func promptLoop(ctx context.Context, in *bufio.Scanner, st *settings, logger zerolog.Logger) error {
	for {
		mode, quit := askMode(in, st.mode)
		if quit {
			return nil
		}

		root, ok := ask(in, "Directory to scan", st.root)
		if !ok {
			return nil
		}

		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			fmt.Printf("%q is not an existing directory\n\n", root)

			continue
		}

		top, ok := askInt(in, "Number of results", st.top)
		if !ok {
			return nil
		}

		cutoff := st.olderThan

		answer, ok := ask(in, "Age cutoff (date, 30d or 72h; blank for none)", "")
		if !ok {
			return nil
		}

		if answer != "" {
			cutoff, err = parseAge(answer, time.Now())
			if err != nil {
				fmt.Printf("%v\n\n", err)

				continue
			}
		}

		round := *st
		round.mode = mode
		round.root = root
		round.top = top
		round.olderThan = cutoff

		if err := scanOnce(ctx, &round, logger); err != nil {
			logger.Error().Err(err).Msg("scan failed")
		}

		// Carry the round's answers forward as next defaults.
		st.root = root
		st.top = top

		fmt.Println()
	}
}

func askMode(in *bufio.Scanner, current scan.Mode) (mode scan.Mode, quit bool) {
	hint := "f"
	if current == scan.ModeDirectories {
		hint = "d"
	}

	for {
		answer, ok := ask(in, "Scan [f]iles, [d]irectories or [q]uit", hint)
		if !ok {
			return "", true
		}

		switch strings.ToLower(answer) {
		case "f", "files":
			return scan.ModeFiles, false
		case "d", "dirs", "directories":
			return scan.ModeDirectories, false
		case "q", "quit", "exit":
			return "", true
		}
	}
}

// ask prompts for one line and returns the trimmed answer, or the
// fallback on a blank line. ok is false once input is exhausted, so
// callers can stop prompting instead of looping on the fallback.
func ask(in *bufio.Scanner, label, fallback string) (answer string, ok bool) {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}

	if !in.Scan() {
		return "", false
	}

	answer = strings.TrimSpace(in.Text())
	if answer == "" {
		return fallback, true
	}

	return answer, true
}

func askInt(in *bufio.Scanner, label string, fallback int) (int, bool) {
	for {
		answer, ok := ask(in, label, strconv.Itoa(fallback))
		if !ok {
			return 0, false
		}

		value, err := strconv.Atoi(answer)
		if err == nil && value > 0 {
			return value, true
		}

		fmt.Println("enter a positive integer")
	}
}
