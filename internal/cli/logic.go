package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"treetop/internal/explorer"
	"treetop/internal/report"
	"treetop/internal/scan"
)

func run(cmd *cobra.Command, flags rootFlags) error {
	st, err := buildSettings(cmd, flags)
	if err != nil {
		return err
	}

	logger := newLogger(st.debug)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if st.interactive {
		return interactiveLoop(ctx, st, logger)
	}

	return scanOnce(ctx, st, logger)
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// scanOnce performs a single scan with the given settings, writes the
// report and denied log, and prints the terminal summary.
func scanOnce(ctx context.Context, st *settings, logger zerolog.Logger) error {
	enableProgress := !st.debug && isatty.IsTerminal(os.Stderr.Fd())

	// Simple progress callback that prints directly to stderr
	var progressHook func(visited int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(visited int64) {
			fmt.Fprintf(os.Stderr, "\r\033[2KScanning… %s entries\r", humanize.Comma(visited))
		}
	}

	result, err := scan.Run(ctx, scan.Options{
		Root:      st.root,
		Mode:      st.mode,
		Top:       st.top,
		OlderThan: st.olderThan,
		MinSize:   st.minSize,
		Parallel:  st.parallel,
		Logger:    logger,
	}, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	reportPath, err := writeReport(st, result)
	if err != nil {
		return err
	}

	if err := printSummary(os.Stdout, result, reportPath); err != nil {
		return err
	}

	if len(result.AccessDenied) > 0 {
		logger.Warn().
			Int("count", len(result.AccessDenied)).
			Str("log", report.DeniedLogName(reportPath)).
			Msg("some paths could not be accessed")
	}

	if st.open {
		if err := explorer.Reveal(reportPath); err != nil {
			logger.Warn().Err(err).Msg("could not open file manager")
		}
	}

	return nil
}

// writeReport writes the report file and, when needed, the denied log
// next to it. Returns the report path.
func writeReport(st *settings, result *scan.Result) (string, error) {
	path := st.output
	if path == "" {
		name := report.FileName(result.Mode, time.Now())
		if st.format == "json" {
			name = strings.TrimSuffix(name, ".csv") + ".json"
		}

		path = filepath.Join(st.outputDir, name)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report %q: %w", path, err)
	}

	switch st.format {
	case "json":
		err = report.WriteJSON(file, result)
	default:
		err = report.WriteCSV(file, result)
	}

	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return "", fmt.Errorf("writing report %q: %w", path, err)
	}

	if len(result.AccessDenied) > 0 {
		logPath := report.DeniedLogName(path)

		logFile, err := os.Create(logPath)
		if err != nil {
			return "", fmt.Errorf("creating denied log %q: %w", logPath, err)
		}

		err = report.WriteDeniedLog(logFile, result)
		if closeErr := logFile.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			return "", fmt.Errorf("writing denied log %q: %w", logPath, err)
		}
	}

	return path, nil
}
