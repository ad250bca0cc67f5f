package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"treetop/internal/config"
	"treetop/internal/scan"
)

// rootFlags holds the raw flag values as parsed by cobra.
type rootFlags struct {
	root        string
	dirs        bool
	top         int
	olderThan   string
	minSize     string
	output      string
	format      string
	configFile  string
	parallel    bool
	open        bool
	interactive bool
	debug       bool
}

// settings is the merged, validated input for one scan session: config
// file values overridden by whichever flags were actually set.
type settings struct {
	root        string
	mode        scan.Mode
	top         int
	olderThan   *time.Time
	minSize     int64
	outputDir   string
	output      string
	format      string
	parallel    bool
	open        bool
	interactive bool
	debug       bool
}

var allowedFormats = []string{"csv", "json"}

// buildSettings merges flags over the loaded config and validates the
// result.
func buildSettings(cmd *cobra.Command, flags rootFlags) (*settings, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}

	st := &settings{
		root:        flags.root,
		top:         cfg.Top,
		outputDir:   cfg.OutputDir,
		output:      flags.output,
		format:      strings.ToLower(flags.format),
		parallel:    cfg.Parallel,
		open:        cfg.OpenReport,
		interactive: flags.interactive,
		debug:       flags.debug,
	}

	if st.root == "" {
		st.root = "."
	}

	mode, err := scan.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	st.mode = mode
	if cmd.Flags().Changed("dirs") {
		st.mode = scan.ModeFiles
		if flags.dirs {
			st.mode = scan.ModeDirectories
		}
	}

	if cmd.Flags().Changed("top") {
		st.top = flags.top
	}

	if st.top <= 0 {
		return nil, errors.New("top must be a positive integer")
	}

	if cmd.Flags().Changed("parallel") {
		st.parallel = flags.parallel
	}

	if cmd.Flags().Changed("open") {
		st.open = flags.open
	}

	if !slices.Contains(allowedFormats, st.format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", flags.format, allowedFormats)
	}

	age := cfg.OlderThan
	if cmd.Flags().Changed("older-than") {
		age = flags.olderThan
	}

	st.olderThan, err = parseAge(age, time.Now())
	if err != nil {
		return nil, err
	}

	minSize := cfg.MinSize
	if cmd.Flags().Changed("min-size") {
		minSize = flags.minSize
	}

	if minSize != "" {
		size, err := humanize.ParseBytes(minSize)
		if err != nil {
			return nil, fmt.Errorf("invalid min-size: %w", err)
		}

		st.minSize = int64(size)
	}

	return st, nil
}

// parseAge interprets an age argument as a cutoff instant: an absolute
// date ("2006-01-02", midnight local time), a day count ("30d"), or a Go
// duration ("72h"). Empty input means no age filter.
func parseAge(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return &t, nil
	}

	if days, err := strconv.Atoi(strings.TrimSuffix(s, "d")); err == nil && strings.HasSuffix(s, "d") {
		t := now.AddDate(0, 0, -days)

		return &t, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		t := now.Add(-d)

		return &t, nil
	}

	return nil, fmt.Errorf("invalid age %q: use a date (2006-01-02), days (30d) or a duration (72h)", s)
}
