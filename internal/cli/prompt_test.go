package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treetop/internal/scan"
)

func scannerFor(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestAsk(t *testing.T) {
	t.Run("answer wins over fallback", func(t *testing.T) {
		answer, ok := ask(scannerFor("  /data  \n"), "Directory", "/home")
		require.True(t, ok)
		assert.Equal(t, "/data", answer)
	})

	t.Run("blank line keeps the fallback", func(t *testing.T) {
		answer, ok := ask(scannerFor("\n"), "Directory", "/home")
		require.True(t, ok)
		assert.Equal(t, "/home", answer)
	})

	t.Run("exhausted input is not an answer", func(t *testing.T) {
		_, ok := ask(scannerFor(""), "Directory", "/home")
		assert.False(t, ok)
	})
}

func TestAskMode(t *testing.T) {
	t.Run("selects a mode", func(t *testing.T) {
		mode, quit := askMode(scannerFor("d\n"), scan.ModeFiles)
		require.False(t, quit)
		assert.Equal(t, scan.ModeDirectories, mode)
	})

	t.Run("q quits", func(t *testing.T) {
		_, quit := askMode(scannerFor("q\n"), scan.ModeFiles)
		assert.True(t, quit)
	})

	t.Run("exhausted input quits instead of replaying the hint", func(t *testing.T) {
		in := scannerFor("")

		_, quit := askMode(in, scan.ModeFiles)
		assert.True(t, quit)

		_, quit = askMode(in, scan.ModeDirectories)
		assert.True(t, quit)
	})
}

func TestAskInt(t *testing.T) {
	t.Run("retries until a positive integer", func(t *testing.T) {
		value, ok := askInt(scannerFor("zero\n-3\n7\n"), "Number of results", 20)
		require.True(t, ok)
		assert.Equal(t, 7, value)
	})

	t.Run("exhausted input stops asking", func(t *testing.T) {
		_, ok := askInt(scannerFor("nope\n"), "Number of results", 20)
		assert.False(t, ok)
	})
}

func TestPromptLoopEndsOnClosedInput(t *testing.T) {
	st := &settings{root: t.TempDir(), mode: scan.ModeFiles, top: 5, format: "csv"}

	// A closed stdin must terminate the loop instead of scanning the
	// default root forever.
	err := promptLoop(context.Background(), scannerFor(""), st, zerolog.Nop())
	require.NoError(t, err)
}
