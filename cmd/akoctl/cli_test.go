package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout while running fn, grounded on
// _examples/joshuapare-hivekit/cmd/hivectl/testing_helpers.go.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	return buf.String(), fnErr
}

func withStdin(t *testing.T, content string, fn func()) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	origStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = origStdin }()

	go func() {
		w.WriteString(content)
		w.Close()
	}()

	fn()
}

func TestRunParse(t *testing.T) {
	var out string
	var err error
	withStdin(t, `window.size 180x190`, func() {
		out, err = captureOutput(t, func() error { return runParse("") })
	})
	require.NoError(t, err)
	require.Contains(t, out, "window")
	require.Contains(t, out, "180x190")
}

func TestRunParseError(t *testing.T) {
	withStdin(t, `&`, func() {
		_, err := captureOutput(t, func() error { return runParse("") })
		require.Error(t, err)
	})
}

func TestRunValidate(t *testing.T) {
	withStdin(t, `a 1`, func() {
		out, err := captureOutput(t, func() error { return runValidate("") })
		require.NoError(t, err)
		require.Contains(t, out, "ok")
	})

	withStdin(t, `[`, func() {
		_, err := captureOutput(t, func() error { return runValidate("") })
		require.Error(t, err)
	})
}

func TestRunQuery(t *testing.T) {
	withStdin(t, `a.b.c 7`, func() {
		out, err := captureOutput(t, func() error { return runQuery("", "a.b.c") })
		require.NoError(t, err)
		require.Equal(t, "7\n", out)
	})

	withStdin(t, `a.b.c 7`, func() {
		_, err := captureOutput(t, func() error { return runQuery("", "a.b.d") })
		require.Error(t, err)
	})
}

func TestRunFmt(t *testing.T) {
	withStdin(t, `+enabled name "x"`, func() {
		out, err := captureOutput(t, func() error {
			fmtPretty = true
			fmtSpaces = false
			defer func() { fmtPretty = false }()
			return runFmt("")
		})
		require.NoError(t, err)
		require.Contains(t, out, "+enabled\n")
		require.Contains(t, out, "name \"x\"")
	})
}
