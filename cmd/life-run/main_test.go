package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPrintsBlinkerPhase(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{
		"-steps", "1",
		"-print",
		"-set", "w=5", "-set", "h=5", "-set", "wrap=false",
		"-set", "pattern=blinker", "-set", "pattern_x=1", "-set", "pattern_y=2",
	}
	require.NoError(t, run(context.Background(), &out, &errOut, args))

	want := ".....\n..O..\n..O..\n..O..\n.....\n"
	require.Equal(t, want, out.String())
	require.Contains(t, errOut.String(), "population=3")
}

func TestRunStopsWhenExtinct(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lonely.yaml")
	body := "width: 6\nheight: 6\nwrap: false\npattern: blinker\npattern_x: 0\npattern_y: 0\nrule: B/S\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), &out, &errOut, []string{"-config", path, "-steps", "50"}))
	require.Contains(t, errOut.String(), "msg=extinct generation=1")
}

func TestRunRejectsBadInput(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run(context.Background(), &out, &errOut, []string{"-steps", "-1"}))
	require.Error(t, run(context.Background(), &out, &errOut, []string{"-log-level", "chatty"}))
	require.Error(t, run(context.Background(), &out, &errOut, []string{"-set", "w=1", "-set", "wrap=true"}))
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	require.NoError(t, run(ctx, &out, &errOut, []string{"-steps", "10", "-set", "w=8", "-set", "h=8"}))
	require.Contains(t, errOut.String(), "interrupted")
}
