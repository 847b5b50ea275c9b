package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempMatrix(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "matrix.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestTestCmdReportsGraphicIdentity(t *testing.T) {
	path := writeTempMatrix(t, "3 3 3\n1 1 1\n2 2 1\n3 3 1\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"test", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "regularity: true")
}

func TestTreeCmdPrintsOneSumChildren(t *testing.T) {
	path := writeTempMatrix(t, "3 3 3\n1 1 1\n2 2 1\n3 3 1\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tree", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "1-sum")
}

func TestStatsCmdEmitsJSON(t *testing.T) {
	path := writeTempMatrix(t, "1 1 1\n1 1 1\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"stats", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "\"total\"")
}
