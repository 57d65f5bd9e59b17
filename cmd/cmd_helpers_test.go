package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree with stdin and returns combined output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--"+logFileFlagName, filepath.Join(t.TempDir(), "test.log")))

	err := root.Execute()

	return out.String(), err
}

// requireInOrder checks that every part occurs in s, each after the previous one.
func requireInOrder(t *testing.T, s string, parts ...string) {
	t.Helper()

	rest := s
	for _, part := range parts {
		i := strings.Index(rest, part)
		require.GreaterOrEqual(t, i, 0, "missing %q after previous parts in:\n%s", part, s)
		rest = rest[i+len(part):]
	}
}
