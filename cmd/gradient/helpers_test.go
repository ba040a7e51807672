package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

type fixedColours []gradient.Colour

func (f *fixedColours) Generate() gradient.Colour {
	c := (*f)[0]
	if len(*f) > 1 {
		*f = (*f)[1:]
	}
	return c
}

// stubGenerator makes generated colours predictable for the test.
func stubGenerator(t *testing.T, colours ...gradient.Colour) {
	t.Helper()

	original := newGenerator
	t.Cleanup(func() { newGenerator = original })
	newGenerator = func() gradient.ColourGenerator {
		seq := fixedColours(colours)
		return &seq
	}
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func() bool { return tty }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gradient.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
