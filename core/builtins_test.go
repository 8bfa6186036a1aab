package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTableOrder(t *testing.T) {
	var names []string
	for _, b := range builtins {
		names = append(names, b.Name)
	}

	assert.Equal(t, []string{"cd", "help", "exit"}, names)
}

func TestCd(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	target, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	s, _, stderr, _ := testShell("")

	assert.Equal(t, statusContinue, Cd(s, []string{"cd", target}))
	assert.Empty(t, stderr.String())

	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestCdMissingArgument(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	s, _, stderr, _ := testShell("")

	assert.Equal(t, statusContinue, Cd(s, []string{"cd"}))
	assert.Equal(t, "lsh: expected argument to \"cd\"\n", stderr.String())

	// The directory change was never attempted.
	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestCdFailure(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	s, _, stderr, _ := testShell("")

	assert.Equal(t, statusContinue, Cd(s, []string{"cd", "/nonexistent/path"}))
	assert.Contains(t, stderr.String(), "lsh: ")

	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}

func TestExit(t *testing.T) {
	s, stdout, stderr, _ := testShell("")

	assert.Equal(t, statusExit, Exit(s, []string{"exit"}))
	assert.Equal(t, statusExit, Exit(s, []string{"exit", "now", "really"}))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHelp(t *testing.T) {
	restore := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = restore })

	s, stdout, stderr, _ := testShell("")

	assert.Equal(t, statusContinue, Help(s, []string{"help"}))
	assert.Empty(t, stderr.String())

	g := goldie.New(t)
	g.Assert(t, "help_output", stdout.Bytes())
}
