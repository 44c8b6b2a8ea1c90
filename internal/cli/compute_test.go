package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/engine"
)

func TestRunComputeWritesResultFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.gr")
	outputPath := filepath.Join(dir, "out.td")

	require.NoError(t, os.WriteFile(inputPath, []byte("p tdp 3 2\n1 2\n2 3\n"), 0o644))

	var buf bytes.Buffer
	logger := charmlog.NewWithOptions(&buf, charmlog.Options{})

	require.NoError(t, runCompute(context.Background(), logger, inputPath, outputPath, engine.DefaultConfig()))

	out, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, "2\n2\n0\n2\n", string(out))
}

func TestRunComputeRejectsMissingInput(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger := charmlog.NewWithOptions(&buf, charmlog.Options{})

	err := runCompute(context.Background(), logger, filepath.Join(dir, "missing.gr"), filepath.Join(dir, "out.td"), engine.DefaultConfig())
	require.Error(t, err, "expected an error for a missing input file")
}

func TestRunComputeHandlesDisconnectedInput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.gr")
	outputPath := filepath.Join(dir, "out.td")

	require.NoError(t, os.WriteFile(inputPath, []byte("p tdp 4 2\n1 2\n3 4\n"), 0o644))

	var buf bytes.Buffer
	logger := charmlog.NewWithOptions(&buf, charmlog.Options{})

	require.NoError(t, runCompute(context.Background(), logger, inputPath, outputPath, engine.DefaultConfig()))

	out, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, "2\n0\n1\n0\n3\n", string(out))
}

func TestNewRootCommandHasComputeSubcommand(t *testing.T) {
	root := NewRootCommand()
	cmd, _, err := root.Find([]string{"compute"})
	require.NoError(t, err)
	require.Equal(t, "compute INPUT_FILE OUTPUT_FILE", cmd.Use)
}

func TestComputeRejectsWrongArgCount(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"compute", "only-one-arg"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	require.ErrorIs(t, err, ErrUsage)
}
