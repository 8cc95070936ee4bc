package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsReport(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--n", "60", "--seed", "3", "--log-level", "error"})

	require.NoError(t, cmd.Execute())
	s := out.String()
	assert.Contains(t, s, "MA(1) vs AR(1)")
	assert.Contains(t, s, "theta")
	assert.Contains(t, s, "Ljung-Box")
}

func TestRunExportsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--n", "40", "--method", "lbfgs", "--restarts", "--json", path, "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var r Report
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, 40, r.N)
	assert.Len(t, r.Steps, 40)
	assert.Len(t, r.Forecasts, 5)
	assert.Positive(t, r.Estimated.Sigma)
	assert.Equal(t, r.Steps[0].MA-r.Estimated.Mu, r.Steps[0].FittedEps)
}

func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "est.yaml")
	require.NoError(t, os.WriteFile(path, []byte("optimizer:\n  method: projgrad\n"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--log-level", "error"})
	require.NoError(t, cmd.Execute())
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := [][]string{
		{"--n", "0", "--log-level", "error"},
		{"--method", "annealing", "--log-level", "error"},
		{"--config", "/nonexistent/est.yaml", "--log-level", "error"},
		{"--log-level", "loud"},
	}
	for _, args := range tests {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}
