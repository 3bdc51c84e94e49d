package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dot/bench"
	"github.com/cwbudde/algo-dot/dot"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

var lineRe = regexp.MustCompile(`^([a-z]+):\t \((\S+), (\S+)\)$`)

func TestRunTextOutput(t *testing.T) {
	out, _, err := execute(t, "-n", "100", "--seed", "3", "-b", "naive", "-b", "unrolled")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	for i, want := range []string{"naive", "unrolled"} {
		m := lineRe.FindStringSubmatch(lines[i])
		require.NotNil(t, m, "line %q does not match the result format", lines[i])
		assert.Equal(t, want, m[1])
	}
}

func TestRunSubcommandJSON(t *testing.T) {
	out, _, err := execute(t, "run", "-n", "64", "--seed", "5", "-b", "naive,spectral", "--format", "json")
	require.NoError(t, err)

	var report struct {
		N       int    `json:"n"`
		Seed    uint64 `json:"seed"`
		Results []struct {
			Label string  `json:"label"`
			Value float64 `json:"value"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, 64, report.N)
	assert.Equal(t, uint64(5), report.Seed)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "naive", report.Results[0].Label)
	assert.Equal(t, "spectral", report.Results[1].Label)
	assert.InEpsilon(t, report.Results[0].Value, report.Results[1].Value, 1e-9)
}

func TestRunUnknownBackend(t *testing.T) {
	_, _, err := execute(t, "-n", "10", "-b", "fortran")
	require.Error(t, err)
	assert.ErrorIs(t, err, dot.ErrUnknownBackend)
}

func TestRunBadFormat(t *testing.T) {
	_, _, err := execute(t, "-n", "10", "-b", "naive", "--format", "xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dotbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 32\nseed: 11\nbackends: [naive]\nformat: yaml\n"), 0o600))

	out, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "n: 32")
	assert.Contains(t, out, "seed: 11")
	assert.Contains(t, out, "label: naive")

	// Flags win over the file.
	out, _, err = execute(t, "--config", path, "--format", "text")
	require.NoError(t, err)
	assert.Regexp(t, `^naive:\t \(`, out)
}

func TestRunVerboseLogs(t *testing.T) {
	_, errOut, err := execute(t, "-v", "-n", "16", "--seed", "2", "-b", "naive")
	require.NoError(t, err)
	assert.Contains(t, errOut, "dotbench: n=16")
	assert.Contains(t, errOut, "seed=2")
}

func TestVerify(t *testing.T) {
	out, _, err := execute(t, "verify", "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "ok:")
	assert.Contains(t, out, "n=1000")
	for _, b := range dot.Backends() {
		assert.Contains(t, out, b.Name+":\t")
	}
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	for _, name := range []string{"naive", "unrolled", "spectral"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "*")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dotbench dev\n", out)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := execute(t, "run", "extra")
	require.Error(t, err)
}

func TestApplyForceGeneric(t *testing.T) {
	defer cpu.ResetDetection()

	detected := cpu.DetectFeatures()
	applyForceGeneric(true)

	f := cpu.DetectFeatures()
	assert.True(t, f.ForceGeneric)
	assert.Equal(t, detected.Architecture, f.Architecture)
	assert.False(t, cpu.Supports(f, cpu.SIMDSSE2))
	assert.False(t, cpu.Supports(f, cpu.SIMDNEON))
	assert.True(t, cpu.Supports(f, cpu.SIMDNone))
}

func TestApplyForceGenericOff(t *testing.T) {
	defer cpu.ResetDetection()

	applyForceGeneric(false)
	assert.False(t, cpu.DetectFeatures().ForceGeneric)
}
