package driver_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightmoves/internal/driver"
	"github.com/katalvlaran/knightmoves/knight"
)

func TestRun_DefaultScenariosPass(t *testing.T) {
	var buf bytes.Buffer
	sum := driver.Run(&buf, driver.DefaultScenarios())

	assert.True(t, sum.OK())
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 6, sum.Passed)
	require.Len(t, sum.Outcomes, 6)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Testing Knight Moves Algorithms\n"))
	assert.Contains(t, out, "=== Same Position Test ===")
	assert.Contains(t, out, "Start: (0, 0) -> Target: (7, 7)")
	assert.Contains(t, out, "Path: (0, 0) -> (2, 1) -> (0, 2)")
	assert.Contains(t, out, "V Asymmetric Move Test passed")
	assert.Contains(t, out, "Test Summary: 6/6 tests passed")
	assert.Contains(t, out, "All tests passed!")
	assert.NotContains(t, out, "\nX ")
}

func TestCheck_Distances(t *testing.T) {
	want := map[string]int{
		"Same Position Test":        0,
		"Single Knight Move Test":   1,
		"Two Knight Moves Test":     2,
		"Negative Coordinates Test": 1,
		"Large Distance Test":       6,
		"Asymmetric Move Test":      3,
	}
	for _, s := range driver.DefaultScenarios() {
		out := driver.Check(s)
		assert.Truef(t, out.Passed(), "%s: %v", s.Name, out.Failures)
		assert.Equal(t, want[s.Name], out.Distance, s.Name)
		assert.Len(t, out.Path, want[s.Name]+1, s.Name)
	}
}

func TestCheck_WrongExpectation(t *testing.T) {
	s := driver.Scenario{
		Name:         "Wrong",
		Start:        knight.Position{},
		Target:       knight.Position{Row: 7, Col: 7},
		WantDistance: driver.Want(5),
	}
	out := driver.Check(s)
	assert.False(t, out.Passed())
	require.Len(t, out.Failures, 1)
	assert.Equal(t, "Wrong should require 5 moves, got 6", out.Failures[0])

	var buf bytes.Buffer
	sum := driver.Run(&buf, []driver.Scenario{s})
	assert.False(t, sum.OK())
	assert.Contains(t, buf.String(), "X Wrong should require 5 moves, got 6")
	assert.Contains(t, buf.String(), "Test Summary: 0/1 tests passed")
	assert.Contains(t, buf.String(), "Some tests failed.")
	assert.NotContains(t, buf.String(), "V Wrong passed")
}

func TestPrint_BrokenPath(t *testing.T) {
	o := driver.Outcome{
		Scenario: driver.Scenario{Name: "Broken", Target: knight.Position{Row: 1, Col: 1}},
		Distance: 1,
		Path:     []knight.Position{{}, {Row: 1, Col: 1}},
		Failures: []string{"Invalid knight move from (0, 0) to (1, 1)"},
	}
	var buf bytes.Buffer
	driver.Print(&buf, o)
	assert.Contains(t, buf.String(), "X Invalid knight move from (0, 0) to (1, 1)")
	assert.Contains(t, buf.String(), strings.Repeat("-", 50))
	assert.NotContains(t, buf.String(), "passed")
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "", driver.FormatPath(nil))
	assert.Equal(t, "(0, 0)", driver.FormatPath([]knight.Position{{}}))
	assert.Equal(t, "(0, 0) -> (-2, -1)", driver.FormatPath([]knight.Position{{}, {Row: -2, Col: -1}}))
}

func TestParseScenarios(t *testing.T) {
	data := []byte(`
scenarios:
  - name: Corner
    start: "0,0"
    target: "(7, 7)"
    want_distance: 6
  - start: "1,1"
    target: "4,5"
`)
	got, err := driver.ParseScenarios(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Corner", got[0].Name)
	assert.Equal(t, knight.Position{Row: 7, Col: 7}, got[0].Target)
	require.NotNil(t, got[0].WantDistance)
	assert.Equal(t, 6, *got[0].WantDistance)
	assert.Equal(t, "Scenario 2", got[1].Name)
	assert.Nil(t, got[1].WantDistance)

	var buf bytes.Buffer
	assert.True(t, driver.Run(&buf, got).OK())
}

func TestParseScenarios_Errors(t *testing.T) {
	for name, data := range map[string]string{
		"empty":         ``,
		"no scenarios":  `scenarios: []`,
		"unknown field": "scenarios:\n  - start: \"0,0\"\n    target: \"1,2\"\n    color: white\n",
		"bad start":     "scenarios:\n  - start: \"zero\"\n    target: \"1,2\"\n",
		"bad target":    "scenarios:\n  - start: \"0,0\"\n    target: \"1\"\n",
	} {
		_, err := driver.ParseScenarios([]byte(data))
		assert.ErrorIsf(t, err, driver.ErrScenarioFile, "case %s", name)
	}
	_, err := driver.ParseScenarios([]byte("scenarios:\n  - start: \"x\"\n    target: \"1,2\"\n"))
	assert.ErrorIs(t, err, knight.ErrParsePosition)
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios:\n  - name: One\n    start: \"0,0\"\n    target: \"2,1\"\n    want_distance: 1\n"), 0o600))

	got, err := driver.LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "One", got[0].Name)

	_, err = driver.LoadScenarios(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, driver.ErrScenarioFile)
}
