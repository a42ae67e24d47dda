package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/knightmoves/knight"
)

const ruleWidth = 50

// Scenario is one start/target pair to verify.
type Scenario struct {
	Name   string
	Start  knight.Position
	Target knight.Position
	// WantDistance, if set, must equal the computed distance.
	WantDistance *int
}

// Outcome is the result of checking one Scenario.
type Outcome struct {
	Scenario Scenario
	Distance int
	Path     []knight.Position
	Failures []string
}

// Passed reports whether the scenario produced no failures.
func (o Outcome) Passed() bool { return len(o.Failures) == 0 }

// Summary aggregates the outcomes of Run.
type Summary struct {
	Outcomes []Outcome
	Passed   int
	Total    int
}

// OK reports whether every scenario passed.
func (s Summary) OK() bool { return s.Passed == s.Total }

// Want returns a pointer to d, for Scenario.WantDistance literals.
func Want(d int) *int { return &d }

// DefaultScenarios returns the built-in scenario suite.
// The two-move case carries no expected value; it is cross-checked against the path only.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Same Position Test", Start: knight.Position{}, Target: knight.Position{}, WantDistance: Want(0)},
		{Name: "Single Knight Move Test", Start: knight.Position{}, Target: knight.Position{Row: 2, Col: 1}, WantDistance: Want(1)},
		{Name: "Two Knight Moves Test", Start: knight.Position{}, Target: knight.Position{Row: 0, Col: 2}},
		{Name: "Negative Coordinates Test", Start: knight.Position{}, Target: knight.Position{Row: -2, Col: -1}},
		{Name: "Large Distance Test", Start: knight.Position{}, Target: knight.Position{Row: 7, Col: 7}},
		{Name: "Asymmetric Move Test", Start: knight.Position{Row: 1, Col: 1}, Target: knight.Position{Row: 4, Col: 5}},
	}
}

// Check runs both searches for s and collects every violated property.
func Check(s Scenario) Outcome {
	out := Outcome{
		Scenario: s,
		Distance: knight.Distance(s.Start, s.Target),
		Path:     knight.Path(s.Start, s.Target),
	}
	fail := func(format string, args ...any) {
		out.Failures = append(out.Failures, fmt.Sprintf(format, args...))
	}

	if out.Distance != len(out.Path)-1 {
		fail("Path length doesn't match minimum moves")
	}
	if len(out.Path) == 0 || out.Path[0] != s.Start {
		fail("Path doesn't start at correct position")
	}
	if len(out.Path) == 0 || out.Path[len(out.Path)-1] != s.Target {
		fail("Path doesn't end at correct position")
	}
	for i := 1; i < len(out.Path); i++ {
		if !knight.IsKnightMove(out.Path[i-1], out.Path[i]) {
			fail("Invalid knight move from %v to %v", out.Path[i-1], out.Path[i])
		}
	}
	if s.WantDistance != nil && out.Distance != *s.WantDistance {
		fail("%s should require %d moves, got %d", s.Name, *s.WantDistance, out.Distance)
	}

	return out
}

// Run checks every scenario in order, writing the report to w.
func Run(w io.Writer, scenarios []Scenario) Summary {
	fmt.Fprintln(w, "Testing Knight Moves Algorithms")
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	sum := Summary{Total: len(scenarios)}
	for _, s := range scenarios {
		out := Check(s)
		Print(w, out)
		if out.Passed() {
			sum.Passed++
		}
		sum.Outcomes = append(sum.Outcomes, out)
	}

	fmt.Fprintf(w, "\nTest Summary: %d/%d tests passed\n", sum.Passed, sum.Total)
	if sum.OK() {
		fmt.Fprintln(w, "All tests passed! Knight moves implementation is working correctly.")
	} else {
		fmt.Fprintln(w, "Some tests failed. Check the implementation.")
	}

	return sum
}

// Print writes the report block of a single outcome.
func Print(w io.Writer, o Outcome) {
	s := o.Scenario
	fmt.Fprintf(w, "\n=== %s ===\n", s.Name)
	fmt.Fprintf(w, "Start: %v -> Target: %v\n", s.Start, s.Target)
	fmt.Fprintf(w, "Minimum moves: %d\n", o.Distance)
	fmt.Fprintf(w, "Path length: %d\n", len(o.Path)-1)
	fmt.Fprintf(w, "Path: %s\n", FormatPath(o.Path))
	for _, f := range o.Failures {
		fmt.Fprintf(w, "X %s\n", f)
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	if o.Passed() {
		fmt.Fprintf(w, "V %s passed\n", s.Name)
	}
}

// FormatPath renders a path as "(r, c) -> (r, c) -> ...".
func FormatPath(path []knight.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}

	return strings.Join(parts, " -> ")
}
