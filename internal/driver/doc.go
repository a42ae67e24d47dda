// Package driver runs knight-move scenarios end to end and reports them.
//
// For every Scenario it calls knight.Distance and knight.Path and checks that
//
//   - the path length minus one equals the distance,
//   - the path starts at Start and ends at Target,
//   - every step of the path is a knight move,
//   - the distance equals WantDistance when one is given.
//
// Run prints a human-readable report per scenario followed by a summary line.
// Failures are reported as text; Summary.OK decides the process exit status.
package driver
