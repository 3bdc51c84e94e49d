// Package bench times dot product backends against each other.
//
// A Driver generates two random vectors with values uniform in [0, 1),
// passes the same pair to every configured backend, and measures the
// wall-clock time of each call from just before invocation to just after it
// returns. Results render as "<label>:\t (<result>, <elapsed>)" lines, or as a
// JSON or YAML report.
//
// Timings are for comparison only. A Seed of 0 draws a fresh seed per run,
// so values differ between runs unless a seed is fixed.
package bench
