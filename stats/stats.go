// Package stats collects the per-call instrumentation counters that every
// shortest-path engine records while it runs.
//
// A [Stats] value is created fresh for each shortest_path call and is never
// shared across queries: engines are pure functions of their inputs and must
// keep their bookkeeping local so that concurrent queries over the same
// polygon do not interfere with one another.
package stats

import "fmt"

// Stats records the work performed by a single shortest-path engine
// invocation. All fields are counters; none of them affect the result of
// the query, and are intended for the benchmark collaborator only.
type Stats struct {
	// Iterations counts the number of passes through the engine's main loop
	// (e.g. funnel advances, trapezoid walks, or makestep cone updates).
	Iterations int

	// JarvisMarches counts the number of Jarvis-march (gift-wrapping) scans
	// performed to rebuild a visibility cone or hull.
	JarvisMarches int

	// Predicates counts the number of orientation/turn predicate evaluations.
	Predicates int

	// Ignores counts the Jarvis-march candidates that formed the "good" turn
	// against the current best pair (see [Stats.AddIgnore]).
	Ignores int

	// IgnoresTheo counts every Jarvis-march candidate examined (see
	// [Stats.AddIgnoreTheo]); Ignores counts a subset of these.
	IgnoresTheo int
}

// AddIteration increments Iterations by one.
func (s *Stats) AddIteration() {
	s.Iterations++
}

// AddJarvisMarch increments JarvisMarches by one.
func (s *Stats) AddJarvisMarch() {
	s.JarvisMarches++
}

// AddPredicate increments Predicates by one.
func (s *Stats) AddPredicate() {
	s.Predicates++
}

// AddIgnore increments Ignores by one: a Jarvis march candidate turned out
// to form the "good" turn against the current best pair.
func (s *Stats) AddIgnore() {
	s.Ignores++
}

// AddIgnoreTheo increments IgnoresTheo by one: a Jarvis march candidate was
// considered for replacing the current best pair at all, whether or not it
// ultimately did.
func (s *Stats) AddIgnoreTheo() {
	s.IgnoresTheo++
}

// Merge adds another Stats' counters into s, for combining sub-phase
// counters (e.g. a triangulation pass) into an engine's overall total.
func (s *Stats) Merge(other Stats) {
	s.Iterations += other.Iterations
	s.JarvisMarches += other.JarvisMarches
	s.Predicates += other.Predicates
	s.Ignores += other.Ignores
	s.IgnoresTheo += other.IgnoresTheo
}

// String returns a human-readable summary of the counters, useful for
// debugging and logging.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats{iterations=%d, jarvis_marches=%d, predicates=%d, ignores=%d, ignores_theo=%d}",
		s.Iterations, s.JarvisMarches, s.Predicates, s.Ignores, s.IgnoresTheo,
	)
}
