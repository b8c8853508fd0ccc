// Package field simulates the decorative particle graph drawn behind the guide.
//
// A [Field] owns a population of [Node] values sized to the viewport area,
// moves them by a fixed per-frame delta, reflects them off the viewport edges
// and connects every pair closer than the connection threshold with a line
// whose alpha fades linearly with distance and breathes over time.
//
//   - [Field.Resize]: measure the viewport and reseed the population
//   - [Field.Step]: advance one frame
//   - [Field.Draw]: render edges and nodes onto a [Surface]
//
// # Scaling
//
// The pair scan in [Field.Edges] is O(n²). The density constant keeps n to a
// few hundred nodes on typical screens; larger populations would need spatial
// partitioning.
//
// A Field is not safe for concurrent use. Hosts drive Step and Draw from a
// single execution context.
package field
