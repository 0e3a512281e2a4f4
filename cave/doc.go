// Package cave builds the immutable, undirected cave graph that path
// enumeration runs over.
//
// What:
//
//   - Edge parsing: one "LABEL-LABEL" line per connection (ParseEdge).
//   - Interning: every label is mapped once to a dense ID, so hot loops index
//     slices instead of hashing strings.
//   - Classification: every node gets a Kind (Start, End, Limited, Unlimited)
//     computed from its label when it is interned, and cached on the Graph.
//
// Classification rules:
//
//   - "start" and "end" are recognized by exact match.
//   - A label whose runes all have the Unicode Lowercase property is Limited
//     (a small cave). That includes Other_Lowercase runes such as 'ª' and 'ⅰ'.
//   - Anything else is Unlimited (a big cave). Labels with digits or mixed
//     case therefore count as Unlimited. This follows the puzzle's literal
//     convention and is kept as is.
//
// Invariants:
//
//   - Adjacency is symmetric: v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v).
//   - Repeated edges are idempotent; each neighbor appears once per node.
//   - No two Unlimited nodes are adjacent, otherwise the set of routes would be
//     infinite. Build reports ErrUnboundedCycle instead.
//   - A Graph never changes after Build and is safe for concurrent readers.
//
// Errors:
//
//   - ErrMalformedEdge   line does not split into exactly two non-empty labels
//   - ErrEmptyLabel      AddEdge called with an empty label
//   - ErrUnboundedCycle  two Unlimited nodes are directly connected
//
// Complexity:
//
//   - Build: O(V + E). Neighbors, Kind, Label: O(1).
package cave
