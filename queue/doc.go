// Package queue implements the two-key priority queue the D* Lite
// search engine uses as its open set: an ordered multimap from Key
// (a lexicographically-ordered pair of floats) to an arbitrary
// comparable value, paired with a reverse index so any value can be
// located, updated, or removed in O(log n).
//
// Internally this is a container/heap binary heap whose items carry
// their own current slice index (the same pattern as a textbook
// indexed heap), backed by a map from value to item for O(1)
// Contains and O(log n) Remove/Update via heap.Fix / heap.Remove.
// Key ordering is tolerant: two keys within Epsilon of each other on
// a component are treated as tied on that component, matching the
// float comparisons used everywhere else in this module.
//
// New accepts functional Options (WithCapacity, WithComparator) the
// same way the graph toolkit's dijkstra.Option family does.
package queue
