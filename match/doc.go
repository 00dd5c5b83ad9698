// Package match pairs the rows of two 2-D arrays by greedy nearest-neighbour
// search under the L1 distance.
//
// [Greedy] runs a single pass: every not-yet-used row of the first array, in
// index order, claims the closest not-yet-used row of the second array if the
// distance is within the pass threshold. [Hierarchical] runs one pass per
// threshold and carries the used indices from pass to pass, so strict passes
// claim the obvious pairs first and looser passes only see what is left.
//
// Rows that are never matched are absent from the result; there is no
// explicit "unmatched" marker.
//
// A single call is sequential. Independent calls share no state and can be
// run in parallel, see [HierarchicalAll].
package match
