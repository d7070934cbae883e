// Package interval remaps sets of half-open integer ranges through
// ordered tables of offset rules without enumerating their members.
//
// A Rule (Dest, Source, Length) sends every v in [Source, Source+Length)
// to v + (Dest − Source). Mapping a range through a Table splits it at
// rule boundaries: each overlap is shifted and removed from further
// consideration, and the remainders are carried forward to later rules.
// Anything no rule claims maps to itself.
//
// Complexity: MapRanges is O(R × P) per table, where R is the number of
// rules and P the number of pending pieces (at most input + 2R).
//
// Invariant: for non-overlapping rule sources, total length is conserved.
package interval
