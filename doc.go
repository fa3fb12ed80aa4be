// Package dynarray provides a generic dynamic array: a contiguous,
// heap-resident sequence that owns its storage and offers amortized
// constant-time append, random access, and explicit capacity management
// (reserve, shrink-to-fit, resize).
//
// The library is organised into several files for clarity:
//
//	dynarray.go  – core type, invariants & constructors
//	access.go    – element access (checked, unchecked & recoverable)
//	grow.go      – capacity management & the doubling rule
//	mutate.go    – push/emplace/pop/clear/swap
//	copy_move.go – deep copy & ownership transfer
//	compare.go   – equality & lexicographic ordering
//	io.go        – text-stream input/output adapters
//	stats.go     – reallocation statistics
//	fatal.go     – fatal precondition reporting & error sentinels
//
// An Array is single-owner: it must only be accessed by one goroutine at a
// time and ownership is transferred, never shared, via MoveFrom/Take/Swap.
// No operation is safe for concurrent use.
//
// See the README for usage examples.
package dynarray
