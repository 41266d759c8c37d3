// Package esa builds an enhanced suffix array over the reference and
// answers longest-prefix-match queries against it. It never imports
// app, cli, or pipeline; keep it domain-only.
//
// The index is the classic SA + LCP + child-table triple with a k-mer
// interval cache on top, so a query's first k characters cost one
// table read instead of k child lookups. Everything is immutable after
// New and safe to share across worker goroutines.
package esa
