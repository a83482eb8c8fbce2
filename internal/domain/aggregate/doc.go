// Package aggregate folds raw extraction results into the canonical Document.
//
// Build is pure: the same inputs and timestamp always produce the same
// Document. Categories keep first-seen order, items keep extraction order,
// and list sections are truncated from the front without re-sorting.
package aggregate
