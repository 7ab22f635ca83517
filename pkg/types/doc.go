// Package types defines the sequence and pattern types, mining configuration,
// and standard error values shared across the seqmine packages.
package types
