// Package seqmine exposes version information for the seqmine module.
package seqmine

// Version is the current seqmine release version.
const Version = "0.1.0"
