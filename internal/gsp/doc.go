// Package gsp implements level-wise sequential pattern mining on top of the
// support-counting engine: singleton seeding, candidate joining, and the
// iteration that stops when a level yields no frequent patterns.
package gsp
