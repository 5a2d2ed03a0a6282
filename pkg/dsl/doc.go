// Package dsl provides a fluent builder for declaring dispatch trees in Go
// code. Declarations are collected first and compiled into immutable domain
// values by Build, which surfaces every construction error (duplicate names,
// duplicate flags) instead of shadowing silently.
package dsl
