// Package domain contains the dispatcher's core model: the verb tree
// (Verb, Command, Parameter), the Manual help text attached to verbs, and
// the Action result produced by resolving one input line.
//
// The tree is immutable once constructed. No type in this package exposes a
// mutation API after its constructor returns, so a built tree can be shared
// across concurrent Parse calls without synchronization.
package domain
