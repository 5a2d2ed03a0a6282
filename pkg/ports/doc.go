// Package ports defines the narrow interfaces between the dispatcher core
// and its hosts: where trees come from, how resolved actions are handled,
// and which nodes can describe themselves.
package ports
