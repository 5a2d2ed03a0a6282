/*
Package espalier is a hierarchical command-line dispatcher. Given a static
tree of verbs and commands and a single line of input, it resolves the line
to exactly one Action: run a command with bound flag values, show help,
report an unrecognized token, report a malformed flag, or exit. It never
executes command logic and never performs I/O; the host owns both.

# Concept

A tree of Verbs (categories) and Commands (leaf actions) is built once at
startup, from Go code (pkg/dsl), direct constructors (pkg/domain), or a YAML
declaration file. The Parser walks the tree one whitespace-delimited path
segment at a time and hands the trailing text to the matched command's flag
tokenizer. The resolved Action carries the context a host needs to act on
it: the bound values for Run, the offending token and owning node for the
error variants.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/espalier"
		"github.com/aretw0/espalier/pkg/dsl"
	)

	func main() {
		b := dsl.New()
		table := b.Verb("table").Summary("Manage tables")
		table.Command("create").Flag('i', "name").Flag('n', "count")

		verbs, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		parser, err := espalier.New(verbs)
		if err != nil {
			log.Fatal(err)
		}

		act := parser.Parse("table create -i users -n 10")
		fmt.Println(act.Kind) // RUN

		for _, pv := range act.Values {
			fmt.Println(pv.Parameter.LongName(), pv.Values)
		}
	}

The tree is immutable after construction and every Parse call is stateless,
so one Parser is safe for concurrent use without locking.
*/
package espalier
