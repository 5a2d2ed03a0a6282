// Package testutils provides shared fixtures for package tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

// SampleVerbs builds the canonical test tree:
//
//	db
//	  table
//	    create (-i/--name, -n/--count)
//	    list   (-f/--filter)
//	  remote
//	    sync   (-u/--url)
//	status     (leaf command at the top verb: -v/--verbose)
//
// It fails the test immediately on a construction error.
func SampleVerbs(t *testing.T) []*domain.Verb {
	t.Helper()

	b := dsl.New()

	db := b.Verb("db").
		Summary("Manage the database").
		Detail("db table create -i NAME -n COUNT", "db table list -f FILTER", "db remote sync -u URL")

	table := db.Verb("table").Summary("Manage tables")
	table.Command("create").Flag('i', "name").Flag('n', "count")
	table.Command("list").Flag('f', "filter")

	remote := db.Verb("remote").Summary("Manage replicas")
	remote.Command("sync").Flag('u', "url")

	db.Command("status").Flag('v', "verbose")

	verbs, err := b.Build()
	require.NoError(t, err, "Failed to build sample tree")
	return verbs
}

// SampleParser wraps SampleVerbs in a ready Parser.
func SampleParser(t *testing.T) *espalier.Parser {
	t.Helper()

	p, err := espalier.New(SampleVerbs(t))
	require.NoError(t, err, "Failed to build sample parser")
	return p
}
