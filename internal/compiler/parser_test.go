package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/internal/compiler"
	"github.com/aretw0/espalier/pkg/domain"
)

const sampleTree = `
verbs:
  - name: db
    summary: Manage the database
    help:
      - db table create -i NAME -n COUNT
      - db table list -f FILTER
    verbs:
      - name: table
        summary: Manage tables
        commands:
          - name: create
            parameters:
              - short: i
                long: name
              - short: n
                long: count
          - name: list
            parameters:
              - short: f
                long: filter
    commands:
      - name: status
        parameters:
          - short: v
            long: verbose
`

func TestParser_ParseAndCompile(t *testing.T) {
	p := compiler.NewParser()

	spec, err := p.Parse([]byte(sampleTree))
	require.NoError(t, err)
	require.Len(t, spec.Verbs, 1)
	assert.Equal(t, "db", spec.Verbs[0].Name)
	assert.Len(t, spec.Verbs[0].Help, 2)

	verbs, err := p.Compile(spec)
	require.NoError(t, err)
	require.Len(t, verbs, 1)

	db := verbs[0]
	assert.Equal(t, "Manage the database", db.Help().Short())

	table, ok := db.Verb("table")
	require.True(t, ok)
	create, ok := table.Command("create")
	require.True(t, ok)

	// The compiled tree parses like a hand-built one.
	act := create.Parse("-i users -n 10")
	require.Equal(t, domain.ActionRun, act.Kind)
	require.Len(t, act.Values, 2)
	assert.Equal(t, "name", act.Values[0].Parameter.LongName())

	_, ok = db.Command("status")
	assert.True(t, ok)
}

func TestParser_Errors(t *testing.T) {
	p := compiler.NewParser()

	t.Run("Unknown Key Rejected", func(t *testing.T) {
		_, err := p.Parse([]byte("verbs:\n  - name: db\n    bogus: true\n"))
		assert.Error(t, err)
	})

	t.Run("No Verbs", func(t *testing.T) {
		_, err := p.Parse([]byte("verbs: []\n"))
		assert.Error(t, err)
	})

	t.Run("Not YAML", func(t *testing.T) {
		_, err := p.Parse([]byte("{{{"))
		assert.Error(t, err)
	})

	t.Run("Multi Character Short Flag", func(t *testing.T) {
		doc := `
verbs:
  - name: db
    commands:
      - name: create
        parameters:
          - short: ix
            long: name
`
		spec, err := p.Parse([]byte(doc))
		require.NoError(t, err)
		_, err = p.Compile(spec)
		assert.ErrorContains(t, err, "single character")
	})

	t.Run("Duplicate Children Rejected By Constructors", func(t *testing.T) {
		doc := `
verbs:
  - name: db
    verbs:
      - name: table
        commands:
          - name: list
    commands:
      - name: table
`
		spec, err := p.Parse([]byte(doc))
		require.NoError(t, err)
		_, err = p.Compile(spec)
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTree), 0o644))

	verbs, err := compiler.NewFileSource(path).Verbs()
	require.NoError(t, err)
	require.Len(t, verbs, 1)
	assert.Equal(t, "db", verbs[0].Name())

	_, err = compiler.NewFileSource(filepath.Join(dir, "missing.yaml")).Verbs()
	assert.Error(t, err)
}
