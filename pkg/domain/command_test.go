package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
)

func newTableCommand(t *testing.T) *domain.Command {
	t.Helper()
	cmd, err := domain.NewCommand("create",
		domain.NewParameter('i', "name"),
		domain.NewParameter('n', "count"),
	)
	require.NoError(t, err)
	return cmd
}

func TestCommand_Parse(t *testing.T) {
	cmd := newTableCommand(t)

	t.Run("Empty Input", func(t *testing.T) {
		act := cmd.Parse("")
		assert.Equal(t, domain.ActionRun, act.Kind)
		assert.Same(t, cmd, act.Command)
		assert.Empty(t, act.Values)
	})

	t.Run("Short Flags With Values", func(t *testing.T) {
		act := cmd.Parse("-i my_table_name -n 10")
		require.Equal(t, domain.ActionRun, act.Kind)
		require.Len(t, act.Values, 2)

		assert.Equal(t, 'i', act.Values[0].Parameter.ShortName())
		assert.Equal(t, []string{"my_table_name"}, act.Values[0].Values)
		assert.Equal(t, 'n', act.Values[1].Parameter.ShortName())
		assert.Equal(t, []string{"10"}, act.Values[1].Values)
	})

	t.Run("Long Flags", func(t *testing.T) {
		act := cmd.Parse("--name users --count 3")
		require.Equal(t, domain.ActionRun, act.Kind)
		require.Len(t, act.Values, 2)
		assert.Equal(t, "name", act.Values[0].Parameter.LongName())
		assert.Equal(t, "count", act.Values[1].Parameter.LongName())
	})

	t.Run("Multiple Values Per Flag", func(t *testing.T) {
		act := cmd.Parse("--name a b c -n 1")
		require.Len(t, act.Values, 2)
		assert.Equal(t, []string{"a", "b", "c"}, act.Values[0].Values)
		assert.Equal(t, []string{"1"}, act.Values[1].Values)
	})

	t.Run("Multi Character Short Flag Aborts", func(t *testing.T) {
		act := cmd.Parse("-i ok -ix")
		assert.Equal(t, domain.ActionBadParameter, act.Kind)
		assert.Equal(t, "ix", act.Token)
		assert.Same(t, cmd, act.Command)
		// Groups parsed before the malformed token are discarded with the call.
		assert.Empty(t, act.Values)
	})

	t.Run("Repeated Flag Keeps Separate Groups", func(t *testing.T) {
		act := cmd.Parse("-i a -i b")
		require.Len(t, act.Values, 2)
		assert.Equal(t, []string{"a"}, act.Values[0].Values)
		assert.Equal(t, []string{"b"}, act.Values[1].Values)
		assert.Same(t, act.Values[0].Parameter, act.Values[1].Parameter)
	})

	t.Run("Orphan Value Dropped", func(t *testing.T) {
		act := cmd.Parse("orphan_value -i x")
		require.Equal(t, domain.ActionRun, act.Kind)
		require.Len(t, act.Values, 1)
		assert.Equal(t, []string{"x"}, act.Values[0].Values)
	})

	t.Run("Unknown Long Flag Dropped", func(t *testing.T) {
		// The unknown flag opens no group, so its value is orphaned too.
		act := cmd.Parse("--bogus value -n 1")
		require.Len(t, act.Values, 1)
		assert.Equal(t, "count", act.Values[0].Parameter.LongName())
	})

	t.Run("Unknown Short Flag Dropped", func(t *testing.T) {
		act := cmd.Parse("-z -i x")
		require.Len(t, act.Values, 1)
		assert.Equal(t, "name", act.Values[0].Parameter.LongName())
	})

	t.Run("Unknown Flag Does Not Close Open Group", func(t *testing.T) {
		act := cmd.Parse("-i a --bogus b")
		require.Len(t, act.Values, 1)
		assert.Equal(t, []string{"a", "b"}, act.Values[0].Values)
	})

	t.Run("Bare Dashes Dropped", func(t *testing.T) {
		act := cmd.Parse("- -- -i x")
		require.Len(t, act.Values, 1)
		assert.Equal(t, []string{"x"}, act.Values[0].Values)
	})

	t.Run("Trailing Open Group Flushed", func(t *testing.T) {
		act := cmd.Parse("-n")
		require.Len(t, act.Values, 1)
		assert.Equal(t, "count", act.Values[0].Parameter.LongName())
		assert.Empty(t, act.Values[0].Values)
	})
}

func TestNewCommand_Invariants(t *testing.T) {
	t.Run("Duplicate Short Flag", func(t *testing.T) {
		_, err := domain.NewCommand("c",
			domain.NewParameter('i', "name"),
			domain.NewParameter('i', "other"),
		)
		assert.ErrorIs(t, err, domain.ErrDuplicateFlag)
	})

	t.Run("Duplicate Long Flag", func(t *testing.T) {
		_, err := domain.NewCommand("c",
			domain.NewParameter('i', "name"),
			domain.NewParameter('n', "name"),
		)
		assert.ErrorIs(t, err, domain.ErrDuplicateFlag)
	})

	t.Run("Empty Command Name", func(t *testing.T) {
		_, err := domain.NewCommand("")
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("Empty Flag Names", func(t *testing.T) {
		_, err := domain.NewCommand("c", domain.NewParameter('i', ""))
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("Declaration Order Preserved", func(t *testing.T) {
		cmd := newTableCommand(t)
		params := cmd.Parameters()
		require.Len(t, params, 2)
		assert.Equal(t, "name", params[0].LongName())
		assert.Equal(t, "count", params[1].LongName())
	})
}
