package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/registry"
)

func TestRegistry_Dispatch(t *testing.T) {
	cmd, err := domain.NewCommand("create", domain.NewParameter('i', "name"))
	require.NoError(t, err)

	r := registry.NewRegistry()
	assert.False(t, r.Bound(cmd))

	var gotValues []domain.ParameterValue
	r.Register(cmd, func(ctx context.Context, values []domain.ParameterValue) error {
		gotValues = values
		return nil
	})
	assert.True(t, r.Bound(cmd))

	act := cmd.Parse("-i users")
	require.Equal(t, domain.ActionRun, act.Kind)

	err = r.Dispatch(context.Background(), cmd, act.Values)
	require.NoError(t, err)
	require.Len(t, gotValues, 1)
	assert.Equal(t, []string{"users"}, gotValues[0].Values)
}

func TestRegistry_NotBound(t *testing.T) {
	cmd, err := domain.NewCommand("list")
	require.NoError(t, err)

	r := registry.NewRegistry()
	err = r.Dispatch(context.Background(), cmd, nil)
	assert.ErrorIs(t, err, registry.ErrNotBound)
}

func TestRegistry_SameNameDifferentBranch(t *testing.T) {
	// Two commands named "list" under different verbs must not collide:
	// bindings key on the node, not the name.
	a, err := domain.NewCommand("list")
	require.NoError(t, err)
	b, err := domain.NewCommand("list")
	require.NoError(t, err)

	r := registry.NewRegistry()
	var hit string
	r.Register(a, func(context.Context, []domain.ParameterValue) error {
		hit = "a"
		return nil
	})
	r.Register(b, func(context.Context, []domain.ParameterValue) error {
		hit = "b"
		return nil
	})

	require.NoError(t, r.Dispatch(context.Background(), b, nil))
	assert.Equal(t, "b", hit)
}

func TestRegistry_HandlerError(t *testing.T) {
	cmd, err := domain.NewCommand("sync")
	require.NoError(t, err)

	boom := errors.New("boom")
	r := registry.NewRegistry()
	r.Register(cmd, func(context.Context, []domain.ParameterValue) error {
		return boom
	})

	assert.ErrorIs(t, r.Dispatch(context.Background(), cmd, nil), boom)
}
