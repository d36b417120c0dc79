/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package env

import (
	"context"
	"fmt"
	"testing"

	"github.com/allauncher/sysprops/datastore"
	"github.com/allauncher/sysprops/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ datastore.PropertyStore = (*Store)(nil)

type mapResolver struct {
	vars   map[string]string
	setErr error
}

func (m *mapResolver) Lookup(key string) (string, bool) {
	v, ok := m.vars[key]
	return v, ok
}

func (m *mapResolver) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.vars[key] = value
	return nil
}

func (m *mapResolver) Unset(key string) error {
	delete(m.vars, key)
	return nil
}

func TestVarName(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"", "org.allauncher.window.title", "ORG_ALLAUNCHER_WINDOW_TITLE"},
		{"", "multimc.instance.icon", "MULTIMC_INSTANCE_ICON"},
		{"JVM_", "minecraft.launcher.brand", "JVM_MINECRAFT_LAUNCHER_BRAND"},
		{"", "a-b.c1", "A_B_C1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VarName(tt.prefix, tt.key))
	}
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	r := &mapResolver{vars: map[string]string{}}
	s := New(WithResolver(r), WithPrefix("AL_"))

	require.NoError(t, s.SetProperty(ctx, "org.allauncher.instance.name", "Vanilla-1.20"))
	assert.Equal(t, "Vanilla-1.20", r.vars["AL_ORG_ALLAUNCHER_INSTANCE_NAME"])

	v, err := s.GetProperty(ctx, "org.allauncher.instance.name")
	require.NoError(t, err)
	assert.Equal(t, "Vanilla-1.20", v)

	props, err := s.Properties(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"org.allauncher.instance.name": "Vanilla-1.20"}, props)
	assert.Equal(t, []string{"AL_ORG_ALLAUNCHER_INSTANCE_NAME=Vanilla-1.20"}, s.Environ())

	require.NoError(t, s.ClearProperty(ctx, "org.allauncher.instance.name"))
	_, err = s.GetProperty(ctx, "org.allauncher.instance.name")
	assert.True(t, errors.IsNotFound(err))
}

func TestSetFailure(t *testing.T) {
	r := &mapResolver{vars: map[string]string{}, setErr: fmt.Errorf("setenv: invalid argument")}
	s := New(WithResolver(r))

	err := s.SetProperty(context.Background(), "minecraft.launcher.brand", "x")
	assert.True(t, errors.IsWriteRejected(err))
	assert.Empty(t, s.Environ())
}

func TestOSResolver(t *testing.T) {
	t.Setenv("SYSPROPS_TEST_PLACEHOLDER", "")
	s := New(WithPrefix("SYSPROPS_TEST_"))
	ctx := context.Background()

	require.NoError(t, s.SetProperty(ctx, "window.title", "Hello"))
	t.Cleanup(func() { _ = s.ClearProperty(ctx, "window.title") })

	v, err := s.GetProperty(ctx, "window.title")
	require.NoError(t, err)
	assert.Equal(t, "Hello", v)
}
