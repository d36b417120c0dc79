/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allauncher/sysprops/datastore"
	"github.com/allauncher/sysprops/errors"
	"github.com/allauncher/sysprops/storagemodels"
)

var _ datastore.PropertyStore = (*DynamodbPropertyStore)(nil)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestStore(client API, namespace string) *DynamodbPropertyStore {
	return New(client, "properties", namespace, WithClock(func() time.Time { return fixedNow }))
}

func TestExpandMacros(t *testing.T) {
	expanded, err := expandMacros(DefaultIndexMap, storagemodels.PropertyRecord{
		Namespace: "Vanilla-1.20",
		Key:       "org.allauncher.window.title",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"PK": "NS#Vanilla-1.20",
		"SK": "PROP#org.allauncher.window.title",
	}, expanded)
}

func TestBuildKeyFromExpanded(t *testing.T) {
	_, err := buildKeyFromExpanded(map[string]string{"PK": "NS#x", "SK": ""})
	assert.Error(t, err)

	key, err := buildKeyFromExpanded(map[string]string{"PK": "NS#x", "SK": "PROP#y"})
	require.NoError(t, err)
	assert.Len(t, key, 2)
}

func TestSetAndGetProperty(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient(0)
	store := newTestStore(client, "inst-1")

	require.NoError(t, store.SetProperty(ctx, "org.allauncher.instance.name", "Vanilla-1.20"))

	item := client.items["NS#inst-1|PROP#org.allauncher.instance.name"]
	require.NotNil(t, item)
	assert.Equal(t, EntityType, attrS(item, "EntityType"))
	assert.Equal(t, "Vanilla-1.20", attrS(item, "Value"))

	v, err := store.GetProperty(ctx, "org.allauncher.instance.name")
	require.NoError(t, err)
	assert.Equal(t, "Vanilla-1.20", v)

	rec, err := store.GetRecord(ctx, "org.allauncher.instance.name")
	require.NoError(t, err)
	assert.Equal(t, "inst-1", rec.Namespace)
	assert.True(t, time.Time(rec.UpdatedAt).Equal(fixedNow))
}

func TestGetMissingProperty(t *testing.T) {
	store := newTestStore(newFakeClient(0), "inst-1")

	_, err := store.GetProperty(context.Background(), "multimc.instance.icon")
	assert.True(t, errors.IsNotFound(err))
}

func TestEmptyKey(t *testing.T) {
	store := newTestStore(newFakeClient(0), "inst-1")

	assert.True(t, errors.IsValidationError(store.SetProperty(context.Background(), "", "x")))
}

func TestClearProperty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(newFakeClient(0), "inst-1")

	require.NoError(t, store.SetProperty(ctx, "org.allauncher.window.title", "My Launcher"))
	require.NoError(t, store.ClearProperty(ctx, "org.allauncher.window.title"))

	_, err := store.GetProperty(ctx, "org.allauncher.window.title")
	assert.True(t, errors.IsNotFound(err))
}

func TestPutFailureIsWrapped(t *testing.T) {
	client := newFakeClient(0)
	client.putErr = fmt.Errorf("ProvisionedThroughputExceededException")
	store := newTestStore(client, "inst-1")

	err := store.SetProperty(context.Background(), "minecraft.launcher.brand", "ALLauncher")
	require.Error(t, err)
	assert.ErrorIs(t, err, client.putErr)
}

func TestPropertiesPaginates(t *testing.T) {
	ctx := context.Background()
	client := newFakeClient(2)
	store := newTestStore(client, "inst-1")
	other := newTestStore(client, "inst-2")

	want := map[string]string{
		"minecraft.launcher.brand":         "ALLauncher",
		"minecraft.launcher.version":       "9.1",
		"org.allauncher.instance.name":     "Vanilla-1.20",
		"multimc.instance.title":           "Vanilla-1.20",
		"org.allauncher.window.dimensions": "854x480",
	}
	for k, v := range want {
		require.NoError(t, store.SetProperty(ctx, k, v))
	}
	require.NoError(t, other.SetProperty(ctx, "org.allauncher.window.title", "elsewhere"))

	got, err := store.Properties(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 3, client.queries)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "minecraft.launcher.brand", records[0].Key)
}
