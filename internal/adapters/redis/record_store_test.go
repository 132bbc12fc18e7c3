package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
)

func TestRecordStore_SaveAndLoad(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	identity := domainauth.Identity{
		Name:  "Recursos Humanos",
		Email: "rh@empresa.com",
		Role:  domainauth.RoleRH,
		Token: "mocked-token-rh",
	}

	err := store.Save(ctx, "client-1", identity)
	require.NoError(t, err)

	loaded, present, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, identity, loaded)
}

func TestRecordStore_LoadMissing(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	_, present, err := store.Load(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRecordStore_LoadCorruptRecord(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "user:client-2", "{not json", 0).Err())

	_, present, err := store.Load(ctx, "client-2")
	require.NoError(t, err)
	assert.False(t, present)

	// Corrupt record is dropped so the next load starts clean.
	exists := client.Exists(ctx, "user:client-2").Val()
	assert.Equal(t, int64(0), exists)
}

func TestRecordStore_LoadUnknownRole(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "user:client-3",
		`{"name":"X","email":"x@empresa.com","role":"gerente","token":"t"}`, 0).Err())

	_, present, err := store.Load(ctx, "client-3")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRecordStore_LegacyRoleAlias(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "user:client-4",
		`{"name":"Dev","email":"dev@empresa.com","role":"desenvolvedor","token":"t"}`, 0).Err())

	loaded, present, err := store.Load(ctx, "client-4")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, domainauth.RoleAdmin, loaded.Role)
}

func TestRecordStore_Clear(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	identity := domainauth.Identity{
		Name:  "Admin",
		Email: "admin@empresa.com",
		Role:  domainauth.RoleAdmin,
		Token: "mocked-token-admin",
	}

	require.NoError(t, store.Save(ctx, "client-5", identity))
	require.NoError(t, store.Clear(ctx, "client-5"))

	_, present, err := store.Load(ctx, "client-5")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRecordStore_SaveEmptyClientID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	err := store.Save(ctx, "", domainauth.Identity{Role: domainauth.RoleAdmin})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client ID cannot be empty")
}

func TestRecordStore_EmptyClientIDLoadsAbsent(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewRecordStore(client, time.Hour)
	ctx := context.Background()

	_, present, err := store.Load(ctx, "")
	require.NoError(t, err)
	assert.False(t, present)

	require.NoError(t, store.Clear(ctx, ""))
}
