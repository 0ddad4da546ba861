package configdb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryos/quarry/pkg/types"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	return New(newTestEngine(t))
}

func TestDB_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	pool := types.StoragePool{
		ID:        "6f1a2c34-0000-4000-8000-000000000001",
		Name:      "alpha",
		Device:    "/dev/disk/by-id/ata-TEST_DISK_1",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Set(types.PoolPath(pool.Name), &pool))

	var got types.StoragePool
	require.NoError(t, db.Get(types.PoolPath("alpha"), &got))
	assert.Equal(t, pool, got)
}

func TestDB_SetExisting(t *testing.T) {
	db := newTestDB(t)

	pool := types.StoragePool{Name: "alpha"}
	require.NoError(t, db.Set(types.PoolPath("alpha"), &pool))

	err := db.Set(types.PoolPath("alpha"), &pool)
	assert.ErrorIs(t, err, ErrExists)
}

func TestDB_GetMissing(t *testing.T) {
	db := newTestDB(t)

	var got types.StoragePool
	err := db.Get(types.PoolPath("absent"), &got)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestDB_GetMalformedDocument(t *testing.T) {
	engine := newTestEngine(t)
	require.NoError(t, engine.Set("storage/pools/bad", []byte(`{not json`)))

	db := New(engine)
	var got types.StoragePool
	err := db.Get("storage/pools/bad", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatch)
}

func TestDB_ReplaceAndUpdate(t *testing.T) {
	db := newTestDB(t)

	mount := types.MountEntry{Device: "/dev/disk/by-id/ata-X", Dir: "/srv", Type: "ext4"}
	err := db.Update(types.MountPath(mount.Dir), &mount)
	assert.ErrorIs(t, err, ErrNoMatch)

	require.NoError(t, db.Replace(types.MountPath(mount.Dir), &mount))

	mount.Options = []string{"noatime"}
	require.NoError(t, db.Update(types.MountPath(mount.Dir), &mount))

	var got types.MountEntry
	require.NoError(t, db.Get(types.MountPath("/srv"), &got))
	assert.Equal(t, []string{"noatime"}, got.Options)
}

func TestDB_Delete(t *testing.T) {
	db := newTestDB(t)

	pool := types.StoragePool{Name: "alpha"}
	require.NoError(t, db.Set(types.PoolPath("alpha"), &pool))
	require.NoError(t, db.Delete(types.PoolPath("alpha")))

	err := db.Delete(types.PoolPath("alpha"))
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestDB_List(t *testing.T) {
	db := newTestDB(t)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, db.Set(types.PoolPath(name), &types.StoragePool{Name: name}))
	}

	docs, err := db.List(types.PoolPathPrefix)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	var pool types.StoragePool
	require.NoError(t, json.Unmarshal(docs[types.PoolPath("beta")], &pool))
	assert.Equal(t, "beta", pool.Name)
}

func TestDB_NilHandle(t *testing.T) {
	var db *DB

	var got types.StoragePool
	assert.ErrorIs(t, db.Get("storage/pools/alpha", &got), ErrNotLoaded)
	assert.ErrorIs(t, db.Set("storage/pools/alpha", &got), ErrNotLoaded)
	assert.ErrorIs(t, db.Delete("storage/pools/alpha"), ErrNotLoaded)

	_, err := db.List("")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestDB_UnmarshalableObject(t *testing.T) {
	db := newTestDB(t)

	err := db.Set("storage/pools/chan", make(chan int))
	assert.Error(t, err)
}
