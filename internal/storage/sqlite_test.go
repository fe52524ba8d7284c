package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketprep/pocketprep/internal/common"
	"github.com/pocketprep/pocketprep/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndGetList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := model.NewPackingList("Weekend Camping")
	list.Items = []model.Item{
		model.NewItem(list.ID, "Tent", "tent", "Outdoor Gear"),
		model.NewItem(list.ID, "Flashlight", "flashlight.on.fill", "Electronics"),
	}

	require.NoError(t, store.CreateList(ctx, &list))

	got, err := store.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend Camping", got.Name)
	assert.Equal(t, "bag", got.Icon)
	assert.Equal(t, "#007AFF", got.ColorHex)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Tent", got.Items[0].Name)
	assert.Equal(t, "Outdoor Gear", got.Items[0].Category)
}

func TestGetListNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetList(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetListsNewestFirstExcludesTemplates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	older := model.NewPackingList("Older")
	require.NoError(t, store.CreateList(ctx, &older))

	newer := model.NewPackingList("Newer")
	newer.CreatedAt = older.CreatedAt.Add(time.Second)
	require.NoError(t, store.CreateList(ctx, &newer))

	template := model.NewPackingList("Gym")
	template.IsTemplate = true
	require.NoError(t, store.CreateList(ctx, &template))

	lists, err := store.GetLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "Newer", lists[0].Name)
	assert.Equal(t, "Older", lists[1].Name)

	templates, err := store.GetTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Gym", templates[0].Name)
}

func TestUpdateList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := model.NewPackingList("Trip")
	require.NoError(t, store.CreateList(ctx, &list))

	list.Name = "Summer Trip"
	list.Icon = "sun.max"
	list.ColorHex = "#FFCC00"
	require.NoError(t, store.UpdateList(ctx, &list))

	got, err := store.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Trip", got.Name)
	assert.Equal(t, "sun.max", got.Icon)
	assert.Equal(t, "#FFCC00", got.ColorHex)
}

func TestDeleteListCascadesItems(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := model.NewPackingList("Trip")
	item := model.NewItem(list.ID, "Passport", "doc.text", "Documents")
	list.Items = []model.Item{item}
	require.NoError(t, store.CreateList(ctx, &list))

	require.NoError(t, store.DeleteList(ctx, list.ID))

	_, err := store.GetList(ctx, list.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = store.GetItem(ctx, item.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteListNotFound(t *testing.T) {
	store := newTestStore(t)
	err := store.DeleteList(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAddUpdateDeleteItem(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := model.NewPackingList("Trip")
	require.NoError(t, store.CreateList(ctx, &list))

	item := model.NewItem(list.ID, "Charger", "cable.connector", "Electronics")
	require.NoError(t, store.AddItem(ctx, &item))

	item.Name = "Phone Charger"
	item.Notes = "USB-C"
	require.NoError(t, store.UpdateItem(ctx, &item))

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Phone Charger", got.Name)
	assert.Equal(t, "USB-C", got.Notes)
	assert.False(t, got.Packed)

	require.NoError(t, store.DeleteItem(ctx, item.ID))
	_, err = store.GetItem(ctx, item.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestToggleItemTracksUsage(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := model.NewPackingList("Trip")
	item := model.NewItem(list.ID, "Socks", "hanger", "Clothing")
	list.Items = []model.Item{item}
	require.NoError(t, store.CreateList(ctx, &list))

	packed, err := store.ToggleItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, packed.Packed)
	assert.Equal(t, 1, packed.TimesUsed)
	require.NotNil(t, packed.LastPackedAt)

	unpacked, err := store.ToggleItem(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, unpacked.Packed)
	// Unpacking keeps the usage history.
	assert.Equal(t, 1, unpacked.TimesUsed)
	require.NotNil(t, unpacked.LastPackedAt)
}

func TestResetListUnpacksEverything(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	list := model.NewPackingList("Trip")
	a := model.NewItem(list.ID, "Socks", "hanger", "Clothing")
	b := model.NewItem(list.ID, "Charger", "cable.connector", "Electronics")
	list.Items = []model.Item{a, b}
	require.NoError(t, store.CreateList(ctx, &list))

	_, err := store.ToggleItem(ctx, a.ID)
	require.NoError(t, err)
	_, err = store.ToggleItem(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, store.ResetList(ctx, list.ID))

	got, err := store.GetList(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.PackedCount())
	assert.Equal(t, 2, got.TotalCount())
}

func TestValidationRejectsBadInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.CreateList(ctx, &model.PackingList{Name: "no id"})
	assert.ErrorIs(t, err, ErrInvalidList)

	err = store.CreateList(ctx, nil)
	assert.ErrorIs(t, err, ErrNilParameter)

	err = store.AddItem(ctx, &model.Item{ID: "x", ListID: "y"})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = store.GetList(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}
