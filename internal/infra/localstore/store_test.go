package localstore

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agriconnect/config"
	"agriconnect/internal/domain/entity"
	"agriconnect/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()

	store, err := NewStore(&config.Config{
		Store: &config.StoreConfig{Path: path},
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return store
}

func storePath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "store.json")
}

func TestNewStore_SeedsFreshFile(t *testing.T) {
	path := storePath(t)
	store := newTestStore(t, path)
	ctx := context.Background()

	// The seed document carries one verified farmer and one open listing.
	farmer, err := NewUserRepository(store).FindByID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Singh", farmer.Name)
	assert.Equal(t, entity.RoleFarmer, farmer.Role)
	assert.True(t, farmer.Verified)

	crop, err := NewCropRepository(store).FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Wheat", crop.Name)
	assert.False(t, crop.IsSold)

	// The seed is written out immediately.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewStore_PersistsAcrossReopen(t *testing.T) {
	path := storePath(t)
	ctx := context.Background()

	store := newTestStore(t, path)
	users := NewUserRepository(store)
	require.NoError(t, users.Create(ctx, &entity.User{
		ID:    "u-new",
		Name:  "Anita Sharma",
		Phone: "9000000001",
		Role:  entity.RoleVendor,
	}))

	reopened := newTestStore(t, path)
	found, err := NewUserRepository(reopened).FindByID(ctx, "u-new")
	require.NoError(t, err)
	assert.Equal(t, "Anita Sharma", found.Name)
	assert.Equal(t, entity.RoleVendor, found.Role)
}

func TestNewStore_MalformedFileReseeds(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := newTestStore(t, path)

	farmer, err := NewUserRepository(store).FindByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Singh", farmer.Name)
}

func TestUserRepository_FindByPhone(t *testing.T) {
	store := newTestStore(t, storePath(t))
	ctx := context.Background()

	users := NewUserRepository(store)

	found, err := users.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "f1", found.ID)

	_, err = users.FindByPhone(ctx, "0000000000")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateCreateRejected(t *testing.T) {
	store := newTestStore(t, storePath(t))
	ctx := context.Background()

	users := NewUserRepository(store)
	err := users.Create(ctx, &entity.User{ID: "f1", Name: "Impostor"})
	assert.Error(t, err)

	// The original record is untouched.
	found, err := users.FindByID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh Singh", found.Name)
}

func TestCropRepository_ListNewestFirst(t *testing.T) {
	store := newTestStore(t, storePath(t))
	ctx := context.Background()

	crops := NewCropRepository(store)
	require.NoError(t, crops.Create(ctx, &entity.Crop{
		ID:        "c-late",
		FarmerID:  "f1",
		Name:      "Rice",
		CreatedAt: time.Now().Add(time.Hour),
	}))

	listed, err := crops.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "c-late", listed[0].ID)
	assert.Equal(t, "c1", listed[1].ID)
}

func TestRepositories_ReturnCopies(t *testing.T) {
	store := newTestStore(t, storePath(t))
	ctx := context.Background()

	crops := NewCropRepository(store)

	crop, err := crops.FindByID(ctx, "c1")
	require.NoError(t, err)
	crop.IsSold = true

	// Mutating the returned entity must not leak into the store.
	again, err := crops.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, again.IsSold)
}

func TestTransactionManager_Execute_CommitsAtomically(t *testing.T) {
	path := storePath(t)
	store := newTestStore(t, path)
	ctx := context.Background()

	manager := NewTransactionManager(store)
	err := manager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		crops := factory.NewCropRepository()
		crop, err := crops.FindByID(ctx, "c1")
		if err != nil {
			return err
		}
		crop.IsSold = true
		if err := crops.Update(ctx, crop); err != nil {
			return err
		}

		return factory.NewTransactionRepository().Create(ctx, &entity.Transaction{
			ID:       "t1",
			BuyerID:  "v1",
			SellerID: "f1",
			CropID:   "c1",
			Amount:   370,
			Status:   entity.StatusEscrowPaid,
		})
	})
	require.NoError(t, err)

	crop, err := NewCropRepository(store).FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, crop.IsSold)

	tx, err := NewTransactionRepository(store).FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(370), tx.Amount)

	// Both records survive a reopen: the commit reached disk.
	reopened := newTestStore(t, path)
	_, err = NewTransactionRepository(reopened).FindByID(ctx, "t1")
	assert.NoError(t, err)
}

func TestTransactionManager_Execute_RollsBackOnError(t *testing.T) {
	store := newTestStore(t, storePath(t))
	ctx := context.Background()

	boom := errors.New("validation failed mid-commit")
	manager := NewTransactionManager(store)
	err := manager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		crops := factory.NewCropRepository()
		crop, err := crops.FindByID(ctx, "c1")
		if err != nil {
			return err
		}
		crop.IsSold = true
		if err := crops.Update(ctx, crop); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	// The partial mutation never reached the live document.
	crop, err := NewCropRepository(store).FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, crop.IsSold)
}

func TestTransactionRepository_ListByParty(t *testing.T) {
	store := newTestStore(t, storePath(t))
	ctx := context.Background()

	txs := NewTransactionRepository(store)
	require.NoError(t, txs.Create(ctx, &entity.Transaction{ID: "t1", BuyerID: "v1", SellerID: "f1"}))
	require.NoError(t, txs.Create(ctx, &entity.Transaction{ID: "t2", BuyerID: "v2", SellerID: "f1"}))

	bought, err := txs.ListByBuyer(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, bought, 1)
	assert.Equal(t, "t1", bought[0].ID)

	sold, err := txs.ListBySeller(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, sold, 2)
}
