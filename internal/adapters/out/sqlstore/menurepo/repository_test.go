package menurepo_test

import (
	"testing"

	"buttery/internal/adapters/out/sqlstore"
	"buttery/internal/adapters/out/sqlstore/menurepo"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepository(t *testing.T) (*menurepo.GormMenuRepository, *gorm.DB) {
	t.Helper()

	db, err := sqlstore.OpenSQLite(sqlstore.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, sqlstore.Migrate(t.Context(), db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return menurepo.NewGormMenuRepository(db), db
}

func TestGormMenuRepository(t *testing.T) {
	t.Run("should add and read back items in id order", func(t *testing.T) {
		repo, _ := newRepository(t)
		ctx := t.Context()

		noodles, _ := menu.NewItem("Scallion Oil Noodles", 15, kernel.MustMoney("2"))
		egg, _ := menu.NewItem("Egg (for noodles)", 15, kernel.MustMoney("0.5"))
		require.NoError(t, repo.Add(ctx, noodles))
		require.NoError(t, repo.Add(ctx, egg))

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Scallion Oil Noodles", items[0].Name())
		assert.Equal(t, "0.50", items[1].Price().String())
		assert.True(t, items[1].ID().IsEqual(egg.ID()))
	})

	t.Run("should persist zero stock on update", func(t *testing.T) {
		repo, _ := newRepository(t)
		ctx := t.Context()
		item, _ := menu.NewItem("Chili Oil Dumplings", 1, kernel.MustMoney("3"))
		require.NoError(t, repo.Add(ctx, item))

		require.NoError(t, item.Reserve(kernel.MustQuantity(1)))
		require.NoError(t, repo.Update(ctx, item))

		stored, err := repo.Get(ctx, item.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Quantity())
	})

	t.Run("should find items by name", func(t *testing.T) {
		repo, _ := newRepository(t)
		ctx := t.Context()
		item, _ := menu.NewItem("Mandarin Fresh Cream Roll", 10, kernel.MustMoney("2.5"))
		require.NoError(t, repo.Add(ctx, item))

		found, err := repo.GetByName(ctx, "Mandarin Fresh Cream Roll")
		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(item.ID()))

		_, err = repo.GetByName(ctx, "Bubble Tea")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report missing items", func(t *testing.T) {
		repo, _ := newRepository(t)
		ctx := t.Context()

		_, err := repo.Get(ctx, kernel.MustNewID(5))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		ghost, _ := menu.RestoreItem(kernel.MustNewID(5), "Ghost", 1, kernel.ZeroMoney())
		require.ErrorIs(t, repo.Update(ctx, ghost), errs.ErrObjectNotFound)
	})

	t.Run("should read prices stored as plain numbers", func(t *testing.T) {
		repo, db := newRepository(t)
		require.NoError(t, db.Exec("INSERT INTO menu (name, quantity, price) VALUES ('Egg (for noodles)', 15, 0.5)").Error)

		item, err := repo.Get(t.Context(), kernel.MustNewID(1))
		require.NoError(t, err)
		assert.True(t, item.Price().IsEqual(kernel.MustMoney("0.50")))
	})
}
