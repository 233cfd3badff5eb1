package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/localvendor/backend/internal/domain/shared"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestNewGormProductRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "price", "stock"}).
			AddRow(int64(1), now, now, "Notebook", decimal.NewFromFloat(5.50), int64(10))

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Notebook", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(5.50)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns domain not found for missing product", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(404), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), 404)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("issues row lock on postgres", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "price", "stock"}).
			AddRow(int64(1), now, now, "Notebook", decimal.NewFromFloat(5.50), int64(10))

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(int64(1), 1).
			WillReturnRows(rows)

		product, err := repo.FindByIDForUpdate(context.Background(), 1)

		assert.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, int64(10), product.Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindAll(t *testing.T) {
	t.Run("returns products ordered by id", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "price", "stock"}).
			AddRow(int64(1), now, now, "Pen", decimal.NewFromFloat(1.25), int64(100)).
			AddRow(int64(2), now, now, "Notebook", decimal.NewFromFloat(5.50), int64(10))

		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC`).
			WillReturnRows(rows)

		products, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Pen", products[0].Name)
		assert.Equal(t, "Notebook", products[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for empty catalog", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "price", "stock"})
		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC`).
			WillReturnRows(rows)

		products, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}
