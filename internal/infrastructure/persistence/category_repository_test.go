package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

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

	return gormDB, mock, mockDB
}

func TestGormCategoryRepository_FindByID(t *testing.T) {
	t.Run("finds existing category", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCategoryRepository(db)

		categoryID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "slug", "description"}).
			AddRow(categoryID, "Smartphones", "smartphones", "")

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(categoryID, 1).
			WillReturnRows(rows)

		category, err := repo.FindByID(context.Background(), categoryID)

		require.NoError(t, err)
		assert.Equal(t, categoryID, category.ID)
		assert.Equal(t, "Smartphones", category.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates missing row to ErrNotFound", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCategoryRepository(db)

		categoryID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(categoryID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), categoryID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCategoryRepository_FindBySlug(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCategoryRepository(db)

	categoryID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
		AddRow(categoryID, "Smartphones", "smartphones")

	// slug is lowercased before hitting the database
	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE slug = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("smartphones", 1).
		WillReturnRows(rows)

	category, err := repo.FindBySlug(context.Background(), "Smartphones")
	require.NoError(t, err)
	assert.Equal(t, "smartphones", category.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_FindAll(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCategoryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
		AddRow(uuid.New(), "Accessories", "accessories").
		AddRow(uuid.New(), "Smartphones", "smartphones")

	mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY name ASC`).
		WillReturnRows(rows)

	categories, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Accessories", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCategoryRepository_ExistsBySlug(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCategoryRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE slug = \$1`).
		WithArgs("smartphones").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsBySlug(context.Background(), "smartphones")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
