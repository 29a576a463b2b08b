package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockChannelRepository creates a GormChannelRepository with a mocked SQL connection
func newMockChannelRepository(t *testing.T) (*GormChannelRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormChannelRepository(gormDB), mock, mockDB
}

func TestGormChannelRepository_FindByCode(t *testing.T) {
	t.Run("finds channel by uppercased code", func(t *testing.T) {
		repo, mock, mockDB := newMockChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "code", "name", "api_url", "api_user", "api_key", "enabled"}).
			AddRow(channelID, "MAGENTO_EU", "Magento EU", "https://shop.example.com", "sync", "secret", true)

		mock.ExpectQuery(`SELECT \* FROM "channels" WHERE code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("MAGENTO_EU", 1).
			WillReturnRows(rows)

		ch, err := repo.FindByCode(context.Background(), "magento_eu")

		assert.NoError(t, err)
		require.NotNil(t, ch)
		assert.Equal(t, channelID, ch.ID)
		assert.Equal(t, "MAGENTO_EU", ch.Code)
		assert.True(t, ch.Enabled)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for unknown code", func(t *testing.T) {
		repo, mock, mockDB := newMockChannelRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "channels" WHERE code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("MISSING", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		ch, err := repo.FindByCode(context.Background(), "missing")

		assert.Error(t, err)
		assert.Nil(t, ch)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormChannelRepository_FindByID(t *testing.T) {
	t.Run("returns not found for non-existent channel", func(t *testing.T) {
		repo, mock, mockDB := newMockChannelRepository(t)
		defer mockDB.Close()

		channelID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "channels" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(channelID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		ch, err := repo.FindByID(context.Background(), channelID)

		assert.Error(t, err)
		assert.Nil(t, ch)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
