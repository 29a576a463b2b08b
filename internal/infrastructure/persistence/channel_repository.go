package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/erp/partysync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChannelRepository implements channel.Repository using GORM
type GormChannelRepository struct {
	db *gorm.DB
}

// NewGormChannelRepository creates a new GormChannelRepository
func NewGormChannelRepository(db *gorm.DB) *GormChannelRepository {
	return &GormChannelRepository{db: db}
}

// FindByID finds a channel by its ID
func (r *GormChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.Channel, error) {
	var model models.ChannelModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a channel by its code
func (r *GormChannelRepository) FindByCode(ctx context.Context, code string) (*channel.Channel, error) {
	var model models.ChannelModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a channel
func (r *GormChannelRepository) Save(ctx context.Context, c *channel.Channel) error {
	var model models.ChannelModel
	model.FromDomain(c)
	return r.db.WithContext(ctx).Save(&model).Error
}
