package persistence

import (
	"context"

	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByParty returns all addresses of a party in insertion order.
// Reconciliation scans them first to last, so the order must be stable.
func (r *GormAddressRepository) FindByParty(ctx context.Context, partyID uuid.UUID) ([]party.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, err
	}
	addresses := make([]party.Address, len(addressModels))
	for i := range addressModels {
		addresses[i] = *addressModels[i].ToDomain()
	}
	return addresses, nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, a *party.Address) error {
	var model models.AddressModel
	model.FromDomain(a)
	return r.db.WithContext(ctx).Save(&model).Error
}
