package persistence

import (
	"context"
	"errors"

	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/erp/partysync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartyRepository implements PartyRepository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// FindByID finds a party by its ID, loading contacts, addresses and
// remote refs belonging to it.
func (r *GormPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	var model models.PartyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	p := model.ToDomain()

	var contactModels []models.ContactMechanismModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", id).
		Order("created_at ASC").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	for i := range contactModels {
		p.ContactMechanisms = append(p.ContactMechanisms, *contactModels[i].ToDomain())
	}

	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", id).
		Order("created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, err
	}
	for i := range addressModels {
		p.Addresses = append(p.Addresses, *addressModels[i].ToDomain())
	}

	var refModels []models.RemoteCustomerRefModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", id).
		Order("created_at ASC").
		Find(&refModels).Error; err != nil {
		return nil, err
	}
	for i := range refModels {
		p.RemoteRefs = append(p.RemoteRefs, *refModels[i].ToDomain())
	}

	return p, nil
}

// Save creates or updates a party. Child collections are persisted
// through their own repositories.
func (r *GormPartyRepository) Save(ctx context.Context, p *party.Party) error {
	var model models.PartyModel
	model.FromDomain(p)
	return r.db.WithContext(ctx).Save(&model).Error
}
