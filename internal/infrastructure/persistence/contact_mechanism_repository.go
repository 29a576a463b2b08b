package persistence

import (
	"context"

	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContactMechanismRepository implements ContactMechanismRepository using GORM
type GormContactMechanismRepository struct {
	db *gorm.DB
}

// NewGormContactMechanismRepository creates a new GormContactMechanismRepository
func NewGormContactMechanismRepository(db *gorm.DB) *GormContactMechanismRepository {
	return &GormContactMechanismRepository{db: db}
}

// FindByParty returns all contact mechanisms of a party in insertion order.
func (r *GormContactMechanismRepository) FindByParty(ctx context.Context, partyID uuid.UUID) ([]party.ContactMechanism, error) {
	var contactModels []models.ContactMechanismModel
	if err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("created_at ASC").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	contacts := make([]party.ContactMechanism, len(contactModels))
	for i := range contactModels {
		contacts[i] = *contactModels[i].ToDomain()
	}
	return contacts, nil
}

// ExistsPhoneNumber reports whether the party already has a phone or
// mobile contact with the given value.
func (r *GormContactMechanismRepository) ExistsPhoneNumber(ctx context.Context, partyID uuid.UUID, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ContactMechanismModel{}).
		Where("party_id = ? AND type IN ? AND value = ?",
			partyID, []party.ContactType{party.ContactTypePhone, party.ContactTypeMobile}, value).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a contact mechanism
func (r *GormContactMechanismRepository) Save(ctx context.Context, cm *party.ContactMechanism) error {
	var model models.ContactMechanismModel
	model.FromDomain(cm)
	return r.db.WithContext(ctx).Save(&model).Error
}
