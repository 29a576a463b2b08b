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

// GormRemoteCustomerRefRepository implements RemoteCustomerRefRepository using GORM
type GormRemoteCustomerRefRepository struct {
	db *gorm.DB
}

// NewGormRemoteCustomerRefRepository creates a new GormRemoteCustomerRefRepository
func NewGormRemoteCustomerRefRepository(db *gorm.DB) *GormRemoteCustomerRefRepository {
	return &GormRemoteCustomerRefRepository{db: db}
}

// FindByChannelAndRemoteID finds the ref linking a remote customer id
// to a party within one channel. Guest refs share the "0" sentinel, so
// more than one row can legitimately exist only for guests; for any
// other remote id a second row means corrupted data and the lookup
// refuses to pick one.
func (r *GormRemoteCustomerRefRepository) FindByChannelAndRemoteID(ctx context.Context, channelID uuid.UUID, remoteID string) (*party.RemoteCustomerRef, error) {
	var refModels []models.RemoteCustomerRefModel
	if err := r.db.WithContext(ctx).
		Where("channel_id = ? AND remote_id = ?", channelID, remoteID).
		Order("created_at ASC").
		Limit(2).
		Find(&refModels).Error; err != nil {
		return nil, err
	}
	if len(refModels) == 0 {
		return nil, shared.ErrNotFound
	}
	if len(refModels) > 1 && remoteID != party.GuestRemoteID {
		return nil, party.ErrAmbiguousRemoteRef
	}
	return refModels[0].ToDomain(), nil
}

// Save creates or updates a remote customer ref. Non-guest refs are
// unique per (channel, remote id); a conflicting row from another
// party yields ErrDuplicatePartyInChannel. The partial unique index in
// the schema backs this check against concurrent writers.
func (r *GormRemoteCustomerRefRepository) Save(ctx context.Context, ref *party.RemoteCustomerRef) error {
	if !ref.IsGuest() {
		var existing models.RemoteCustomerRefModel
		err := r.db.WithContext(ctx).
			Where("channel_id = ? AND remote_id = ? AND id <> ?", ref.ChannelID, ref.RemoteID, ref.ID).
			First(&existing).Error
		if err == nil {
			return party.ErrDuplicatePartyInChannel
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	var model models.RemoteCustomerRefModel
	model.FromDomain(ref)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return party.ErrDuplicatePartyInChannel
		}
		return err
	}
	return nil
}
