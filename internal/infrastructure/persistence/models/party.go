package models

import (
	"time"

	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// PartyModel is the persistence model for the Party domain entity.
type PartyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(200);not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "parties"
}

// ToDomain converts the persistence model to a domain Party entity.
// Collections are loaded by the repository, not here.
func (m *PartyModel) ToDomain() *party.Party {
	return &party.Party{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
		},
		Name: m.Name,
	}
}

// FromDomain populates the persistence model from a domain Party entity.
func (m *PartyModel) FromDomain(p *party.Party) {
	m.ID = p.ID
	m.Name = p.Name
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// ContactMechanismModel is the persistence model for the
// ContactMechanism domain entity.
type ContactMechanismModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key"`
	PartyID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_contact_party"`
	Type      party.ContactType `gorm:"type:varchar(20);not null"`
	Value     string            `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time         `gorm:"not null"`
	UpdatedAt time.Time         `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContactMechanismModel) TableName() string {
	return "contact_mechanisms"
}

// ToDomain converts the persistence model to a domain ContactMechanism entity.
func (m *ContactMechanismModel) ToDomain() *party.ContactMechanism {
	return &party.ContactMechanism{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		PartyID: m.PartyID,
		Type:    m.Type,
		Value:   m.Value,
	}
}

// FromDomain populates the persistence model from a domain ContactMechanism entity.
func (m *ContactMechanismModel) FromDomain(cm *party.ContactMechanism) {
	m.ID = cm.ID
	m.PartyID = cm.PartyID
	m.Type = cm.Type
	m.Value = cm.Value
	m.CreatedAt = cm.CreatedAt
	m.UpdatedAt = cm.UpdatedAt
}

// AddressModel is the persistence model for the Address domain entity.
type AddressModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	PartyID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_address_party"`
	Name          string     `gorm:"type:varchar(200);not null;default:''"`
	Street        string     `gorm:"type:varchar(200);not null;default:''"`
	StreetBis     string     `gorm:"type:text;not null;default:''"`
	Zip           string     `gorm:"type:varchar(20);not null;default:''"`
	City          string     `gorm:"type:varchar(100);not null;default:''"`
	CountryID     *uuid.UUID `gorm:"type:uuid"`
	SubdivisionID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *party.Address {
	return &party.Address{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		PartyID:       m.PartyID,
		Name:          m.Name,
		Street:        m.Street,
		StreetBis:     m.StreetBis,
		Zip:           m.Zip,
		City:          m.City,
		CountryID:     m.CountryID,
		SubdivisionID: m.SubdivisionID,
	}
}

// FromDomain populates the persistence model from a domain Address entity.
func (m *AddressModel) FromDomain(a *party.Address) {
	m.ID = a.ID
	m.PartyID = a.PartyID
	m.Name = a.Name
	m.Street = a.Street
	m.StreetBis = a.StreetBis
	m.Zip = a.Zip
	m.City = a.City
	m.CountryID = a.CountryID
	m.SubdivisionID = a.SubdivisionID
	m.CreatedAt = a.CreatedAt
	m.UpdatedAt = a.UpdatedAt
}

// RemoteCustomerRefModel is the persistence model for the
// RemoteCustomerRef domain entity.
//
// The unique-per-channel invariant for non-guest refs is enforced by a
// partial unique index created in the SQL migrations:
//
//	CREATE UNIQUE INDEX uq_remote_ref_channel_remote
//	    ON remote_customer_refs (channel_id, remote_id)
//	    WHERE remote_id <> '0';
//
// GORM tags cannot express the WHERE clause, so only the plain lookup
// index is declared here.
type RemoteCustomerRefModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	RemoteID  string    `gorm:"type:varchar(100);not null;index:idx_remote_ref_lookup,priority:2"`
	ChannelID uuid.UUID `gorm:"type:uuid;not null;index:idx_remote_ref_lookup,priority:1"`
	PartyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_remote_ref_party"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RemoteCustomerRefModel) TableName() string {
	return "remote_customer_refs"
}

// ToDomain converts the persistence model to a domain RemoteCustomerRef entity.
func (m *RemoteCustomerRefModel) ToDomain() *party.RemoteCustomerRef {
	return &party.RemoteCustomerRef{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		RemoteID:  m.RemoteID,
		ChannelID: m.ChannelID,
		PartyID:   m.PartyID,
	}
}

// FromDomain populates the persistence model from a domain RemoteCustomerRef entity.
func (m *RemoteCustomerRefModel) FromDomain(ref *party.RemoteCustomerRef) {
	m.ID = ref.ID
	m.RemoteID = ref.RemoteID
	m.ChannelID = ref.ChannelID
	m.PartyID = ref.PartyID
	m.CreatedAt = ref.CreatedAt
	m.UpdatedAt = ref.UpdatedAt
}
