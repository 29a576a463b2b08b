package models

import (
	"time"

	"github.com/erp/partysync/internal/domain/geo"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// CountryModel is the persistence model for the Country reference entity.
type CountryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Code      string    `gorm:"type:varchar(2);not null;uniqueIndex:uq_country_code"`
	Name      string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CountryModel) TableName() string {
	return "countries"
}

// ToDomain converts the persistence model to a domain Country entity.
func (m *CountryModel) ToDomain() *geo.Country {
	return &geo.Country{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Code: m.Code,
		Name: m.Name,
	}
}

// FromDomain populates the persistence model from a domain Country entity.
func (m *CountryModel) FromDomain(c *geo.Country) {
	m.ID = c.ID
	m.Code = c.Code
	m.Name = c.Name
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// SubdivisionModel is the persistence model for the Subdivision reference entity.
type SubdivisionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;index:idx_subdivision_country"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SubdivisionModel) TableName() string {
	return "subdivisions"
}

// ToDomain converts the persistence model to a domain Subdivision entity.
func (m *SubdivisionModel) ToDomain() *geo.Subdivision {
	return &geo.Subdivision{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		CountryID: m.CountryID,
		Name:      m.Name,
	}
}

// FromDomain populates the persistence model from a domain Subdivision entity.
func (m *SubdivisionModel) FromDomain(s *geo.Subdivision) {
	m.ID = s.ID
	m.CountryID = s.CountryID
	m.Name = s.Name
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
