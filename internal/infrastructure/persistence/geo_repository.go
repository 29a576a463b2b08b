package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/partysync/internal/domain/geo"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/erp/partysync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCountryLookup implements geo.CountryLookup using GORM
type GormCountryLookup struct {
	db *gorm.DB
}

// NewGormCountryLookup creates a new GormCountryLookup
func NewGormCountryLookup(db *gorm.DB) *GormCountryLookup {
	return &GormCountryLookup{db: db}
}

// ByCode finds a country by its ISO code, case-insensitively.
func (r *GormCountryLookup) ByCode(ctx context.Context, code string) (*geo.Country, error) {
	var model models.CountryModel
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

// Save creates or updates a country
func (r *GormCountryLookup) Save(ctx context.Context, c *geo.Country) error {
	var model models.CountryModel
	model.FromDomain(c)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormSubdivisionLookup implements geo.SubdivisionLookup using GORM
type GormSubdivisionLookup struct {
	db *gorm.DB
}

// NewGormSubdivisionLookup creates a new GormSubdivisionLookup
func NewGormSubdivisionLookup(db *gorm.DB) *GormSubdivisionLookup {
	return &GormSubdivisionLookup{db: db}
}

// ByRegion finds a subdivision by name within a country,
// case-insensitively.
func (r *GormSubdivisionLookup) ByRegion(ctx context.Context, region string, countryID uuid.UUID) (*geo.Subdivision, error) {
	var model models.SubdivisionModel
	if err := r.db.WithContext(ctx).
		Where("country_id = ? AND LOWER(name) = LOWER(?)", countryID, region).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a subdivision
func (r *GormSubdivisionLookup) Save(ctx context.Context, s *geo.Subdivision) error {
	var model models.SubdivisionModel
	model.FromDomain(s)
	return r.db.WithContext(ctx).Save(&model).Error
}
