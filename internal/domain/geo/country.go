// Package geo exposes the country and subdivision lookup ports the
// address reconciler resolves remote geography through. The actual code
// tables live in the ERP; this module only reads them by code.
package geo

import (
	"context"

	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// Country is a reference to a country record in the ERP code table
type Country struct {
	shared.BaseEntity
	Code string
	Name string
}

// Subdivision is a reference to a region/state record scoped to a country
type Subdivision struct {
	shared.BaseEntity
	CountryID uuid.UUID
	Name      string
}

// CountryLookup resolves the remote platform's two-letter country code
// to a local country reference
type CountryLookup interface {
	// ByCode resolves a country by its ISO code. Returns
	// shared.ErrNotFound when the code is unknown.
	ByCode(ctx context.Context, code string) (*Country, error)
}

// SubdivisionLookup resolves the remote platform's region name to a
// local subdivision reference within a country
type SubdivisionLookup interface {
	// ByRegion resolves a subdivision by region name within a country.
	// Returns shared.ErrNotFound when no subdivision matches.
	ByRegion(ctx context.Context, region string, countryID uuid.UUID) (*Subdivision, error)
}
