package party

import (
	"strings"

	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// Address is a postal address owned by a party. String fields use ""
// for absent values; nullable geographic references use nil pointers.
// Addresses created by the sync are never mutated.
type Address struct {
	shared.BaseEntity
	PartyID       uuid.UUID
	Name          string
	Street        string
	StreetBis     string
	Zip           string
	City          string
	CountryID     *uuid.UUID
	SubdivisionID *uuid.UUID
}

// AddressFields carries the normalized comparable fields of an address.
// It is what a remote address payload reduces to once the street is
// split and the geography is resolved.
type AddressFields struct {
	Name          string
	Street        string
	StreetBis     string
	Zip           string
	City          string
	CountryID     *uuid.UUID
	SubdivisionID *uuid.UUID
}

// NewAddress creates an address for a party from normalized fields
func NewAddress(partyID uuid.UUID, f AddressFields) (*Address, error) {
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Address requires a party")
	}

	return &Address{
		BaseEntity:    shared.NewBaseEntity(),
		PartyID:       partyID,
		Name:          f.Name,
		Street:        f.Street,
		StreetBis:     f.StreetBis,
		Zip:           f.Zip,
		City:          f.City,
		CountryID:     f.CountryID,
		SubdivisionID: f.SubdivisionID,
	}, nil
}

// SplitStreet splits the platform's single multi-line street value into
// the two ERP street lines. Only the first line break splits; any
// further breaks stay in the second line verbatim. The second value is
// empty when the input has no line break.
func SplitStreet(raw string) (street, streetBis string) {
	parts := strings.SplitN(raw, "\n", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return raw, ""
}

// SameAs reports whether the address equals the given fields. Empty
// strings and absent values compare equal, so an address stored with
// "" street bis matches a payload that simply omitted the second line.
// Geographic references match on identity, nil matching only nil.
func (a *Address) SameAs(f AddressFields) bool {
	return a.Name == f.Name &&
		a.Street == f.Street &&
		a.StreetBis == f.StreetBis &&
		a.Zip == f.Zip &&
		a.City == f.City &&
		uuidPtrEqual(a.CountryID, f.CountryID) &&
		uuidPtrEqual(a.SubdivisionID, f.SubdivisionID)
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
