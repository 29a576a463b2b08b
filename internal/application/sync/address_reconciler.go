package sync

import (
	"context"

	"github.com/erp/partysync/internal/domain/geo"
	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AddressReconciler matches remote address payloads against a party's
// existing addresses and creates an address on a miss. Matching is
// exact field comparison after normalization, first match wins.
type AddressReconciler struct {
	addresses    party.AddressRepository
	contacts     party.ContactMechanismRepository
	countries    geo.CountryLookup
	subdivisions geo.SubdivisionLookup
	logger       *zap.Logger
}

// NewAddressReconciler creates a new AddressReconciler
func NewAddressReconciler(
	addresses party.AddressRepository,
	contacts party.ContactMechanismRepository,
	countries geo.CountryLookup,
	subdivisions geo.SubdivisionLookup,
	logger *zap.Logger,
) *AddressReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressReconciler{
		addresses:    addresses,
		contacts:     contacts,
		countries:    countries,
		subdivisions: subdivisions,
		logger:       logger,
	}
}

// Matches reports whether the stored address equals the remote payload
// after normalization. Geography is resolved through the lookup ports;
// a payload without a country code compares as having neither country
// nor subdivision. An unresolvable country or region is an error, not
// a mismatch.
func (r *AddressReconciler) Matches(ctx context.Context, addr *party.Address, data RemoteAddress) (bool, error) {
	fields, err := r.resolveFields(ctx, data)
	if err != nil {
		return false, err
	}
	return addr.SameAs(fields), nil
}

// FindOrCreateForParty returns the first of the party's addresses that
// matches the payload, in stored order, creating a new address when
// none does. On creation, a phone contact is attached unless the party
// already has a phone or mobile contact with that exact number.
func (r *AddressReconciler) FindOrCreateForParty(ctx context.Context, p *party.Party, data RemoteAddress) (*party.Address, error) {
	if p == nil || p.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Address reconciliation requires a resolved party")
	}

	fields, err := r.resolveFields(ctx, data)
	if err != nil {
		return nil, err
	}

	existing, err := r.addresses.FindByParty(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].SameAs(fields) {
			return &existing[i], nil
		}
	}

	addr, err := party.NewAddress(p.ID, fields)
	if err != nil {
		return nil, err
	}
	if err := r.addresses.Save(ctx, addr); err != nil {
		return nil, err
	}
	p.Addresses = append(p.Addresses, *addr)
	p.AddDomainEvent(party.NewAddressCreatedEvent(addr))

	if data.Telephone != "" {
		if err := r.attachPhone(ctx, p, data.Telephone); err != nil {
			return nil, err
		}
	}

	r.logger.Info("created address for party",
		zap.String("party_id", p.ID.String()),
		zap.String("city", addr.City),
	)

	return addr, nil
}

// resolveFields reduces the payload to comparable address fields:
// computed name, split street lines, and resolved geography.
func (r *AddressReconciler) resolveFields(ctx context.Context, data RemoteAddress) (party.AddressFields, error) {
	street, streetBis := party.SplitStreet(data.Street)

	fields := party.AddressFields{
		Name:      party.FullName(data.FirstName, data.LastName),
		Street:    street,
		StreetBis: streetBis,
		Zip:       data.Postcode,
		City:      data.City,
	}

	if data.CountryCode == "" {
		return fields, nil
	}

	country, err := r.countries.ByCode(ctx, data.CountryCode)
	if err != nil {
		return party.AddressFields{}, err
	}
	fields.CountryID = &country.ID

	if data.Region != "" {
		subdivision, err := r.subdivisions.ByRegion(ctx, data.Region, country.ID)
		if err != nil {
			return party.AddressFields{}, err
		}
		fields.SubdivisionID = &subdivision.ID
	}

	return fields, nil
}

func (r *AddressReconciler) attachPhone(ctx context.Context, p *party.Party, number string) error {
	exists, err := r.contacts.ExistsPhoneNumber(ctx, p.ID, number)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	cm, err := party.NewPhoneContact(p.ID, number)
	if err != nil {
		return err
	}
	if err := r.contacts.Save(ctx, cm); err != nil {
		return err
	}
	p.ContactMechanisms = append(p.ContactMechanisms, *cm)
	return nil
}
