package sync

import (
	"context"
	"testing"

	"github.com/erp/partysync/internal/domain/geo"
	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestParty(t *testing.T) *party.Party {
	t.Helper()
	p, err := party.NewParty("Jane Doe")
	require.NoError(t, err)
	return p
}

func newTestCountry(code string) *geo.Country {
	return &geo.Country{BaseEntity: shared.NewBaseEntity(), Code: code, Name: code}
}

func TestAddressReconciler_Matches(t *testing.T) {
	ctx := context.Background()
	partyID := uuid.New()

	t.Run("matches on all normalized fields", func(t *testing.T) {
		us := newTestCountry("US")
		ca := &geo.Subdivision{BaseEntity: shared.NewBaseEntity(), CountryID: us.ID, Name: "California"}

		countries := new(MockCountryLookup)
		subdivisions := new(MockSubdivisionLookup)
		countries.On("ByCode", ctx, "US").Return(us, nil)
		subdivisions.On("ByRegion", ctx, "California", us.ID).Return(ca, nil)

		addr, err := party.NewAddress(partyID, party.AddressFields{
			Name:          "Jane Doe",
			Street:        "123 Main St",
			StreetBis:     "Apt 4",
			Zip:           "90210",
			City:          "Springfield",
			CountryID:     &us.ID,
			SubdivisionID: &ca.ID,
		})
		require.NoError(t, err)

		r := NewAddressReconciler(new(MockAddressRepository), new(MockContactRepository), countries, subdivisions, nil)
		ok, err := r.Matches(ctx, addr, RemoteAddress{
			FirstName:   "Jane",
			LastName:    "Doe",
			Street:      "123 Main St\nApt 4",
			City:        "Springfield",
			Postcode:    "90210",
			CountryCode: "US",
			Region:      "California",
		})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing country code matches only countryless address", func(t *testing.T) {
		withCountry := newTestCountry("US")
		stored, err := party.NewAddress(partyID, party.AddressFields{
			Name:      "Jane Doe",
			Street:    "123 Main St",
			CountryID: &withCountry.ID,
		})
		require.NoError(t, err)

		r := NewAddressReconciler(new(MockAddressRepository), new(MockContactRepository), new(MockCountryLookup), new(MockSubdivisionLookup), nil)
		ok, err := r.Matches(ctx, stored, RemoteAddress{
			FirstName: "Jane",
			LastName:  "Doe",
			Street:    "123 Main St",
		})

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("blank name matches empty stored name", func(t *testing.T) {
		stored, err := party.NewAddress(partyID, party.AddressFields{
			Street: "123 Main St",
		})
		require.NoError(t, err)

		r := NewAddressReconciler(new(MockAddressRepository), new(MockContactRepository), new(MockCountryLookup), new(MockSubdivisionLookup), nil)
		ok, err := r.Matches(ctx, stored, RemoteAddress{
			Street: "123 Main St",
		})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unresolvable country is an error", func(t *testing.T) {
		countries := new(MockCountryLookup)
		countries.On("ByCode", ctx, "XX").Return(nil, shared.ErrNotFound)

		stored, err := party.NewAddress(partyID, party.AddressFields{Street: "123 Main St"})
		require.NoError(t, err)

		r := NewAddressReconciler(new(MockAddressRepository), new(MockContactRepository), countries, new(MockSubdivisionLookup), nil)
		_, err = r.Matches(ctx, stored, RemoteAddress{Street: "123 Main St", CountryCode: "XX"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestAddressReconciler_FindOrCreateForParty(t *testing.T) {
	ctx := context.Background()

	t.Run("creates address and phone contact for party without addresses", func(t *testing.T) {
		p := newTestParty(t)
		addressRepo := new(MockAddressRepository)
		contactRepo := new(MockContactRepository)

		addressRepo.On("FindByParty", ctx, p.ID).Return([]party.Address{}, nil)
		addressRepo.On("Save", ctx, mock.AnythingOfType("*party.Address")).Return(nil)
		contactRepo.On("ExistsPhoneNumber", ctx, p.ID, "555-0100").Return(false, nil)
		contactRepo.On("Save", ctx, mock.AnythingOfType("*party.ContactMechanism")).Return(nil)

		r := NewAddressReconciler(addressRepo, contactRepo, new(MockCountryLookup), new(MockSubdivisionLookup), nil)
		addr, err := r.FindOrCreateForParty(ctx, p, RemoteAddress{
			FirstName: "Jane",
			LastName:  "Doe",
			Street:    "123 Main St\nApt 4",
			City:      "Springfield",
			Postcode:  "90210",
			Telephone: "555-0100",
		})

		require.NoError(t, err)
		assert.Equal(t, "123 Main St", addr.Street)
		assert.Equal(t, "Apt 4", addr.StreetBis)
		assert.Equal(t, "Jane Doe", addr.Name)
		assert.Len(t, p.Addresses, 1)
		require.Len(t, p.ContactMechanisms, 1)
		assert.Equal(t, party.ContactTypePhone, p.ContactMechanisms[0].Type)
		addressRepo.AssertNumberOfCalls(t, "Save", 1)
		contactRepo.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("returns first matching address without creating", func(t *testing.T) {
		p := newTestParty(t)
		addressRepo := new(MockAddressRepository)

		stored, err := party.NewAddress(p.ID, party.AddressFields{
			Name:   "Jane Doe",
			Street: "123 Main St",
			City:   "Springfield",
		})
		require.NoError(t, err)
		duplicate, err := party.NewAddress(p.ID, party.AddressFields{
			Name:   "Jane Doe",
			Street: "123 Main St",
			City:   "Springfield",
		})
		require.NoError(t, err)

		addressRepo.On("FindByParty", ctx, p.ID).Return([]party.Address{*stored, *duplicate}, nil)

		r := NewAddressReconciler(addressRepo, new(MockContactRepository), new(MockCountryLookup), new(MockSubdivisionLookup), nil)
		addr, err := r.FindOrCreateForParty(ctx, p, RemoteAddress{
			FirstName: "Jane",
			LastName:  "Doe",
			Street:    "123 Main St",
			City:      "Springfield",
		})

		require.NoError(t, err)
		// First match wins, not best match.
		assert.Equal(t, stored.ID, addr.ID)
		addressRepo.AssertNotCalled(t, "Save")
	})

	t.Run("skips phone contact when number already present", func(t *testing.T) {
		p := newTestParty(t)
		addressRepo := new(MockAddressRepository)
		contactRepo := new(MockContactRepository)

		addressRepo.On("FindByParty", ctx, p.ID).Return([]party.Address{}, nil)
		addressRepo.On("Save", ctx, mock.AnythingOfType("*party.Address")).Return(nil)
		contactRepo.On("ExistsPhoneNumber", ctx, p.ID, "555-0100").Return(true, nil)

		r := NewAddressReconciler(addressRepo, contactRepo, new(MockCountryLookup), new(MockSubdivisionLookup), nil)
		_, err := r.FindOrCreateForParty(ctx, p, RemoteAddress{
			Street:    "123 Main St",
			Telephone: "555-0100",
		})

		require.NoError(t, err)
		contactRepo.AssertNotCalled(t, "Save")
	})

	t.Run("skips phone contact when payload has no telephone", func(t *testing.T) {
		p := newTestParty(t)
		addressRepo := new(MockAddressRepository)
		contactRepo := new(MockContactRepository)

		addressRepo.On("FindByParty", ctx, p.ID).Return([]party.Address{}, nil)
		addressRepo.On("Save", ctx, mock.AnythingOfType("*party.Address")).Return(nil)

		r := NewAddressReconciler(addressRepo, contactRepo, new(MockCountryLookup), new(MockSubdivisionLookup), nil)
		_, err := r.FindOrCreateForParty(ctx, p, RemoteAddress{Street: "123 Main St"})

		require.NoError(t, err)
		contactRepo.AssertNotCalled(t, "ExistsPhoneNumber")
		contactRepo.AssertNotCalled(t, "Save")
	})

	t.Run("fails without party", func(t *testing.T) {
		r := NewAddressReconciler(new(MockAddressRepository), new(MockContactRepository), new(MockCountryLookup), new(MockSubdivisionLookup), nil)

		_, err := r.FindOrCreateForParty(ctx, nil, RemoteAddress{Street: "123 Main St"})

		assert.Error(t, err)
	})
}
