package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/domain/geo"
	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mocks
// =============================================================================

// MockPartyRepository is a mock implementation of party.PartyRepository
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) Save(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockRefRepository is a mock implementation of party.RemoteCustomerRefRepository
type MockRefRepository struct {
	mock.Mock
}

func (m *MockRefRepository) FindByChannelAndRemoteID(ctx context.Context, channelID uuid.UUID, remoteID string) (*party.RemoteCustomerRef, error) {
	args := m.Called(ctx, channelID, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.RemoteCustomerRef), args.Error(1)
}

func (m *MockRefRepository) Save(ctx context.Context, ref *party.RemoteCustomerRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// MockAddressRepository is a mock implementation of party.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByParty(ctx context.Context, partyID uuid.UUID) ([]party.Address, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).([]party.Address), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, a *party.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockContactRepository is a mock implementation of party.ContactMechanismRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByParty(ctx context.Context, partyID uuid.UUID) ([]party.ContactMechanism, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).([]party.ContactMechanism), args.Error(1)
}

func (m *MockContactRepository) ExistsPhoneNumber(ctx context.Context, partyID uuid.UUID, value string) (bool, error) {
	args := m.Called(ctx, partyID, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, cm *party.ContactMechanism) error {
	args := m.Called(ctx, cm)
	return args.Error(0)
}

// MockCustomerAPI is a mock implementation of CustomerAPI
type MockCustomerAPI struct {
	mock.Mock
}

func (m *MockCustomerAPI) FetchCustomer(ctx context.Context, ch *channel.Channel, remoteID string) (*RemoteCustomer, error) {
	args := m.Called(ctx, ch, remoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RemoteCustomer), args.Error(1)
}

// MockCountryLookup is a mock implementation of geo.CountryLookup
type MockCountryLookup struct {
	mock.Mock
}

func (m *MockCountryLookup) ByCode(ctx context.Context, code string) (*geo.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Country), args.Error(1)
}

// MockSubdivisionLookup is a mock implementation of geo.SubdivisionLookup
type MockSubdivisionLookup struct {
	mock.Mock
}

func (m *MockSubdivisionLookup) ByRegion(ctx context.Context, region string, countryID uuid.UUID) (*geo.Subdivision, error) {
	args := m.Called(ctx, region, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.Subdivision), args.Error(1)
}

func testChannel(t *testing.T) *channel.Channel {
	t.Helper()
	ch, err := channel.NewChannel("web-store", "Web Store", "https://store.example.com/api", "sync", "secret")
	require.NoError(t, err)
	return ch
}

// =============================================================================
// PartyReconciler tests
// =============================================================================

func TestPartyReconciler_FindByRemoteID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns linked party", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)

		existing, err := party.NewParty("Jane Doe")
		require.NoError(t, err)
		ref, err := party.NewRemoteCustomerRef(ch.ID, existing.ID, "7")
		require.NoError(t, err)

		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(ref, nil)
		partyRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

		r := NewPartyReconciler(partyRepo, refRepo, new(MockContactRepository), new(MockCustomerAPI), nil)
		got, err := r.FindByRemoteID(ctx, ch, "7")

		require.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
	})

	t.Run("returns nil on miss", func(t *testing.T) {
		ch := testChannel(t)
		refRepo := new(MockRefRepository)
		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(nil, shared.ErrNotFound)

		r := NewPartyReconciler(new(MockPartyRepository), refRepo, new(MockContactRepository), new(MockCustomerAPI), nil)
		got, err := r.FindByRemoteID(ctx, ch, "7")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("fails without channel", func(t *testing.T) {
		r := NewPartyReconciler(new(MockPartyRepository), new(MockRefRepository), new(MockContactRepository), new(MockCustomerAPI), nil)

		_, err := r.FindByRemoteID(ctx, nil, "7")

		assert.ErrorIs(t, err, party.ErrChannelRequired)
	})

	t.Run("propagates ambiguous match", func(t *testing.T) {
		ch := testChannel(t)
		refRepo := new(MockRefRepository)
		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(nil, party.ErrAmbiguousRemoteRef)

		r := NewPartyReconciler(new(MockPartyRepository), refRepo, new(MockContactRepository), new(MockCustomerAPI), nil)
		_, err := r.FindByRemoteID(ctx, ch, "7")

		assert.ErrorIs(t, err, party.ErrAmbiguousRemoteRef)
	})
}

func TestPartyReconciler_CreateFromRemoteData(t *testing.T) {
	ctx := context.Background()

	t.Run("creates party with ref and email contact", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)
		contactRepo := new(MockContactRepository)

		partyRepo.On("Save", ctx, mock.AnythingOfType("*party.Party")).Return(nil)
		refRepo.On("Save", ctx, mock.AnythingOfType("*party.RemoteCustomerRef")).Return(nil)
		contactRepo.On("Save", ctx, mock.AnythingOfType("*party.ContactMechanism")).Return(nil)

		r := NewPartyReconciler(partyRepo, refRepo, contactRepo, new(MockCustomerAPI), nil)
		p, err := r.CreateFromRemoteData(ctx, ch, RemoteCustomer{
			CustomerID: "7",
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane@x.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", p.Name)
		require.Len(t, p.RemoteRefs, 1)
		assert.Equal(t, "7", p.RemoteRefs[0].RemoteID)
		assert.Equal(t, ch.ID, p.RemoteRefs[0].ChannelID)
		require.Len(t, p.ContactMechanisms, 1)
		assert.Equal(t, party.ContactTypeEmail, p.ContactMechanisms[0].Type)
		assert.Equal(t, "jane@x.com", p.ContactMechanisms[0].Value)
		contactRepo.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("drops empty name part and skips contact without email", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)
		contactRepo := new(MockContactRepository)

		partyRepo.On("Save", ctx, mock.AnythingOfType("*party.Party")).Return(nil)
		refRepo.On("Save", ctx, mock.AnythingOfType("*party.RemoteCustomerRef")).Return(nil)

		r := NewPartyReconciler(partyRepo, refRepo, contactRepo, new(MockCustomerAPI), nil)
		p, err := r.CreateFromRemoteData(ctx, ch, RemoteCustomer{
			CustomerID: "8",
			FirstName:  "",
			LastName:   "Lee",
		})

		require.NoError(t, err)
		assert.Equal(t, "Lee", p.Name)
		assert.Empty(t, p.ContactMechanisms)
		contactRepo.AssertNotCalled(t, "Save")
	})

	t.Run("propagates duplicate ref error", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)

		partyRepo.On("Save", ctx, mock.AnythingOfType("*party.Party")).Return(nil)
		refRepo.On("Save", ctx, mock.AnythingOfType("*party.RemoteCustomerRef")).Return(party.ErrDuplicatePartyInChannel)

		r := NewPartyReconciler(partyRepo, refRepo, new(MockContactRepository), new(MockCustomerAPI), nil)
		_, err := r.CreateFromRemoteData(ctx, ch, RemoteCustomer{CustomerID: "7", FirstName: "Jane"})

		assert.ErrorIs(t, err, party.ErrDuplicatePartyInChannel)
	})

	t.Run("fails without channel", func(t *testing.T) {
		r := NewPartyReconciler(new(MockPartyRepository), new(MockRefRepository), new(MockContactRepository), new(MockCustomerAPI), nil)

		_, err := r.CreateFromRemoteData(ctx, nil, RemoteCustomer{CustomerID: "7"})

		assert.ErrorIs(t, err, party.ErrChannelRequired)
	})
}

func TestPartyReconciler_FindOrCreateByRemoteID(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches payload on miss", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)
		contactRepo := new(MockContactRepository)
		api := new(MockCustomerAPI)

		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(nil, shared.ErrNotFound)
		api.On("FetchCustomer", ctx, ch, "7").Return(&RemoteCustomer{
			CustomerID: "7", FirstName: "Jane", LastName: "Doe",
		}, nil)
		partyRepo.On("Save", ctx, mock.AnythingOfType("*party.Party")).Return(nil)
		refRepo.On("Save", ctx, mock.AnythingOfType("*party.RemoteCustomerRef")).Return(nil)

		r := NewPartyReconciler(partyRepo, refRepo, contactRepo, api, nil)
		p, err := r.FindOrCreateByRemoteID(ctx, ch, "7")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", p.Name)
		api.AssertExpectations(t)
	})

	t.Run("skips fetch on hit", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)
		api := new(MockCustomerAPI)

		existing, err := party.NewParty("Jane Doe")
		require.NoError(t, err)
		ref, err := party.NewRemoteCustomerRef(ch.ID, existing.ID, "7")
		require.NoError(t, err)

		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(ref, nil)
		partyRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

		r := NewPartyReconciler(partyRepo, refRepo, new(MockContactRepository), api, nil)
		p, err := r.FindOrCreateByRemoteID(ctx, ch, "7")

		require.NoError(t, err)
		assert.Equal(t, existing.ID, p.ID)
		api.AssertNotCalled(t, "FetchCustomer")
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		ch := testChannel(t)
		refRepo := new(MockRefRepository)
		api := new(MockCustomerAPI)

		fetchErr := errors.New("platform unavailable")
		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(nil, shared.ErrNotFound)
		api.On("FetchCustomer", ctx, ch, "7").Return(nil, fetchErr)

		r := NewPartyReconciler(new(MockPartyRepository), refRepo, new(MockContactRepository), api, nil)
		_, err := r.FindOrCreateByRemoteID(ctx, ch, "7")

		assert.ErrorIs(t, err, fetchErr)
	})
}

func TestPartyReconciler_FindOrCreateFromRemoteData(t *testing.T) {
	ctx := context.Background()

	t.Run("is idempotent for same channel and id", func(t *testing.T) {
		ch := testChannel(t)
		partyRepo := new(MockPartyRepository)
		refRepo := new(MockRefRepository)
		data := RemoteCustomer{CustomerID: "7", FirstName: "Jane", LastName: "Doe"}

		// First call misses and creates, second call finds the link.
		created, err := party.NewParty("Jane Doe")
		require.NoError(t, err)
		ref, err := party.NewRemoteCustomerRef(ch.ID, created.ID, "7")
		require.NoError(t, err)

		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(nil, shared.ErrNotFound).Once()
		partyRepo.On("Save", ctx, mock.AnythingOfType("*party.Party")).Return(nil).Once()
		refRepo.On("Save", ctx, mock.AnythingOfType("*party.RemoteCustomerRef")).Return(nil).Once()
		refRepo.On("FindByChannelAndRemoteID", ctx, ch.ID, "7").Return(ref, nil)
		partyRepo.On("FindByID", ctx, created.ID).Return(created, nil)

		r := NewPartyReconciler(partyRepo, refRepo, new(MockContactRepository), new(MockCustomerAPI), nil)

		first, err := r.FindOrCreateFromRemoteData(ctx, ch, data)
		require.NoError(t, err)
		second, err := r.FindOrCreateFromRemoteData(ctx, ch, data)
		require.NoError(t, err)

		assert.Equal(t, created.ID, second.ID)
		assert.NotNil(t, first)
	})

	t.Run("fails fast without channel", func(t *testing.T) {
		r := NewPartyReconciler(new(MockPartyRepository), new(MockRefRepository), new(MockContactRepository), new(MockCustomerAPI), nil)

		_, err := r.FindOrCreateFromRemoteData(ctx, nil, RemoteCustomer{CustomerID: "7"})

		assert.ErrorIs(t, err, party.ErrChannelRequired)
	})
}
