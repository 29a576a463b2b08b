package party

import (
	"context"

	"github.com/google/uuid"
)

// PartyRepository defines the interface for party persistence
type PartyRepository interface {
	// FindByID finds a party by its ID, with contact mechanisms,
	// addresses and remote refs loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)

	// Save creates a party
	Save(ctx context.Context, p *Party) error
}

// RemoteCustomerRefRepository defines the interface for remote customer
// ref persistence
type RemoteCustomerRefRepository interface {
	// FindByChannelAndRemoteID finds the ref for a (channel, remote id)
	// pair. Returns shared.ErrNotFound on miss and ErrAmbiguousRemoteRef
	// when more than one ref matches.
	FindByChannelAndRemoteID(ctx context.Context, channelID uuid.UUID, remoteID string) (*RemoteCustomerRef, error)

	// Save creates a ref. Returns ErrDuplicatePartyInChannel when a
	// non-guest ref with the same (channel, remote id) already exists.
	Save(ctx context.Context, ref *RemoteCustomerRef) error
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// FindByParty returns the party's addresses in stored order
	FindByParty(ctx context.Context, partyID uuid.UUID) ([]Address, error)

	// Save creates an address
	Save(ctx context.Context, a *Address) error
}

// ContactMechanismRepository defines the interface for contact
// mechanism persistence
type ContactMechanismRepository interface {
	// FindByParty returns the party's contact mechanisms
	FindByParty(ctx context.Context, partyID uuid.UUID) ([]ContactMechanism, error)

	// ExistsPhoneNumber reports whether the party already has a phone or
	// mobile contact with the exact value
	ExistsPhoneNumber(ctx context.Context, partyID uuid.UUID, value string) (bool, error)

	// Save creates a contact mechanism
	Save(ctx context.Context, cm *ContactMechanism) error
}
