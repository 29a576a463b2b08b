package party

import (
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// GuestRemoteID is the sentinel remote customer id used by the platform
// for anonymous/guest checkouts. Guest refs are exempt from the
// unique-per-channel invariant and may repeat within a channel.
const GuestRemoteID = "0"

// RemoteCustomerRef links a local party to the customer id it carries on
// one sales channel. A party gains one ref per channel it was synced
// from. Refs are created once and never mutated or deleted by the sync.
//
// Invariant: within a channel, RemoteID is unique among non-guest refs.
type RemoteCustomerRef struct {
	shared.BaseEntity
	RemoteID  string
	ChannelID uuid.UUID
	PartyID   uuid.UUID
}

// NewRemoteCustomerRef creates a remote customer ref linking a party to
// its channel-scoped remote id
func NewRemoteCustomerRef(channelID, partyID uuid.UUID, remoteID string) (*RemoteCustomerRef, error) {
	if channelID == uuid.Nil {
		return nil, ErrChannelRequired
	}
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Remote ref requires a party")
	}
	if remoteID == "" {
		return nil, shared.NewDomainError("INVALID_REMOTE_ID", "Remote customer id cannot be empty")
	}

	return &RemoteCustomerRef{
		BaseEntity: shared.NewBaseEntity(),
		RemoteID:   remoteID,
		ChannelID:  channelID,
		PartyID:    partyID,
	}, nil
}

// IsGuest returns true when the ref represents an anonymous checkout
func (r *RemoteCustomerRef) IsGuest() bool {
	return r.RemoteID == GuestRemoteID
}
