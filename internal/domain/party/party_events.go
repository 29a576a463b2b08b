package party

import (
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// Event type constants
const (
	EventTypePartyCreated   = "party.created"
	EventTypePartyLinked    = "party.linked_to_channel"
	EventTypeAddressCreated = "party.address_created"
)

// PartyCreatedEvent is raised when a new party is created from remote data
type PartyCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewPartyCreatedEvent creates a new PartyCreatedEvent
func NewPartyCreatedEvent(p *Party) *PartyCreatedEvent {
	return &PartyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartyCreated, "Party", p.ID),
		Name:            p.Name,
	}
}

// PartyLinkedEvent is raised when a party gains a remote customer ref
// for a channel
type PartyLinkedEvent struct {
	shared.BaseDomainEvent
	ChannelID uuid.UUID `json:"channel_id"`
	RemoteID  string    `json:"remote_id"`
}

// NewPartyLinkedEvent creates a new PartyLinkedEvent
func NewPartyLinkedEvent(ref *RemoteCustomerRef) *PartyLinkedEvent {
	return &PartyLinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartyLinked, "Party", ref.PartyID),
		ChannelID:       ref.ChannelID,
		RemoteID:        ref.RemoteID,
	}
}

// AddressCreatedEvent is raised when address reconciliation creates a
// new address for a party
type AddressCreatedEvent struct {
	shared.BaseDomainEvent
	AddressID uuid.UUID `json:"address_id"`
	City      string    `json:"city"`
}

// NewAddressCreatedEvent creates a new AddressCreatedEvent
func NewAddressCreatedEvent(a *Address) *AddressCreatedEvent {
	return &AddressCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAddressCreated, "Party", a.PartyID),
		AddressID:       a.ID,
		City:            a.City,
	}
}
