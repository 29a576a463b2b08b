package party

import (
	"strings"

	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// Party represents a customer in the ERP party subsystem. It is the
// aggregate root for reconciliation: contact mechanisms, addresses and
// remote customer refs all hang off a party by composition.
//
// Parties created by the sync are never updated in place; reconciliation
// is find-or-create, not find-or-update.
type Party struct {
	shared.BaseAggregateRoot
	Name string

	// Loaded collections. Repositories populate these on read; they are
	// not written back through the party itself.
	ContactMechanisms []ContactMechanism
	Addresses         []Address
	RemoteRefs        []RemoteCustomerRef
}

// NewParty creates a new party with the given display name.
// An empty name is allowed: remote platforms ship blank guest records.
func NewParty(name string) (*Party, error) {
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Party name cannot exceed 200 characters")
	}

	p := &Party{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}

	p.AddDomainEvent(NewPartyCreatedEvent(p))

	return p, nil
}

// FullName joins first and last name with a single space, dropping
// empty parts. FullName("", "Lee") == "Lee".
func FullName(firstName, lastName string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{firstName, lastName} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// HasContact reports whether the party already carries a contact
// mechanism with the exact type and value.
func (p *Party) HasContact(contactType ContactType, value string) bool {
	for _, cm := range p.ContactMechanisms {
		if cm.Type == contactType && cm.Value == value {
			return true
		}
	}
	return false
}

// HasPhoneNumber reports whether the party already carries the given
// number as a phone or mobile contact. Both types count: the remote
// platform does not distinguish landline from mobile.
func (p *Party) HasPhoneNumber(value string) bool {
	for _, cm := range p.ContactMechanisms {
		if (cm.Type == ContactTypePhone || cm.Type == ContactTypeMobile) && cm.Value == value {
			return true
		}
	}
	return false
}

// RefForChannel returns the remote customer ref for the given channel,
// or nil if the party has not been synced to that channel.
func (p *Party) RefForChannel(channelID uuid.UUID) *RemoteCustomerRef {
	for i := range p.RemoteRefs {
		if p.RemoteRefs[i].ChannelID == channelID {
			return &p.RemoteRefs[i]
		}
	}
	return nil
}
