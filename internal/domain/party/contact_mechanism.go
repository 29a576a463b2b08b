package party

import (
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactType represents the kind of contact mechanism
type ContactType string

const (
	ContactTypeEmail  ContactType = "email"
	ContactTypePhone  ContactType = "phone"
	ContactTypeMobile ContactType = "mobile"
)

// IsValid returns true if the contact type is valid
func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypeEmail, ContactTypePhone, ContactTypeMobile:
		return true
	default:
		return false
	}
}

// String returns the string representation of ContactType
func (t ContactType) String() string {
	return string(t)
}

// ContactMechanism is a typed contact value attached to a party.
// The sync creates at most one mechanism per (party, type, value) triple.
type ContactMechanism struct {
	shared.BaseEntity
	PartyID uuid.UUID
	Type    ContactType
	Value   string
}

// NewContactMechanism creates a contact mechanism for a party
func NewContactMechanism(partyID uuid.UUID, contactType ContactType, value string) (*ContactMechanism, error) {
	if partyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTY", "Contact mechanism requires a party")
	}
	if !contactType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTACT_TYPE", "Contact type must be email, phone or mobile")
	}
	if value == "" {
		return nil, shared.NewDomainError("INVALID_CONTACT_VALUE", "Contact value cannot be empty")
	}

	return &ContactMechanism{
		BaseEntity: shared.NewBaseEntity(),
		PartyID:    partyID,
		Type:       contactType,
		Value:      value,
	}, nil
}

// NewEmailContact creates an email contact mechanism
func NewEmailContact(partyID uuid.UUID, value string) (*ContactMechanism, error) {
	return NewContactMechanism(partyID, ContactTypeEmail, value)
}

// NewPhoneContact creates a phone contact mechanism
func NewPhoneContact(partyID uuid.UUID, value string) (*ContactMechanism, error) {
	return NewContactMechanism(partyID, ContactTypePhone, value)
}
