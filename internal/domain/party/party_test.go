package party

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParty(t *testing.T) {
	t.Run("creates party with name", func(t *testing.T) {
		p, err := NewParty("Jane Doe")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", p.Name)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Len(t, p.GetDomainEvents(), 1)
		assert.Equal(t, EventTypePartyCreated, p.GetDomainEvents()[0].EventType())
	})

	t.Run("allows empty name for blank remote records", func(t *testing.T) {
		p, err := NewParty("")

		require.NoError(t, err)
		assert.Equal(t, "", p.Name)
	})

	t.Run("fails when name too long", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}

		p, err := NewParty(string(long))

		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"joins both parts", "Jane", "Doe", "Jane Doe"},
		{"drops empty first name", "", "Lee", "Lee"},
		{"drops empty last name", "Jane", "", "Jane"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.firstName, tt.lastName))
		})
	}
}

func TestPartyHasContact(t *testing.T) {
	p, err := NewParty("Jane Doe")
	require.NoError(t, err)

	email, err := NewEmailContact(p.ID, "jane@x.com")
	require.NoError(t, err)
	phone, err := NewPhoneContact(p.ID, "555-0100")
	require.NoError(t, err)
	p.ContactMechanisms = []ContactMechanism{*email, *phone}

	t.Run("matches on exact type and value", func(t *testing.T) {
		assert.True(t, p.HasContact(ContactTypeEmail, "jane@x.com"))
		assert.False(t, p.HasContact(ContactTypeEmail, "other@x.com"))
		assert.False(t, p.HasContact(ContactTypePhone, "jane@x.com"))
	})

	t.Run("phone number match covers phone and mobile", func(t *testing.T) {
		mobile, err := NewContactMechanism(p.ID, ContactTypeMobile, "555-0199")
		require.NoError(t, err)
		p.ContactMechanisms = append(p.ContactMechanisms, *mobile)

		assert.True(t, p.HasPhoneNumber("555-0100"))
		assert.True(t, p.HasPhoneNumber("555-0199"))
		assert.False(t, p.HasPhoneNumber("555-0000"))
	})
}

func TestNewContactMechanism(t *testing.T) {
	t.Run("fails with invalid type", func(t *testing.T) {
		_, err := NewContactMechanism(uuid.New(), ContactType("fax"), "12345")
		assert.Error(t, err)
	})

	t.Run("fails with empty value", func(t *testing.T) {
		_, err := NewEmailContact(uuid.New(), "")
		assert.Error(t, err)
	})

	t.Run("fails without party", func(t *testing.T) {
		_, err := NewPhoneContact(uuid.Nil, "555-0100")
		assert.Error(t, err)
	})
}

func TestRefForChannel(t *testing.T) {
	p, err := NewParty("Jane Doe")
	require.NoError(t, err)

	chA := uuid.New()
	chB := uuid.New()
	ref, err := NewRemoteCustomerRef(chA, p.ID, "7")
	require.NoError(t, err)
	p.RemoteRefs = []RemoteCustomerRef{*ref}

	assert.NotNil(t, p.RefForChannel(chA))
	assert.Equal(t, "7", p.RefForChannel(chA).RemoteID)
	assert.Nil(t, p.RefForChannel(chB))
}
