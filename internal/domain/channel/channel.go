package channel

import (
	"context"
	"strings"

	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// Channel is a configured sales channel: one e-commerce storefront with
// its own API credentials and its own remote customer id space. All
// reconciliation is scoped to a channel.
type Channel struct {
	shared.BaseEntity
	Code    string
	Name    string
	APIURL  string
	APIUser string
	APIKey  string
	Enabled bool
}

// NewChannel creates a new sales channel
func NewChannel(code, name, apiURL, apiUser, apiKey string) (*Channel, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Channel name cannot be empty")
	}
	if apiURL == "" {
		return nil, shared.NewDomainError("INVALID_API_URL", "Channel API URL cannot be empty")
	}

	return &Channel{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		Name:       name,
		APIURL:     apiURL,
		APIUser:    apiUser,
		APIKey:     apiKey,
		Enabled:    true,
	}, nil
}

// Disable turns the channel off for ingestion
func (c *Channel) Disable() {
	c.Enabled = false
}

// Enable turns the channel on for ingestion
func (c *Channel) Enable() {
	c.Enabled = true
}

// Repository defines the interface for channel persistence
type Repository interface {
	// FindByID finds a channel by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Channel, error)

	// FindByCode finds a channel by its code
	FindByCode(ctx context.Context, code string) (*Channel, error)

	// Save creates or updates a channel
	Save(ctx context.Context, c *Channel) error
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Channel code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Channel code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Channel code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
