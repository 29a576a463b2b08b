package models

import (
	"time"

	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/domain/shared"
	"github.com/google/uuid"
)

// ChannelModel is the persistence model for the Channel domain entity.
type ChannelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_channel_code"`
	Name      string    `gorm:"type:varchar(200);not null;default:''"`
	APIURL    string    `gorm:"type:varchar(500);not null"`
	APIUser   string    `gorm:"type:varchar(100);not null;default:''"`
	APIKey    string    `gorm:"type:varchar(200);not null;default:''"`
	Enabled   bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ChannelModel) TableName() string {
	return "channels"
}

// ToDomain converts the persistence model to a domain Channel entity.
func (m *ChannelModel) ToDomain() *channel.Channel {
	return &channel.Channel{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Code:    m.Code,
		Name:    m.Name,
		APIURL:  m.APIURL,
		APIUser: m.APIUser,
		APIKey:  m.APIKey,
		Enabled: m.Enabled,
	}
}

// FromDomain populates the persistence model from a domain Channel entity.
func (m *ChannelModel) FromDomain(c *channel.Channel) {
	m.ID = c.ID
	m.Code = c.Code
	m.Name = c.Name
	m.APIURL = c.APIURL
	m.APIUser = c.APIUser
	m.APIKey = c.APIKey
	m.Enabled = c.Enabled
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
