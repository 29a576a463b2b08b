package handler

import (
	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChannelHandler handles channel management endpoints
type ChannelHandler struct {
	BaseHandler
	channels channel.Repository
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(channels channel.Repository) *ChannelHandler {
	return &ChannelHandler{channels: channels}
}

// CreateChannelRequest represents a request to register a sales channel
type CreateChannelRequest struct {
	Code    string `json:"code" binding:"required,min=2,max=50"`
	Name    string `json:"name" binding:"max=200"`
	APIURL  string `json:"api_url" binding:"required,url,max=500"`
	APIUser string `json:"api_user" binding:"max=100"`
	APIKey  string `json:"api_key" binding:"max=200"`
}

// ChannelResponse is the API shape of a channel. Credentials are never echoed.
type ChannelResponse struct {
	ID      uuid.UUID `json:"id"`
	Code    string    `json:"code"`
	Name    string    `json:"name"`
	APIURL  string    `json:"api_url"`
	Enabled bool      `json:"enabled"`
}

// RegisterRoutes registers the channel management routes
func (h *ChannelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	channels := rg.Group("/channels")
	{
		channels.POST("", h.Create)
		channels.GET("/:code", h.Get)
	}
}

// Create handles POST /channels
func (h *ChannelHandler) Create(c *gin.Context) {
	var req CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ch, err := channel.NewChannel(req.Code, req.Name, req.APIURL, req.APIUser, req.APIKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.channels.Save(c.Request.Context(), ch); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toChannelResponse(ch))
}

// Get handles GET /channels/:code
func (h *ChannelHandler) Get(c *gin.Context) {
	var uri ChannelURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ch, err := h.channels.FindByCode(c.Request.Context(), uri.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toChannelResponse(ch))
}

func toChannelResponse(ch *channel.Channel) ChannelResponse {
	return ChannelResponse{
		ID:      ch.ID,
		Code:    ch.Code,
		Name:    ch.Name,
		APIURL:  ch.APIURL,
		Enabled: ch.Enabled,
	}
}
