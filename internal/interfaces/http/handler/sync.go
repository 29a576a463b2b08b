package handler

import (
	appsync "github.com/erp/partysync/internal/application/sync"
	"github.com/erp/partysync/internal/domain/channel"
	"github.com/erp/partysync/internal/domain/party"
	"github.com/erp/partysync/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SyncHandler handles inbound customer and address webhooks
type SyncHandler struct {
	BaseHandler
	importService *appsync.ImportService
	channels      channel.Repository
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(importService *appsync.ImportService, channels channel.Repository) *SyncHandler {
	return &SyncHandler{
		importService: importService,
		channels:      channels,
	}
}

// ChannelURI binds the channel code path parameter
type ChannelURI struct {
	Code string `uri:"code" binding:"required,min=2,max=50"`
}

// AddressPayload represents one address in a webhook body
type AddressPayload struct {
	FirstName   string `json:"firstname" binding:"max=100"`
	LastName    string `json:"lastname" binding:"max=100"`
	Street      string `json:"street" binding:"max=500"`
	City        string `json:"city" binding:"max=100"`
	Postcode    string `json:"postcode" binding:"max=20"`
	CountryCode string `json:"country_id" binding:"omitempty,len=2"`
	Region      string `json:"region" binding:"max=100"`
	Telephone   string `json:"telephone" binding:"max=50"`
}

// ImportCustomerRequest represents a customer webhook body
type ImportCustomerRequest struct {
	CustomerID string           `json:"customer_id" binding:"required,max=100"`
	FirstName  string           `json:"firstname" binding:"max=100"`
	LastName   string           `json:"lastname" binding:"max=100"`
	Email      string           `json:"email" binding:"omitempty,email,max=200"`
	Addresses  []AddressPayload `json:"addresses" binding:"dive"`
}

// ImportOrderAddressesRequest represents an order webhook body carrying
// the customer reference and its billing/shipping addresses.
type ImportOrderAddressesRequest struct {
	CustomerID string           `json:"customer_id" binding:"required,max=100"`
	FirstName  string           `json:"firstname" binding:"max=100"`
	LastName   string           `json:"lastname" binding:"max=100"`
	Email      string           `json:"email" binding:"omitempty,email,max=200"`
	Addresses  []AddressPayload `json:"addresses" binding:"required,min=1,dive"`
}

// PartyResponse is the API shape of a resolved party
type PartyResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	CreatedParty     bool              `json:"created_party"`
	CreatedAddresses int               `json:"created_addresses"`
	Addresses        []AddressResponse `json:"addresses,omitempty"`
}

// AddressResponse is the API shape of a reconciled address
type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Street    string    `json:"street"`
	StreetBis string    `json:"street_bis,omitempty"`
	Zip       string    `json:"zip"`
	City      string    `json:"city"`
}

// RegisterRoutes registers the webhook routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	channels := rg.Group("/channels/:code")
	{
		channels.POST("/customers", h.ImportCustomer)
		channels.POST("/orders/addresses", h.ImportOrderAddresses)
	}
}

// ImportCustomer handles POST /channels/:code/customers
func (h *SyncHandler) ImportCustomer(c *gin.Context) {
	ch, ok := h.resolveChannel(c)
	if !ok {
		return
	}

	var req ImportCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.importService.ImportCustomer(c.Request.Context(), ch,
		toRemoteCustomer(req.CustomerID, req.FirstName, req.LastName, req.Email),
		toRemoteAddresses(req.Addresses),
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toPartyResponse(result))
}

// ImportOrderAddresses handles POST /channels/:code/orders/addresses
func (h *SyncHandler) ImportOrderAddresses(c *gin.Context) {
	ch, ok := h.resolveChannel(c)
	if !ok {
		return
	}

	var req ImportOrderAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.importService.ImportCustomer(c.Request.Context(), ch,
		toRemoteCustomer(req.CustomerID, req.FirstName, req.LastName, req.Email),
		toRemoteAddresses(req.Addresses),
	)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPartyResponse(result))
}

// resolveChannel binds the :code parameter and loads the channel
func (h *SyncHandler) resolveChannel(c *gin.Context) (*channel.Channel, bool) {
	var uri ChannelURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, err.Error())
		return nil, false
	}

	ch, err := h.channels.FindByCode(c.Request.Context(), uri.Code)
	if err != nil {
		h.HandleError(c, err)
		return nil, false
	}
	return ch, true
}

func toRemoteCustomer(id, first, last, email string) appsync.RemoteCustomer {
	return appsync.RemoteCustomer{
		CustomerID: id,
		FirstName:  first,
		LastName:   last,
		Email:      email,
	}
}

func toRemoteAddresses(payloads []AddressPayload) []appsync.RemoteAddress {
	addresses := make([]appsync.RemoteAddress, len(payloads))
	for i, p := range payloads {
		addresses[i] = appsync.RemoteAddress{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Street:      p.Street,
			City:        p.City,
			Postcode:    p.Postcode,
			CountryCode: p.CountryCode,
			Region:      p.Region,
			Telephone:   p.Telephone,
		}
	}
	return addresses
}

func toPartyResponse(result *appsync.ImportResult) PartyResponse {
	resp := PartyResponse{
		ID:               result.Party.ID,
		Name:             result.Party.Name,
		CreatedParty:     result.CreatedParty,
		CreatedAddresses: result.CreatedAddresses,
	}
	for _, a := range result.Addresses {
		resp.Addresses = append(resp.Addresses, toAddressResponse(a))
	}
	return resp
}

func toAddressResponse(a party.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		Name:      a.Name,
		Street:    a.Street,
		StreetBis: a.StreetBis,
		Zip:       a.Zip,
		City:      a.City,
	}
}
