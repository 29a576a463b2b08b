package ecommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appsync "github.com/erp/partysync/internal/application/sync"
	"github.com/erp/partysync/internal/domain/channel"
)

// maxMagentoResponseSize limits the response body size to prevent memory exhaustion
const maxMagentoResponseSize = 10 * 1024 * 1024 // 10MB max response

// MagentoAdapter implements the CustomerAPI port against the Magento
// REST API. Credentials and the base URL come from the channel, so one
// adapter serves any number of Magento channels.
type MagentoAdapter struct {
	config     *MagentoConfig
	httpClient *http.Client
}

// NewMagentoAdapter creates a new Magento adapter with the given configuration
func NewMagentoAdapter(config *MagentoConfig) (*MagentoAdapter, error) {
	if config == nil {
		config = DefaultMagentoConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &MagentoAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// FetchCustomer retrieves a customer record from the channel's Magento
// instance by its remote id.
func (a *MagentoAdapter) FetchCustomer(ctx context.Context, ch *channel.Channel, remoteID string) (*appsync.RemoteCustomer, error) {
	if ch == nil || ch.APIURL == "" || ch.APIKey == "" {
		return nil, ErrChannelNotConfigured
	}

	body, err := a.doRequest(ctx, ch, "/rest/V1/customers/"+url.PathEscape(remoteID))
	if err != nil {
		return nil, err
	}

	var payload magentoCustomerResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("magento: failed to decode customer response: %w", err)
	}

	return &appsync.RemoteCustomer{
		CustomerID: strconv.FormatInt(payload.ID, 10),
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Email:      payload.Email,
	}, nil
}

// doRequest performs an authenticated GET against a channel's Magento API
func (a *MagentoAdapter) doRequest(ctx context.Context, ch *channel.Channel, path string) ([]byte, error) {
	requestURL := strings.TrimRight(ch.APIURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("magento: failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+ch.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMagentoResponseSize))
	if err != nil {
		return nil, fmt.Errorf("magento: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrCustomerNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr magentoErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: HTTP %d: %s", ErrPlatformRequestFailed, resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", ErrPlatformRequestFailed, resp.StatusCode)
	}

	return body, nil
}

// Ensure MagentoAdapter implements CustomerAPI
var _ appsync.CustomerAPI = (*MagentoAdapter)(nil)
