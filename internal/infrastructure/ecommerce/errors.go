package ecommerce

import "errors"

var (
	// ErrPlatformUnavailable indicates the remote platform could not be reached
	ErrPlatformUnavailable = errors.New("ecommerce: platform unavailable")
	// ErrPlatformRequestFailed indicates the platform rejected the request
	ErrPlatformRequestFailed = errors.New("ecommerce: platform request failed")
	// ErrCustomerNotFound indicates the remote customer does not exist
	ErrCustomerNotFound = errors.New("ecommerce: remote customer not found")
	// ErrChannelNotConfigured indicates the channel lacks API credentials
	ErrChannelNotConfigured = errors.New("ecommerce: channel not configured")
)
