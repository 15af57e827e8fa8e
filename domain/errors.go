package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrConfiguration will throw if a collaborator is missing required settings
	ErrConfiguration = errors.New("configuration error")
	// ErrTransport will throw if an upstream answers with a non-2xx status
	ErrTransport = errors.New("transport error")
	// ErrUpstream will throw if an upstream reports a logical failure in its payload
	ErrUpstream = errors.New("upstream error")
	// ErrUnexpectedResponse will throw if an upstream payload has an unknown shape
	ErrUnexpectedResponse = errors.New("unexpected response structure")

	ErrInvalidAddress = errors.New("Invalid address")
)

// ConfigurationError reports a missing or invalid setting, e.g. an absent API key.
type ConfigurationError struct {
	Setting string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// TransportError reports a non-2xx answer from an upstream.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

// UpstreamError carries the failure message an upstream put in a 2xx payload.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// ValidationError reports a missing or malformed request parameter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrBadParamInput
}

// NotFoundError reports that nothing usable was resolved.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
