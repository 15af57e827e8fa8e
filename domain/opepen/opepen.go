package opepen

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain"
)

const (
	// ContractAddress is the Opepen Edition ERC-721 contract
	ContractAddress = domain.Address("0x6339e5e072086621540d0362c4e3cea0d643e114")
	// Supply is the number of Opepen ever minted
	Supply = 16000
)

// BurnedIds is the deduplicated list of token ids sent to the burn address
type BurnedIds struct {
	BurnedIds []string `json:"burnedIds"`
	Total     int      `json:"total"`
}

// ErrorBody is the JSON envelope every endpoint answers with on failure
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// APIError is a failure answered by one of our own endpoints
type APIError struct {
	StatusCode int
	Body       ErrorBody
}

func (e *APIError) Error() string {
	if e.Body.Error != "" {
		return e.Body.Error
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

const (
	MsgFetchTransfersFailed = "Failed to fetch Opepen transfers"
	MsgInternalServerError  = "Internal Server Error"
)

// BurnedIdsError is what /api/burned-opepen-ids answers for err
func BurnedIdsError(err error) *APIError {
	var confErr *domain.ConfigurationError
	if errors.As(err, &confErr) {
		return &APIError{
			StatusCode: http.StatusInternalServerError,
			Body:       ErrorBody{Error: confErr.Message},
		}
	}
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Body:       ErrorBody{Error: MsgFetchTransfersFailed, Details: err.Error()},
	}
}

// MetadataError is what /api/opepen-metadata answers for err
func MetadataError(err error) *APIError {
	var confErr *domain.ConfigurationError
	switch {
	case errors.As(err, &confErr):
		return &APIError{StatusCode: http.StatusInternalServerError, Body: ErrorBody{Error: confErr.Message}}
	case errors.Is(err, domain.ErrBadParamInput):
		return &APIError{StatusCode: http.StatusBadRequest, Body: ErrorBody{Error: err.Error()}}
	case errors.Is(err, domain.ErrNotFound):
		return &APIError{StatusCode: http.StatusNotFound, Body: ErrorBody{Error: err.Error()}}
	default:
		return &APIError{StatusCode: http.StatusInternalServerError, Body: ErrorBody{Error: MsgInternalServerError}}
	}
}

type BurnUseCase interface {
	GetBurnedIds(ctx.Ctx) (*BurnedIds, error)
}

type MetadataUseCase interface {
	GetMetadata(c ctx.Ctx, ids []string) (*MetadataSet, error)
}

// GalleryRepo is where the gallery reads burned ids and their metadata from
type GalleryRepo interface {
	GetBurnedIds(ctx.Ctx) (*BurnedIds, error)
	GetMetadata(c ctx.Ctx, ids []string) (*MetadataSet, error)
}

type GalleryUseCase interface {
	Load(ctx.Ctx) *Gallery
}
