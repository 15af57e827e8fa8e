package alchemy

import (
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain"
)

// MaxBatchSize is the most tokens getNFTMetadataBatch accepts per call
const MaxBatchSize = 100

type Client interface {
	// GetNFTMetadataBatch returns the raw items of one getNFTMetadataBatch call
	GetNFTMetadataBatch(ctx bCtx.Ctx, tokens []TokenRef) ([]json.RawMessage, error)
}

type ClientCfg struct {
	HttpClient http.Client
	// Timeout bounds each request, zero leaves it to HttpClient
	Timeout  time.Duration
	Apikey   string
	Endpoint string
}

type TokenRef struct {
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         string         `json:"tokenId"`
}

type MetadataBatchReq struct {
	Tokens []TokenRef `json:"tokens"`
}
