package etherscan

import (
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain"
)

const (
	// StatusOk is the payload status etherscan reports on success
	StatusOk = "1"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Client interface {
	// GetNftTransfers lists the ERC-721 transfer events of a contract
	GetNftTransfers(ctx bCtx.Ctx, contract domain.Address, sort SortOrder) ([]NftTransfer, error)
}

type ClientCfg struct {
	HttpClient http.Client
	// Timeout bounds each request, zero leaves it to HttpClient
	Timeout  time.Duration
	Apikey   string
	Endpoint string
}

// Response is the envelope of every etherscan answer. Result is an array on
// success and an error string otherwise.
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type NftTransfer struct {
	BlockNumber     string         `json:"blockNumber"`
	TimeStamp       string         `json:"timeStamp"`
	Hash            domain.TxHash  `json:"hash"`
	From            domain.Address `json:"from"`
	ContractAddress domain.Address `json:"contractAddress"`
	To              domain.Address `json:"to"`
	TokenID         string         `json:"tokenID"`
	TokenName       string         `json:"tokenName"`
	TokenSymbol     string         `json:"tokenSymbol"`
}
