package alchemy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/base/metrics"
	"github.com/opepen-graveyard/goapi/domain"
	"golang.org/x/xerrors"
)

const (
	DefaultEndpoint = "https://eth-mainnet.g.alchemy.com/v2"

	msgMissingApiKey = "Alchemy API key is not configured"
)

// NewClient fails with a *domain.ConfigurationError when no api key is given
func NewClient(cfg *ClientCfg) (Client, error) {
	if cfg.Apikey == "" {
		return nil, &domain.ConfigurationError{Setting: "alchemy.apiKey", Message: msgMissingApiKey}
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &client{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		apikey:   cfg.Apikey,
		endpoint: endpoint,
		met:      metrics.New("alchemy"),
	}, nil
}

type client struct {
	client   http.Client
	timeout  time.Duration
	apikey   string
	endpoint string
	met      metrics.Service
}

func (c *client) GetNFTMetadataBatch(ctx bCtx.Ctx, tokens []TokenRef) ([]json.RawMessage, error) {
	data, err := c.post(ctx, "getNFTMetadataBatch", MetadataBatchReq{Tokens: tokens})
	if err != nil {
		return nil, err
	}

	items := []json.RawMessage{}
	if err := json.Unmarshal(data, &items); err != nil {
		ctx.WithField("err", err).Error("Unexpected response structure from Alchemy API")
		return nil, xerrors.Errorf("getNFTMetadataBatch: %w", domain.ErrUnexpectedResponse)
	}
	return items, nil
}

func (c *client) post(ctx bCtx.Ctx, method string, payload interface{}) ([]byte, error) {
	defer c.met.BumpTime("latency", "method", method).End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/%s", c.endpoint, c.apikey, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.Do failed")
		c.met.BumpSum("err", 1, "method", method)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx.WithFields(log.Fields{
			"method":     method,
			"statusCode": resp.StatusCode,
			"status":     resp.Status,
		}).Error("resp.StatusCode is not 2xx")
		c.met.BumpSum("err", 1, "method", method)
		return nil, &domain.TransportError{StatusCode: resp.StatusCode}
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}

// NewUnavailableClient answers every call with err. It stands in for a client whose
// construction failed, e.g. because the api key is missing.
func NewUnavailableClient(err error) Client {
	return &unavailable{err}
}

type unavailable struct {
	err error
}

func (u *unavailable) GetNFTMetadataBatch(ctx bCtx.Ctx, tokens []TokenRef) ([]json.RawMessage, error) {
	return nil, u.err
}
