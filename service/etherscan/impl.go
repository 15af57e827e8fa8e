package etherscan

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	bCtx "github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/base/metrics"
	"github.com/opepen-graveyard/goapi/domain"
	"golang.org/x/xerrors"
)

const (
	DefaultEndpoint = "https://api.etherscan.io/api"

	msgMissingApiKey = "Etherscan API key is not configured"
	msgDefaultFailed = "Failed to fetch data from Etherscan"
)

// NewClient fails with a *domain.ConfigurationError when no api key is given
func NewClient(cfg *ClientCfg) (Client, error) {
	if cfg.Apikey == "" {
		return nil, &domain.ConfigurationError{Setting: "etherscan.apiKey", Message: msgMissingApiKey}
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
		met:      metrics.New("etherscan"),
	}, nil
}

type client struct {
	client   http.Client
	timeout  time.Duration
	apikey   string
	endpoint string
	met      metrics.Service
}

func (c *client) GetNftTransfers(ctx bCtx.Ctx, contract domain.Address, sort SortOrder) ([]NftTransfer, error) {
	params := url.Values{}
	params.Add("module", "account")
	params.Add("action", "tokennfttx")
	params.Add("contractaddress", contract.ToLowerStr())
	params.Add("sort", string(sort))

	resp, err := c.get(ctx, "tokennfttx", params)
	if err != nil {
		return nil, err
	}

	if resp.Status != StatusOk {
		msg := resp.Message
		if msg == "" {
			msg = msgDefaultFailed
		}
		ctx.WithFields(log.Fields{
			"status":  resp.Status,
			"message": resp.Message,
			"result":  string(resp.Result),
		}).Error("etherscan status != 1")
		return nil, &domain.UpstreamError{Message: msg}
	}

	transfers := []NftTransfer{}
	if err := json.Unmarshal(resp.Result, &transfers); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal result failed")
		return nil, xerrors.Errorf("tokennfttx result: %w", domain.ErrUnexpectedResponse)
	}
	return transfers, nil
}

func (c *client) get(ctx bCtx.Ctx, action string, params url.Values) (*Response, error) {
	defer c.met.BumpTime("latency", "action", action).End()

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	// keep the api key out of logged urls
	logUrl := c.endpoint + "?" + params.Encode()
	params.Set("apikey", c.apikey)
	reqUrl := c.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": logUrl,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": logUrl,
			"err": err,
		}).Error("client.Do failed")
		c.met.BumpSum("err", 1, "action", action)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx.WithFields(log.Fields{
			"url":        logUrl,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode is not 2xx")
		c.met.BumpSum("err", 1, "action", action)
		return nil, &domain.TransportError{StatusCode: resp.StatusCode}
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": logUrl,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	res := &Response{}
	if err := json.Unmarshal(body, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("%s: %w", action, domain.ErrUnexpectedResponse)
	}
	return res, nil
}

// NewUnavailableClient answers every call with err. It stands in for a client whose
// construction failed so the endpoint can still report the failure.
func NewUnavailableClient(err error) Client {
	return &unavailable{err: err}
}

type unavailable struct {
	err error
}

func (u *unavailable) GetNftTransfers(ctx bCtx.Ctx, contract domain.Address, sort SortOrder) ([]NftTransfer, error) {
	return nil, u.err
}
