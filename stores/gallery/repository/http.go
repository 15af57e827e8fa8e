package repository

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/base/metrics"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

const (
	pathBurnedIds = "/api/burned-opepen-ids"
	pathMetadata  = "/api/opepen-metadata"
)

type HttpRepoCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// BaseUrl is where the two api endpoints are served, e.g. http://localhost:8080
	BaseUrl string
}

type httpRepo struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
	met     metrics.Service
}

// NewHttpRepo reads through the public api endpoints. A non-2xx answer becomes an
// *opepen.APIError carrying the decoded error body.
func NewHttpRepo(cfg *HttpRepoCfg) opepen.GalleryRepo {
	return &httpRepo{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
		met:     metrics.New("gallery"),
	}
}

func (r *httpRepo) GetBurnedIds(c ctx.Ctx) (*opepen.BurnedIds, error) {
	data, err := r.get(c, pathBurnedIds, nil)
	if err != nil {
		return nil, err
	}
	res := &opepen.BurnedIds{}
	if err := json.Unmarshal(data, res); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if res.BurnedIds == nil {
		res.BurnedIds = []string{}
	}
	return res, nil
}

func (r *httpRepo) GetMetadata(c ctx.Ctx, ids []string) (*opepen.MetadataSet, error) {
	data, err := r.get(c, pathMetadata, url.Values{"ids": {strings.Join(ids, ",")}})
	if err != nil {
		return nil, err
	}
	res := opepen.NewMetadataSet()
	if err := json.Unmarshal(data, res); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return res, nil
}

func (r *httpRepo) get(c ctx.Ctx, path string, query url.Values) ([]byte, error) {
	defer r.met.BumpTime("latency", "path", path).End()

	c, cancel := ctx.WithTimeout(c, r.timeout)
	defer cancel()

	u := r.baseUrl + path
	if len(query) > 0 {
		u = fmt.Sprintf("%s?%s", u, query.Encode())
	}
	req, err := http.NewRequestWithContext(c, http.MethodGet, u, nil)
	if err != nil {
		c.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		c.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.WithFields(log.Fields{
			"url":        u,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode is not 2xx")
		apiErr := &opepen.APIError{StatusCode: resp.StatusCode}
		json.Unmarshal(data, &apiErr.Body)
		return nil, apiErr
	}
	return data, nil
}
