package usecase

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/opepen-graveyard/goapi/base/backoff"
	bCtx "github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/base/metrics"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
	"github.com/opepen-graveyard/goapi/service/alchemy"
)

const (
	DefaultBatchDelay = time.Second

	msgIdsRequired = "Token IDs are required"
	msgNoMetadata  = "No metadata available for the requested token IDs"
)

type MetadataUseCaseCfg struct {
	Alchemy  alchemy.Client
	Contract domain.Address
	// BatchSize is capped at alchemy.MaxBatchSize, zero means the cap
	BatchSize int
	// BatchDelay is waited before every batch but the first
	BatchDelay time.Duration
}

type metadataUseCase struct {
	alchemy    alchemy.Client
	contract   domain.Address
	batchSize  int
	batchDelay time.Duration
	met        metrics.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) opepen.MetadataUseCase {
	u := &metadataUseCase{
		alchemy:    cfg.Alchemy,
		contract:   cfg.Contract,
		batchSize:  cfg.BatchSize,
		batchDelay: cfg.BatchDelay,
		met:        metrics.New("metadata"),
	}
	if u.contract.IsEmpty() {
		u.contract = opepen.ContractAddress
	}
	if u.batchSize <= 0 || u.batchSize > alchemy.MaxBatchSize {
		u.batchSize = alchemy.MaxBatchSize
	}
	if u.batchDelay < 0 {
		u.batchDelay = 0
	}
	return u
}

func (u *metadataUseCase) GetMetadata(c bCtx.Ctx, ids []string) (*opepen.MetadataSet, error) {
	if len(ids) == 0 {
		return nil, &domain.ValidationError{Message: msgIdsRequired}
	}
	defer u.met.BumpTime("get.time").End()

	requested := map[string]struct{}{}
	for _, id := range ids {
		requested[domain.TokenId(id).Decimal().String()] = struct{}{}
	}

	set := opepen.NewMetadataSet()
	bo := backoff.NewFixed(u.batchDelay)
	for i, batch := range Chunk(ids, u.batchSize) {
		if i > 0 {
			if err := bo.Backoff(c); err != nil {
				c.WithFields(log.Fields{
					"batch": i,
					"err":   err,
				}).Warn("interrupted between batches")
				return nil, err
			}
		}

		items, err := u.alchemy.GetNFTMetadataBatch(c, u.tokenRefs(batch))
		if errors.Is(err, domain.ErrConfiguration) {
			return nil, err
		} else if err != nil {
			c.WithFields(log.Fields{
				"batch": i,
				"size":  len(batch),
				"err":   err,
			}).Error("failed to fetch metadata batch")
			u.met.BumpSum("batch.err", 1)
			continue
		}

		for _, raw := range items {
			u.collect(c, set, requested, raw)
		}
	}

	if set.Len() == 0 {
		return nil, &domain.NotFoundError{Message: msgNoMetadata}
	}
	return set, nil
}

func (u *metadataUseCase) tokenRefs(batch []string) []alchemy.TokenRef {
	refs := make([]alchemy.TokenRef, 0, len(batch))
	for _, id := range batch {
		refs = append(refs, alchemy.TokenRef{ContractAddress: u.contract, TokenId: id})
	}
	return refs
}

func (u *metadataUseCase) collect(c bCtx.Ctx, set *opepen.MetadataSet, requested map[string]struct{}, raw json.RawMessage) {
	e := opepen.Envelope{}
	if err := json.Unmarshal(raw, &e); err != nil {
		c.WithFields(log.Fields{
			"item": string(raw),
			"err":  err,
		}).Warn("malformed metadata item")
		return
	}
	if e.Id.TokenId == "" {
		c.WithField("item", string(raw)).Info("incomplete data for nft")
		return
	}
	id := e.Id.TokenId.Decimal().String()
	if _, ok := requested[id]; !ok {
		c.WithField("tokenId", e.Id.TokenId).Warn("metadata for a token that was not requested")
		return
	}
	set.Put(id, e)
}

// Chunk splits ids into consecutive slices of at most size elements
func Chunk(ids []string, size int) [][]string {
	chunks := [][]string{}
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
