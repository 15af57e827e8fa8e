package usecase

import (
	"errors"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/domain"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

const (
	msgBurnedIdsFailed = "Failed to fetch burned Opepen IDs"
	msgNoBurnedIds     = "No burned Opepen IDs found"
	msgMetadataFailed  = "Failed to fetch metadata"
)

type GalleryUseCaseCfg struct {
	Repo   opepen.GalleryRepo
	Supply int
}

type galleryUseCase struct {
	repo   opepen.GalleryRepo
	supply int
}

func NewGalleryUseCase(cfg *GalleryUseCaseCfg) opepen.GalleryUseCase {
	supply := cfg.Supply
	if supply <= 0 {
		supply = opepen.Supply
	}
	return &galleryUseCase{
		repo:   cfg.Repo,
		supply: supply,
	}
}

// Load walks loading -> error | ready. It never fails, failures end up in the gallery's error state.
func (u *galleryUseCase) Load(c ctx.Ctx) *opepen.Gallery {
	g := &opepen.Gallery{
		State:  opepen.StateLoading,
		Supply: u.supply,
		Tokens: []opepen.TokenMetadata{},
		Groups: []opepen.Group{},
	}

	burned, err := u.repo.GetBurnedIds(c)
	if err != nil {
		c.WithField("err", err).Error("repo.GetBurnedIds failed")
		return g.Fail(burnedIdsMessage(err))
	}
	g.Total = burned.Total
	if len(burned.BurnedIds) == 0 {
		return g.Fail(msgNoBurnedIds)
	}

	set, err := u.repo.GetMetadata(c, burned.BurnedIds)
	if err != nil {
		c.WithFields(log.Fields{
			"ids": len(burned.BurnedIds),
			"err": err,
		}).Error("repo.GetMetadata failed")
		return g.Fail(msgMetadataFailed)
	}

	g.Tokens = set.Tokens()
	g.Groups = SortGroups(GroupTokens(g.Tokens))
	g.State = opepen.StateReady
	return g
}

// burnedIdsMessage surfaces the error an endpoint reported, if any
func burnedIdsMessage(err error) string {
	var apiErr *opepen.APIError
	if errors.As(err, &apiErr) && apiErr.Body.Error != "" {
		return apiErr.Body.Error
	}
	var confErr *domain.ConfigurationError
	if errors.As(err, &confErr) {
		return confErr.Message
	}
	return msgBurnedIdsFailed
}
