package usecase

import (
	"github.com/opepen-graveyard/goapi/base/ctx"
	hcdomain "github.com/opepen-graveyard/goapi/domain/healthcheck"
)

type impl struct {
	repo      hcdomain.HealthCheckRepo
	upstreams map[string]bool
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface.
// upstreams maps an upstream name to whether its credential is configured.
func New(repo hcdomain.HealthCheckRepo, upstreams map[string]bool) hcdomain.HealthCheckUsecase {
	copied := map[string]bool{}
	for k, v := range upstreams {
		copied[k] = v
	}
	return &impl{
		repo:      repo,
		upstreams: copied,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	if err := im.repo.PingCache(context); err != nil {
		return nil, err
	}
	return &hcdomain.Status{
		Healthy:   "ok",
		Upstreams: im.upstreams,
	}, nil
}
