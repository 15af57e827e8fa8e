package repository

import (
	"time"

	"github.com/opepen-graveyard/goapi/base/ctx"
	hcdomain "github.com/opepen-graveyard/goapi/domain/healthcheck"
	"github.com/opepen-graveyard/goapi/domain/keys"
	"github.com/opepen-graveyard/goapi/service/cache"
	"github.com/opepen-graveyard/goapi/service/cache/provider"
	"github.com/opepen-graveyard/goapi/service/cache/provider/primitive"
	"golang.org/x/xerrors"
)

const (
	testKey   = "testset"
	testValue = "1"
)

type impl struct {
	cache cache.Service
}

// New creates new healthCheckRepo round-tripping a value through an in-process cache
func New(p provider.Provider) hcdomain.HealthCheckRepo {
	if p == nil {
		p = primitive.NewPrimitive(keys.PfxHealthCheck, 1)
	}
	return &impl{
		cache: cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Second,
			Pfx:   keys.PfxHealthCheck,
			Cache: p,
		}),
	}
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if err := im.cache.Set(context, testKey, testValue); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}

	val := ""
	if err := im.cache.Get(context, testKey, &val); err != nil {
		context.WithField("err", err).Error("test cache get failed")
		return err
	}
	if val != testValue {
		return xerrors.Errorf("cache roundtrip returned %q", val)
	}
	return nil
}
