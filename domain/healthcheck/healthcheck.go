package healthcheck

import (
	"github.com/opepen-graveyard/goapi/base/ctx"
)

// Status is the health report. Upstreams tells, per upstream, whether its credential is configured.
type Status struct {
	Healthy   string          `json:"healthy"`
	Upstreams map[string]bool `json:"upstreams"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingCache(context ctx.Ctx) error
}
