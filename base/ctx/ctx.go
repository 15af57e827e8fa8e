package ctx

import (
	"context"
	"time"

	log "github.com/opepen-graveyard/goapi/base/log"
)

// KeyRequestID is the value key holding the echo request id
const KeyRequestID = "requestID"

// Ctx bundles a context with a logger that carries the same values as fields
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. the one attached to an *http.Request
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// WithTimeout bounds parent by timeout. A non-positive timeout only adds cancellation.
func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	if timeout <= 0 {
		return WithCancel(parent)
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}
