package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	// another stuff , may be needed by middleware
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// AddContext puts a ctx.Ctx tagged with the request id under "ctx". It is bound to the
// request's context so a client hanging up cancels upstream calls.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.From(c.Request().Context()), ctx.KeyRequestID, c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":             time.Since(start).Seconds() * 1000,
				"httpStatus":     res.Status,
				"host":           req.Host,
				"remoteIP":       c.RealIP(),
				"uri":            req.URL.Path,
				"query":          req.URL.RawQuery,
				"httpMethod":     req.Method,
				"size":           res.Size,
				"userAgent":      req.UserAgent(),
				"acceptEncoding": req.Header.Get("Accept-Encoding"),
				"referer":        req.Header.Get("Referer"),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
				met.BumpSum("request.err", 1, "path", c.Path(), "status", strconv.Itoa(res.Status))
			}

			logger := log.Log()
			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cont.Logger
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}
