package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/base/log"
	"github.com/opepen-graveyard/goapi/domain/keys"
	"github.com/opepen-graveyard/goapi/service/cache"
	"github.com/opepen-graveyard/goapi/service/cache/provider"
	"github.com/opepen-graveyard/goapi/service/cache/provider/primitive"
)

// HeaderXCache tells whether a response was served from the cache
const HeaderXCache = "X-Cache"

var (
	cacheMiddlewareLocalCache provider.Provider

	once = sync.Once{}
)

// SetupCache allocates the in-process response cache, only the first call has an effect
func SetupCache(sizeMB int) {
	once.Do(func() {
		cacheMiddlewareLocalCache = primitive.NewPrimitive(keys.PfxHttpCache, sizeMB)
	})
}

// Response is the cached response data structure.
type Response struct {
	// Value is the cached response value.
	Value []byte

	// Header is the cached response header.
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Strings(param)
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves 2xx GET responses from the local cache for ttl
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if cacheMiddlewareLocalCache == nil {
		panic("need SetupCache before using CacheHttp")
	}

	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxHttpCache,
		Cache: cacheMiddlewareLocalCache,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			err := cacheService.Get(ctx, key, &response)
			if err == nil {
				// cache hit
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().Header().Set(HeaderXCache, "HIT")
				c.Response().WriteHeader(http.StatusOK)
				c.Response().Write(response.Value)
				return nil
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to cacheService.Get")
			}

			// cache miss
			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{Writer: mw, ResponseWriter: c.Response().Writer}
			c.Response().Writer = writer
			c.Response().Header().Set(HeaderXCache, "MISS")
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode >= 200 && writer.statusCode < 300 {
				response := Response{
					Value:  resBody.Bytes(),
					Header: writer.Header().Clone(),
				}
				response.Header.Del(HeaderXCache)
				response.Header.Del(echo.HeaderXRequestID)
				response.Header.Del(echo.HeaderContentEncoding)
				response.Header.Del(echo.HeaderContentLength)

				if err := cacheService.Set(ctx, key, response); err != nil {
					ctx.WithFields(log.Fields{
						"err": err,
						"key": key,
					}).Warn("failed to cacheService.Set")
				}
			}

			return nil
		}
	}
}
