package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/metal-toolbox/user-echo/internal/failure"
	"github.com/metal-toolbox/user-echo/internal/metrics"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// requestID tags the request with the caller's id, or a fresh one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func composeAppLogging(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// some evil middlewares modify this values
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		c.Next() // call the next function in the chain
		code := c.Writer.Status()

		// keep label cardinality bounded for unmatched paths
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.APICallEpilog(start, endpoint, code)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status-code", code),
			zap.String("request-id", c.GetString(requestIDKey)),
			zap.Duration("latency", time.Since(start)),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case code >= 500:
			l.Error("errors on API request", fields...)
		case code >= 400:
			l.Warn("rejected API request", fields...)
		default:
			l.Info("api call complete", fields...)
		}
	}
}

// normalizeFailures renders the last failure recorded on the context as the
// error envelope. Server-side failures go to the reporter as well.
func (r *Routes) normalizeFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		f := failure.From(last.Err)
		committed := c.Writer.Written()

		resp, diag := failure.Normalize(f, committed)
		metrics.FailureObserved(f.Kind.String(), f.Status)

		if diag != nil {
			r.reporter.Report(c.Request.Context(), diag)
		}

		switch {
		case resp == nil:
			r.logger.Warn("async request timed out",
				zap.String("path", c.Request.URL.Path),
				zap.String("request-id", c.GetString(requestIDKey)),
			)
		case committed:
			r.logger.Error("response already committed, dropping error body",
				zap.String("path", c.Request.URL.Path),
				zap.String("kind", f.Kind.String()),
				zap.Error(f),
			)
		default:
			for key, values := range resp.Header {
				for _, value := range values {
					c.Writer.Header().Add(key, value)
				}
			}

			c.JSON(resp.Status, resp.Body)
		}
	}
}

// recoverPanic is handed to gin's recovery middleware.
func recoverPanic(c *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = errors.Errorf("%v", recovered)
	}

	abortWith(c, failure.Wrap(failure.Internal, err))
}

// requestTimeout puts a deadline on the request context and raises an async
// timeout once the handler returns past it.
func (r *Routes) requestTimeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), r.timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			abortWith(c, failure.New(failure.AsyncTimeout, "async request timed out"))
		}
	}
}

func abortWith(c *gin.Context, f *failure.Failure) {
	_ = c.Error(f)
	c.Abort()
}
