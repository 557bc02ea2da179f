package routes

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/metal-toolbox/user-echo/internal/app"
	"github.com/metal-toolbox/user-echo/internal/failure"
	"github.com/metal-toolbox/user-echo/internal/validation"
)

const userPath = "/user"

var (
	readTimeout  = 10 * time.Second
	writeTimeout = 20 * time.Second

	installValidator sync.Once
)

// Routes holds what the API handlers and middleware need.
type Routes struct {
	logger   *zap.Logger
	reporter failure.Reporter
	timeout  time.Duration
}

// Option sets up Routes.
type Option func(*Routes)

// WithLogger sets the logger used for access logs and dropped failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Routes) {
		r.logger = l
	}
}

// WithReporter sets the collaborator that records server-side failures.
func WithReporter(rep failure.Reporter) Option {
	return func(r *Routes) {
		r.reporter = rep
	}
}

// WithRequestTimeout bounds request handling; zero disables the deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(r *Routes) {
		r.timeout = d
	}
}

// NewRoutes returns Routes with the given options applied.
func NewRoutes(opts ...Option) *Routes {
	r := &Routes{logger: zap.NewNop()}

	for _, opt := range opts {
		opt(r)
	}

	if r.reporter == nil {
		r.reporter = failure.NewLogReporter(r.logger)
	}

	return r
}

// Engine composes the gin engine serving the API.
func (r *Routes) Engine() *gin.Engine {
	// bind and validate in one step, with our rules; gin keeps this
	// process-wide
	installValidator.Do(func() {
		binding.Validator = validation.New()
	})

	g := gin.New()
	g.HandleMethodNotAllowed = true
	g.RedirectTrailingSlash = false

	// outermost first: the normalizer has to see whatever recovery and the
	// timeout put on the context
	g.Use(
		requestID(),
		composeAppLogging(r.logger),
		r.normalizeFailures(),
		gin.CustomRecoveryWithWriter(io.Discard, recoverPanic),
		r.requestTimeout(),
	)

	g.NoRoute(noRoute)
	g.NoMethod(noMethod(g))

	// a liveness endpoint
	g.GET("/_health/liveness", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"time": time.Now()})
	})

	g.POST(userPath, postUser)
	g.POST(userPath+"/", postUser)

	return g
}

// ComposeHTTPServer returns an http.Server that handles our API
func ComposeHTTPServer(a *app.App) *http.Server {
	if !a.Cfg.DeveloperMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := NewRoutes(
		WithLogger(a.Log),
		WithReporter(failure.NewLogReporter(a.Log)),
		WithRequestTimeout(a.Cfg.RequestTimeout),
	)

	return &http.Server{
		Addr:         a.Cfg.ListenAddress,
		Handler:      r.Engine(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
