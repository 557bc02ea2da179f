package routes

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"

	"github.com/metal-toolbox/user-echo/internal/failure"
	"github.com/metal-toolbox/user-echo/internal/model"
	"github.com/metal-toolbox/user-echo/internal/validation"
)

const jsonContentType = "application/json; charset=utf-8"

// postUser echoes a validated User back to the caller.
func postUser(c *gin.Context) {
	if mt, _, err := mime.ParseMediaType(c.GetHeader("Content-Type")); err != nil || mt != binding.MIMEJSON {
		abortWith(c,
			failure.Newf(failure.UnsupportedMediaType, "Content type '%s' not supported", c.ContentType()).
				WithHeader("Accept", binding.MIMEJSON),
		)
		return
	}

	if accept := c.GetHeader("Accept"); accept != "" {
		c.SetAccepted(acceptedFormats(accept)...)

		if c.NegotiateFormat(binding.MIMEJSON) == "" {
			abortWith(c, failure.New(failure.NotAcceptable, "Could not find acceptable representation"))
			return
		}
	}

	var user model.User
	if err := c.ShouldBindWith(&user, binding.JSON); err != nil {
		abortWith(c, bindFailure(err))
		return
	}

	writeJSON(c, http.StatusOK, &user)
}

// writeJSON encodes v before anything is sent, so an encoding error can still
// be answered with the envelope.
func writeJSON(c *gin.Context, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		abortWith(c, failure.Wrap(failure.MessageNotWritable, errors.Wrap(err, "could not write JSON")))
		return
	}

	c.Data(status, jsonContentType, body)
}

// acceptedFormats lowercases the media ranges of an Accept header and drops
// their parameters, for gin's negotiation. Malformed ranges are skipped.
func acceptedFormats(accept string) []string {
	parts := strings.Split(accept, ",")
	// non-nil even when empty: gin would re-read the raw header otherwise
	formats := make([]string, 0, len(parts))

	for _, part := range parts {
		mt, _, err := mime.ParseMediaType(part)
		if err != nil {
			continue
		}

		formats = append(formats, mt)
	}

	return formats
}

// bindFailure sorts a binding error into validation or unreadable body.
func bindFailure(err error) *failure.Failure {
	var violations validation.Violations

	switch {
	case errors.As(err, &violations):
		return failure.Wrap(failure.ValidationFailed, err)
	case errors.Is(err, io.EOF):
		return failure.New(failure.MessageNotReadable, "Required request body is missing")
	default:
		return failure.Wrap(failure.MessageNotReadable, errors.Wrap(err, "JSON parse error"))
	}
}

func noRoute(c *gin.Context) {
	abortWith(c, failure.Newf(failure.NoHandlerFound,
		"No handler found for %s %s", c.Request.Method, c.Request.URL.Path))
}

func noMethod(g *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := failure.Newf(failure.MethodNotAllowed, "Request method '%s' not supported", c.Request.Method)

		if allowed := allowedMethods(g.Routes(), c.Request.URL.Path); len(allowed) > 0 {
			f.WithHeader("Allow", strings.Join(allowed, ", "))
		}

		abortWith(c, f)
	}
}

func allowedMethods(routes gin.RoutesInfo, path string) []string {
	var methods []string

	for _, ri := range routes {
		if ri.Path == path {
			methods = append(methods, ri.Method)
		}
	}

	sort.Strings(methods)

	return methods
}
