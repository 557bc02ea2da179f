// Package failure turns anything that goes wrong while handling a request
// into a single JSON error envelope.
package failure

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// MaxFrames bounds the call trace rendered into an envelope.
const MaxFrames = 10

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Failure is a dispatch failure: the originating error, its kind, the status
// chosen for it and any headers that belong on the response.
type Failure struct {
	Kind   Kind
	Status int
	Header http.Header

	err error
}

// New raises a failure of the given kind, capturing the caller's trace.
func New(kind Kind, msg string) *Failure {
	return &Failure{Kind: kind, Status: kind.Status(), err: errors.New(msg)}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Status: kind.Status(), err: errors.Errorf(format, args...)}
}

// Wrap raises a failure of the given kind for err. The trace already carried
// by err is kept, otherwise the caller's trace is captured.
func Wrap(kind Kind, err error) *Failure {
	if err == nil {
		err = errors.New(http.StatusText(kind.Status()))
	}

	var st stackTracer
	if !errors.As(err, &st) {
		err = errors.WithStack(err)
	}

	return &Failure{Kind: kind, Status: kind.Status(), err: err}
}

// From returns the failure carried by err, treating anything else as an
// internal error.
func From(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	return Wrap(Internal, err)
}

// WithStatus overrides the status picked from the kind.
func (f *Failure) WithStatus(status int) *Failure {
	f.Status = status
	return f
}

// WithHeader adds a response header value.
func (f *Failure) WithHeader(key, value string) *Failure {
	if f.Header == nil {
		f.Header = make(http.Header)
	}

	f.Header.Add(key, value)

	return f
}

func (f *Failure) Error() string {
	return f.err.Error()
}

func (f *Failure) Unwrap() error {
	return f.err
}

// Frames renders the originating call trace, outermost frame last.
func (f *Failure) Frames() []string {
	var st stackTracer
	if !errors.As(f.err, &st) {
		return nil
	}

	trace := st.StackTrace()
	frames := make([]string, 0, len(trace))
	for _, fr := range trace {
		frames = append(frames, fmt.Sprintf("%n(%v)", fr, fr))
	}

	return frames
}

// Stack renders at most MaxFrames frames as a bracketed list.
func (f *Failure) Stack() string {
	frames := f.Frames()
	if len(frames) > MaxFrames {
		frames = frames[:MaxFrames]
	}

	return "[" + strings.Join(frames, ", ") + "]"
}
