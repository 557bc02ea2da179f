package failure

import "net/http"

// Envelope is the JSON body written for every failure.
type Envelope struct {
	Msg   string `json:"msg"`
	Stack string `json:"stack"`
}

// Response is a normalized failure ready to be written.
type Response struct {
	Status int
	Header http.Header
	Body   *Envelope
}

// Diagnostic carries the original failure of a server-side error to
// whoever records those.
type Diagnostic struct {
	Kind   Kind
	Status int
	Err    error
	Stack  []string
}

// Normalize maps a failure onto the error envelope.
//
// An async timeout on a response that was already committed produces neither
// a response nor a diagnostic: nothing more may be written. A 500 yields a
// Diagnostic next to the response.
func Normalize(f *Failure, committed bool) (*Response, *Diagnostic) {
	if f.Kind == AsyncTimeout && committed {
		return nil, nil
	}

	var diag *Diagnostic
	if f.Status == http.StatusInternalServerError {
		diag = &Diagnostic{
			Kind:   f.Kind,
			Status: f.Status,
			Err:    f.Unwrap(),
			Stack:  f.Frames(),
		}
	}

	resp := &Response{
		Status: f.Status,
		Header: f.Header.Clone(),
		Body: &Envelope{
			Msg:   f.Error(),
			Stack: f.Stack(),
		},
	}

	return resp, diag
}
