package failure

import "net/http"

// Kind identifies what went wrong while dispatching a request.
type Kind int

const (
	Internal Kind = iota
	MethodNotAllowed
	UnsupportedMediaType
	NotAcceptable
	MissingPathVariable
	MissingParameter
	RequestBinding
	ConversionNotSupported
	TypeMismatch
	MessageNotReadable
	MessageNotWritable
	ValidationFailed
	MissingPart
	BindFailed
	NoHandlerFound
	AsyncTimeout
)

type kindInfo struct {
	name   string
	status int
}

var kinds = map[Kind]kindInfo{
	Internal:               {"internal", http.StatusInternalServerError},
	MethodNotAllowed:       {"method_not_allowed", http.StatusMethodNotAllowed},
	UnsupportedMediaType:   {"unsupported_media_type", http.StatusUnsupportedMediaType},
	NotAcceptable:          {"not_acceptable", http.StatusNotAcceptable},
	MissingPathVariable:    {"missing_path_variable", http.StatusInternalServerError},
	MissingParameter:       {"missing_parameter", http.StatusBadRequest},
	RequestBinding:         {"request_binding", http.StatusBadRequest},
	ConversionNotSupported: {"conversion_not_supported", http.StatusInternalServerError},
	TypeMismatch:           {"type_mismatch", http.StatusBadRequest},
	MessageNotReadable:     {"message_not_readable", http.StatusBadRequest},
	MessageNotWritable:     {"message_not_writable", http.StatusInternalServerError},
	ValidationFailed:       {"validation_failed", http.StatusBadRequest},
	MissingPart:            {"missing_part", http.StatusBadRequest},
	BindFailed:             {"bind_failed", http.StatusBadRequest},
	NoHandlerFound:         {"no_handler_found", http.StatusNotFound},
	AsyncTimeout:           {"async_timeout", http.StatusServiceUnavailable},
}

// Kinds lists every known Kind.
func Kinds() []Kind {
	all := make([]Kind, 0, len(kinds))
	for k := Internal; k <= AsyncTimeout; k++ {
		all = append(all, k)
	}

	return all
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}

	return "unknown"
}

// Status is the response status the dispatch layer picks for this kind.
// Unknown kinds are treated as internal errors.
func (k Kind) Status() int {
	if info, ok := kinds[k]; ok {
		return info.status
	}

	return http.StatusInternalServerError
}
