package validation

import "strings"

// Violation is a single broken rule on a single field.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + " " + v.Message
}

// Violations is the ordered set of rules a payload broke.
type Violations []Violation

func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.String())
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields lists the offending fields in report order.
func (vs Violations) Fields() []string {
	fields := make([]string, 0, len(vs))
	for _, v := range vs {
		fields = append(fields, v.Field)
	}

	return fields
}
