// Package validation runs field-level rules over inbound payloads.
//
// Rules are declared with `binding` struct tags and executed by the
// go-playground validator. A Validator doubles as gin's StructValidator so
// that binding a request body validates it in the same step.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// NamePattern is the constraint applied to person name fields.
	NamePattern = `^[A-Za-z]{1,30}$`

	tagName        = "binding"
	ruleRequired   = "required"
	rulePersonName = "personname"
)

var nameRe = regexp.MustCompile(NamePattern)

// Validator checks structs against their binding tags.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the person name rule registered.
func New() *Validator {
	v := validator.New()
	v.SetTagName(tagName)

	// report violations by wire name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	//nolint:errcheck // only fails on an empty tag or nil func
	v.RegisterValidation(rulePersonName, func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// ValidateStruct validates a struct, a pointer to one, or a slice of them.
// Anything else is ignored. Failures are returned as Violations.
func (val *Validator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return val.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		return val.validate(obj)
	case reflect.Slice, reflect.Array:
		var all Violations
		for i := 0; i < value.Len(); i++ {
			if err := val.ValidateStruct(value.Index(i).Interface()); err != nil {
				vs, ok := err.(Violations)
				if !ok {
					return err
				}
				all = append(all, vs...)
			}
		}
		if len(all) > 0 {
			return all
		}
		return nil
	default:
		return nil
	}
}

// Engine exposes the underlying validator, as gin expects.
func (val *Validator) Engine() any {
	return val.v
}

func (val *Validator) validate(obj any) error {
	err := val.v.Struct(obj)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// validator stops at the first failing rule of a field but keeps going
	// across fields, in declaration order
	violations := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}

	return violations
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case ruleRequired:
		return "must not be null"
	case rulePersonName:
		return "must match " + NamePattern
	default:
		if fe.Param() != "" {
			return fe.Tag() + "=" + fe.Param()
		}
		return fe.Tag()
	}
}
