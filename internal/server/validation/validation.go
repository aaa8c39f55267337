// Package validation checks untyped request payloads against declarative
// per-endpoint schemas before any business logic runs.
//
// Validation is a pure function: invalid input yields an ordered list of
// human-readable messages, never a panic or an error value.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Rule is a single validator tag plus the message reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

// Field declares a required string field and its extra rules, evaluated in order.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is an ordered list of fields. Messages come out in field order,
// then rule order within a field.
type Schema struct {
	Name   string
	Fields []Field
}

var (
	upperRe = regexp.MustCompile(`[A-Z]`)
	alnumRe = regexp.MustCompile(`[a-zA-Z0-9]`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "hasupper", func(fl validator.FieldLevel) bool {
		return upperRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "hasalnum", func(fl validator.FieldLevel) bool {
		return alnumRe.MatchString(fl.Field().String())
	})
	// max=N counts runes; maxbytes=N counts encoded bytes.
	mustRegister(v, "maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s: %v", tag, err))
	}
}

// Check validates raw against the schema. On success it returns the field
// values keyed by name and a nil message list.
func (s Schema) Check(raw []byte) (map[string]string, []string) {
	obj, msg := decodeObject(raw)
	if msg != "" {
		return nil, []string{msg}
	}

	values := make(map[string]string, len(s.Fields))
	var msgs []string

	for _, f := range s.Fields {
		v, present := obj[f.Name]
		if !present || v == nil {
			msgs = append(msgs, f.Name+" is required")
			continue
		}

		str, ok := v.(string)
		if !ok {
			msgs = append(msgs, f.Name+" must be a string")
			continue
		}

		if err := validate.Var(str, "required"); err != nil {
			msgs = append(msgs, f.Name+" must not be empty")
			continue
		}

		for _, r := range f.Rules {
			if err := validate.Var(str, r.Tag); err != nil {
				msgs = append(msgs, r.Message)
			}
		}

		values[f.Name] = str
	}

	if len(msgs) > 0 {
		return nil, msgs
	}
	return values, nil
}

// decodeObject parses raw as a JSON object. An empty body counts as {}.
func decodeObject(raw []byte) (map[string]any, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return map[string]any{}, ""
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, "Invalid JSON body"
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, "Expected object, received " + kindOf(v)
	}
	return obj, ""
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}
