// Package formengine builds, validates and assembles the dynamic
// antecedent forms used by prenatal consultation (CPN) records. Block and
// field definitions come from the records API; the engine turns them into
// renderable widgets, coerces raw user input into typed values and produces
// the submission payload.
package formengine

import (
	"strings"
)

// FieldType is the closed set of input types a field definition may declare.
// Unknown declarations degrade to TypeText, mirroring the historical
// renderer behaviour.
type FieldType string

const (
	TypeBoolean   FieldType = "BOOLEAN"
	TypeInteger   FieldType = "INTEGER"
	TypeDecimal   FieldType = "DECIMAL"
	TypeText      FieldType = "TEXT"
	TypeDate      FieldType = "DATE"
	TypeEnum      FieldType = "ENUM"
	TypeMultiEnum FieldType = "MULTI_ENUM"
)

// ParseFieldType normalizes a declared type, falling back to TypeText for
// anything it does not recognize.
func ParseFieldType(raw string) FieldType {
	t := FieldType(strings.ToUpper(strings.TrimSpace(raw)))
	switch t {
	case TypeBoolean, TypeInteger, TypeDecimal, TypeText, TypeDate, TypeEnum, TypeMultiEnum:
		return t
	default:
		return TypeText
	}
}

// IsKnownFieldType reports whether the declared type maps to itself rather
// than degrading to TEXT.
func IsKnownFieldType(raw string) bool {
	switch FieldType(strings.ToUpper(strings.TrimSpace(raw))) {
	case TypeBoolean, TypeInteger, TypeDecimal, TypeText, TypeDate, TypeEnum, TypeMultiEnum:
		return true
	default:
		return false
	}
}

// Constraints is the type-dependent bag attached to a field definition:
// numeric min/max/step, text maxLength/pattern, date min/max (ISO strings),
// enum options. It arrives as raw JSON, so values are looked up through
// typed accessors.
type Constraints map[string]interface{}

func (c Constraints) Number(key string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	switch v := c[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func (c Constraints) Int(key string) (int, bool) {
	n, ok := c.Number(key)
	if !ok {
		return 0, false
	}
	return int(n), true
}

func (c Constraints) String(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Options returns the enum choice list, tolerating both []string and the
// []interface{} produced by generic JSON decoding.
func (c Constraints) Options() []string {
	if c == nil {
		return nil
	}
	switch raw := c["options"].(type) {
	case []string:
		return raw
	case []interface{}:
		options := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				options = append(options, s)
			}
		}
		return options
	default:
		return nil
	}
}

// FieldDefinition is one input within a block.
type FieldDefinition struct {
	ID           int64                  `json:"id"`
	Code         string                 `json:"code"`
	Label        string                 `json:"label"`
	Type         string                 `json:"type"`
	Required     bool                   `json:"required"`
	DisplayOrder *int                   `json:"displayOrder"`
	Constraints  Constraints            `json:"constraints"`
	UI           map[string]interface{} `json:"ui"`
}

// FieldType returns the normalized type of the field.
func (f FieldDefinition) FieldType() FieldType {
	return ParseFieldType(f.Type)
}

// BlockDefinition is a named, typed group of antecedent fields
// (one clinical history category).
type BlockDefinition struct {
	ID             int64             `json:"id"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	AntecedentType string            `json:"antecedentType"`
	Active         bool              `json:"active"`
	Fields         []FieldDefinition `json:"fields"`
}

// CreatedRecord is what the submission sink reports back on success.
type CreatedRecord struct {
	ID string `json:"id"`
}
