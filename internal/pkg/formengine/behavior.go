package formengine

import (
	"fmt"
	"strconv"
)

// Widget controls
const (
	ControlSwitch      = "switch"
	ControlNumber      = "number"
	ControlDate        = "date"
	ControlSelect      = "select"
	ControlMultiSelect = "multiselect"
	ControlText        = "text"
)

// Widget is the renderable description of one input, derived from the field
// definition and handed to the UI as-is.
type Widget struct {
	Control   string   `json:"control"`
	Step      *float64 `json:"step,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MinDate   string   `json:"minDate,omitempty"`
	MaxDate   string   `json:"maxDate,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// behavior bundles everything type-dependent about a field: how it renders,
// how raw input coerces and which validation rule applies. One entry per
// member of the closed FieldType union, so adding a type is a single-table
// edit.
type behavior struct {
	widget   func(f FieldDefinition) Widget
	coerce   func(raw interface{}) Value
	validate func(f FieldDefinition, raw interface{}, v Value) string
}

var behaviors = map[FieldType]behavior{
	TypeBoolean: {
		widget:   func(FieldDefinition) Widget { return Widget{Control: ControlSwitch} },
		coerce:   coerceBoolean,
		validate: validateNothing,
	},
	TypeInteger: {
		widget:   numberWidget(1),
		coerce:   coerceInteger,
		validate: validateNumericBounds,
	},
	TypeDecimal: {
		widget:   numberWidget(0.1),
		coerce:   coerceDecimal,
		validate: validateNumericBounds,
	},
	TypeDate: {
		widget: func(f FieldDefinition) Widget {
			w := Widget{Control: ControlDate}
			w.MinDate, _ = f.Constraints.String("min")
			w.MaxDate, _ = f.Constraints.String("max")
			return w
		},
		coerce:   coerceString,
		validate: validateDateBounds,
	},
	TypeEnum: {
		widget: func(f FieldDefinition) Widget {
			return Widget{Control: ControlSelect, Options: f.Constraints.Options()}
		},
		coerce:   coerceString,
		validate: validateEnumOptions,
	},
	TypeMultiEnum: {
		widget: func(f FieldDefinition) Widget {
			return Widget{Control: ControlMultiSelect, Options: f.Constraints.Options()}
		},
		coerce:   coerceMultiEnum,
		validate: validateEnumOptions,
	},
	TypeText: {
		widget: func(f FieldDefinition) Widget {
			w := Widget{Control: ControlText}
			if maxLength, ok := f.Constraints.Int("maxLength"); ok {
				w.MaxLength = &maxLength
			}
			return w
		},
		coerce:   coerceString,
		validate: validateTextLength,
	},
}

func behaviorFor(t FieldType) behavior {
	if b, ok := behaviors[t]; ok {
		return b
	}
	return behaviors[TypeText]
}

// WidgetFor selects the widget description for a field definition.
func WidgetFor(f FieldDefinition) Widget {
	return behaviorFor(f.FieldType()).widget(f)
}

func numberWidget(defaultStep float64) func(f FieldDefinition) Widget {
	return func(f FieldDefinition) Widget {
		w := Widget{Control: ControlNumber}
		step := defaultStep
		if s, ok := f.Constraints.Number("step"); ok {
			step = s
		}
		w.Step = &step
		if min, ok := f.Constraints.Number("min"); ok {
			w.Min = &min
		}
		if max, ok := f.Constraints.Number("max"); ok {
			w.Max = &max
		}
		return w
	}
}

// Field-level validation messages, kept in the product's language.
const (
	msgRequired        = "Champ requis"
	msgMissingOptions  = "Options manquantes"
	msgDuplicateCode   = "Code de champ dupliqué"
	msgPatientRequired = "Patient requis"
	msgDateRequired    = "La date est requise"
)

func validateNothing(FieldDefinition, interface{}, Value) string { return "" }

func validateNumericBounds(f FieldDefinition, _ interface{}, v Value) string {
	if v.IsAbsent() {
		return ""
	}
	n := v.Float()
	if min, ok := f.Constraints.Number("min"); ok && n < min {
		return "Min " + formatNumber(min)
	}
	if max, ok := f.Constraints.Number("max"); ok && n > max {
		return "Max " + formatNumber(max)
	}
	return ""
}

func validateTextLength(f FieldDefinition, raw interface{}, _ Value) string {
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	if maxLength, has := f.Constraints.Int("maxLength"); has && len([]rune(s)) > maxLength {
		return fmt.Sprintf("Max %d caractères", maxLength)
	}
	return ""
}

// Date bounds compare lexicographically; ISO yyyy-mm-dd strings sort
// correctly that way.
func validateDateBounds(f FieldDefinition, _ interface{}, v Value) string {
	if v.IsAbsent() {
		return ""
	}
	date := v.String()
	if min, ok := f.Constraints.String("min"); ok && date < min {
		return "Date min " + min
	}
	if max, ok := f.Constraints.String("max"); ok && date > max {
		return "Date max " + max
	}
	return ""
}

// A required choice field without a non-empty options list is a schema
// error, reported against the field instead of crashing the renderer.
func validateEnumOptions(f FieldDefinition, _ interface{}, _ Value) string {
	if f.Required && len(f.Constraints.Options()) == 0 {
		return msgMissingOptions
	}
	return ""
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
