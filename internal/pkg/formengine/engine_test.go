package formengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestCoerce(t *testing.T) {
	t.Run("boolean absent only when untouched", func(t *testing.T) {
		assert.True(t, Coerce(nil, TypeBoolean).IsAbsent())
		v := Coerce(false, TypeBoolean)
		assert.False(t, v.IsAbsent())
		assert.False(t, v.Bool())
	})

	t.Run("integer truncates toward zero", func(t *testing.T) {
		assert.Equal(t, int64(3), Coerce(3.9, TypeInteger).Int())
		assert.Equal(t, int64(-3), Coerce(-3.9, TypeInteger).Int())
		assert.Equal(t, int64(6), Coerce("6", TypeInteger).Int())
	})

	t.Run("unparseable number is absent", func(t *testing.T) {
		assert.True(t, Coerce("abc", TypeInteger).IsAbsent())
		assert.True(t, Coerce("", TypeDecimal).IsAbsent())
	})

	t.Run("decimal keeps fraction", func(t *testing.T) {
		v := Coerce("3.5", TypeDecimal)
		assert.False(t, v.IsAbsent())
		assert.Equal(t, 3.5, v.Float())
	})

	t.Run("empty text is absent", func(t *testing.T) {
		assert.True(t, Coerce("", TypeText).IsAbsent())
		assert.Equal(t, "ok", Coerce("ok", TypeText).String())
	})

	t.Run("multi enum wraps bare scalar", func(t *testing.T) {
		assert.Equal(t, []string{"a"}, Coerce("a", TypeMultiEnum).List())
	})

	t.Run("multi enum empty list is absent", func(t *testing.T) {
		assert.True(t, Coerce([]string{}, TypeMultiEnum).IsAbsent())
		assert.True(t, Coerce([]interface{}{}, TypeMultiEnum).IsAbsent())
	})

	t.Run("multi enum decoded json list", func(t *testing.T) {
		v := Coerce([]interface{}{"a", "b"}, TypeMultiEnum)
		assert.Equal(t, []string{"a", "b"}, v.List())
	})

	t.Run("unknown type falls back to text", func(t *testing.T) {
		assert.Equal(t, TypeText, ParseFieldType("GEOPOINT"))
		assert.Equal(t, "x", Coerce("x", ParseFieldType("GEOPOINT")).String())
	})
}

func TestSortFields(t *testing.T) {
	fields := []FieldDefinition{
		{Code: "c", DisplayOrder: intPtr(2)},
		{Code: "a"},
		{Code: "b", DisplayOrder: intPtr(0)},
		{Code: "d", DisplayOrder: intPtr(1)},
	}
	sorted := SortFields(fields)
	codes := make([]string, 0, len(sorted))
	for _, f := range sorted {
		codes = append(codes, f.Code)
	}
	// missing order counts as 0; ties keep schema position
	assert.Equal(t, []string{"a", "b", "d", "c"}, codes)
}

func TestValidate(t *testing.T) {
	t.Run("untouched required boolean is missing", func(t *testing.T) {
		blocks := []BlockDefinition{{
			ID:     1,
			Fields: []FieldDefinition{{Code: "smoker", Type: "BOOLEAN", Required: true}},
		}}
		values := NewValues(blocks)
		errs := Validate(blocks, values)
		assert.Equal(t, map[string]string{"1.smoker": "Champ requis"}, errs)

		values.Set(1, "smoker", false)
		assert.Empty(t, Validate(blocks, values))
	})

	t.Run("integer bounds", func(t *testing.T) {
		blocks := []BlockDefinition{{
			ID: 4,
			Fields: []FieldDefinition{{
				Code:        "count",
				Type:        "INTEGER",
				Constraints: Constraints{"min": float64(0), "max": float64(5)},
			}},
		}}
		values := NewValues(blocks)

		values.Set(4, "count", "6")
		assert.Equal(t, map[string]string{"4.count": "Max 5"}, Validate(blocks, values))

		values.Set(4, "count", "-1")
		assert.Equal(t, map[string]string{"4.count": "Min 0"}, Validate(blocks, values))

		values.Set(4, "count", "5")
		assert.Empty(t, Validate(blocks, values))
	})

	t.Run("text max length counts runes", func(t *testing.T) {
		blocks := []BlockDefinition{{
			ID: 2,
			Fields: []FieldDefinition{{
				Code:        "notes",
				Type:        "TEXT",
				Constraints: Constraints{"maxLength": float64(5)},
			}},
		}}
		values := NewValues(blocks)
		values.Set(2, "notes", "éééééé")
		assert.Equal(t, map[string]string{"2.notes": "Max 5 caractères"}, Validate(blocks, values))

		values.Set(2, "notes", "ééééé")
		assert.Empty(t, Validate(blocks, values))
	})

	t.Run("date bounds compare lexicographically", func(t *testing.T) {
		blocks := []BlockDefinition{{
			ID: 3,
			Fields: []FieldDefinition{{
				Code:        "lastExam",
				Type:        "DATE",
				Constraints: Constraints{"min": "2024-01-01", "max": "2025-12-31"},
			}},
		}}
		values := NewValues(blocks)

		values.Set(3, "lastExam", "2023-06-15")
		assert.Equal(t, map[string]string{"3.lastExam": "Date min 2024-01-01"}, Validate(blocks, values))

		values.Set(3, "lastExam", "2026-01-01")
		assert.Equal(t, map[string]string{"3.lastExam": "Date max 2025-12-31"}, Validate(blocks, values))

		values.Set(3, "lastExam", "2025-03-10")
		assert.Empty(t, Validate(blocks, values))
	})

	t.Run("required enum needs options", func(t *testing.T) {
		blocks := []BlockDefinition{{
			ID: 5,
			Fields: []FieldDefinition{{
				Code:     "bloodGroup",
				Type:     "ENUM",
				Required: true,
			}},
		}}
		values := NewValues(blocks)
		values.Set(5, "bloodGroup", "O+")
		assert.Equal(t, map[string]string{"5.bloodGroup": "Options manquantes"}, Validate(blocks, values))
	})

	t.Run("duplicate field code", func(t *testing.T) {
		blocks := []BlockDefinition{{
			ID: 6,
			Fields: []FieldDefinition{
				{Code: "twin", Type: "BOOLEAN"},
				{Code: "twin", Type: "TEXT"},
			},
		}}
		errs := Validate(blocks, NewValues(blocks))
		assert.Equal(t, map[string]string{"6.twin": "Code de champ dupliqué"}, errs)
	})
}

func TestValidateHeader(t *testing.T) {
	errs := ValidateHeader("", "")
	assert.Equal(t, "Patient requis", errs["patientID"])
	assert.Equal(t, "La date est requise", errs["lmpDate"])
	assert.Empty(t, ValidateHeader("pat-1", "2026-01-10"))
}

func TestBuildSubmission(t *testing.T) {
	blocks := []BlockDefinition{
		{ID: 1, Fields: []FieldDefinition{
			{Code: "count", Type: "INTEGER"},
			{Code: "notes", Type: "TEXT"},
		}},
		{ID: 2, Fields: []FieldDefinition{
			{Code: "conditions", Type: "MULTI_ENUM"},
		}},
	}
	values := NewValues(blocks)
	values.Set(1, "count", "2")
	values.Set(2, "conditions", []string{"diabetes"})

	payload := BuildSubmission("pat-9", "2026-02-01", blocks, values)

	assert.Equal(t, "pat-9", payload.PatientID)
	assert.Equal(t, "2026-02-01", payload.LastAmenorrheaDate)
	assert.Len(t, payload.Antecedents, 2)

	first := payload.Antecedents[0]
	assert.Equal(t, int64(1), first.AntecedentID)
	assert.Equal(t, int64(2), first.Values["count"])
	_, hasNotes := first.Values["notes"]
	assert.False(t, hasNotes)

	second := payload.Antecedents[1]
	assert.Equal(t, int64(2), second.AntecedentID)
	assert.Equal(t, []string{"diabetes"}, second.Values["conditions"])
}

func TestWidgetFor(t *testing.T) {
	t.Run("integer defaults step to one", func(t *testing.T) {
		w := WidgetFor(FieldDefinition{Type: "INTEGER", Constraints: Constraints{"min": float64(0)}})
		assert.Equal(t, ControlNumber, w.Control)
		assert.Equal(t, 1.0, *w.Step)
		assert.Equal(t, 0.0, *w.Min)
		assert.Nil(t, w.Max)
	})

	t.Run("decimal defaults step", func(t *testing.T) {
		w := WidgetFor(FieldDefinition{Type: "DECIMAL"})
		assert.Equal(t, 0.1, *w.Step)
	})

	t.Run("enum carries options", func(t *testing.T) {
		w := WidgetFor(FieldDefinition{Type: "ENUM", Constraints: Constraints{"options": []interface{}{"A", "B"}}})
		assert.Equal(t, ControlSelect, w.Control)
		assert.Equal(t, []string{"A", "B"}, w.Options)
	})

	t.Run("unknown type renders as text", func(t *testing.T) {
		w := WidgetFor(FieldDefinition{Type: "GEOPOINT"})
		assert.Equal(t, ControlText, w.Control)
	})
}
