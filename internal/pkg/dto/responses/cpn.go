package responses

import "cpn-service/internal/pkg/formengine"

// FieldView is one renderable input: the definition plus the widget the
// client should draw for it.
type FieldView struct {
	Code     string            `json:"code"`
	Label    string            `json:"label"`
	Type     string            `json:"type"`
	Required bool              `json:"required"`
	Widget   formengine.Widget `json:"widget"`
}

// BlockView is one antecedent section of the form, fields already in
// display order.
type BlockView struct {
	AntecedentID   int64       `json:"antecedentId"`
	Code           string      `json:"code"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	AntecedentType string      `json:"antecedentType"`
	Fields         []FieldView `json:"fields"`
}

// CpnForm is the renderable new-record form. Notice is set when the
// antecedent schema could not be loaded and the form degraded to its
// fixed inputs.
type CpnForm struct {
	Notice string      `json:"notice,omitempty"`
	Blocks []BlockView `json:"blocks"`
}

type CpnSubmitted struct {
	RecordID         string `json:"recordId"`
	EstimatedDueDate string `json:"estimatedDueDate"`
}

type Consultation struct {
	Week int    `json:"week"`
	Date string `json:"date"`
}

type CpnSchedule struct {
	LmpDate          string         `json:"lmpDate"`
	EstimatedDueDate string         `json:"estimatedDueDate"`
	Consultations    []Consultation `json:"consultations"`
}
