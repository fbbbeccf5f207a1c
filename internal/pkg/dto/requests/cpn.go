package requests

// BlockValues carries the raw inputs of one antecedent block, keyed by
// field code. Values stay untyped here; the form engine coerces them
// against the block schema.
type BlockValues struct {
	AntecedentID int64                  `json:"antecedentId" validate:"required"`
	Fields       map[string]interface{} `json:"fields"`
}

// SubmitCpn is the full new-record submission.
type SubmitCpn struct {
	PatientID string        `json:"patientID"`
	LmpDate   string        `json:"lmpDate" validate:"omitempty,datetime=2006-01-02"`
	Values    []BlockValues `json:"values"`
}
