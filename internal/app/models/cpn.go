package models

// CpnRecord is a pregnancy follow-up record as served by the records API.
type CpnRecord struct {
	ID                 string               `json:"id"`
	PatientID          string               `json:"patientID"`
	DossierUniqueID    string               `json:"dossierUniqueId"`
	LastAmenorrheaDate string               `json:"lastDYSmeNoRRheaDate"`
	EstimatedDueDate   string               `json:"estimatedDueDate"`
	Antecedents        []RecordedAntecedent `json:"antecedents"`
	CreatedAt          string               `json:"createdAt"`
}

// RecordedAntecedent is one stored antecedent block with its captured
// values.
type RecordedAntecedent struct {
	AntecedentID int64                  `json:"antecedentId"`
	Code         string                 `json:"code"`
	Name         string                 `json:"name"`
	Values       map[string]interface{} `json:"values"`
	RecordedBy   string                 `json:"recordedBy,omitempty"`
	RecordedAt   string                 `json:"recordedAt,omitempty"`
}
