package formengine

// AntecedentValues is one block's contribution to the submission. Keys in
// Values are field codes, values are the coerced typed representation.
type AntecedentValues struct {
	AntecedentID int64                  `json:"antecedentId"`
	Values       map[string]interface{} `json:"values"`
}

// SubmissionPayload is the wire format the records backend accepts for a
// new pregnancy record. Wire keys follow the backend contract.
type SubmissionPayload struct {
	PatientID          string             `json:"patientID"`
	LastAmenorrheaDate string             `json:"lastDYSmeNoRRheaDate"`
	Antecedents        []AntecedentValues `json:"antecedentRequest"`
}

// BuildSubmission assembles the payload from coerced values. Every block
// appears, even with an empty values map, so the backend sees the full set
// of antecedent IDs it served. Absent fields are filtered out entirely
// rather than sent as null.
func BuildSubmission(patientID, lmpDate string, blocks []BlockDefinition, values ValueMap) SubmissionPayload {
	payload := SubmissionPayload{
		PatientID:          patientID,
		LastAmenorrheaDate: lmpDate,
		Antecedents:        make([]AntecedentValues, 0, len(blocks)),
	}
	for _, block := range blocks {
		entry := AntecedentValues{
			AntecedentID: block.ID,
			Values:       make(map[string]interface{}),
		}
		for _, field := range block.Fields {
			v := Coerce(values.Get(block.ID, field.Code), field.FieldType())
			if v.IsAbsent() {
				continue
			}
			entry.Values[field.Code] = v.Interface()
		}
		payload.Antecedents = append(payload.Antecedents, entry)
	}
	return payload
}
