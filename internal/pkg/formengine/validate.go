package formengine

import "fmt"

// Validate walks every active block against the raw values and returns the
// field errors keyed "blockID.fieldCode". An empty map means the form can
// be submitted.
//
// Only the first applicable rule per field reports: a duplicate code wins
// over everything, then required, then the type-specific constraint.
func Validate(blocks []BlockDefinition, values ValueMap) map[string]string {
	errs := make(map[string]string)
	for _, block := range blocks {
		seen := make(map[string]bool, len(block.Fields))
		for _, field := range block.Fields {
			key := fmt.Sprintf("%d.%s", block.ID, field.Code)
			if seen[field.Code] {
				errs[key] = msgDuplicateCode
				continue
			}
			seen[field.Code] = true

			t := field.FieldType()
			raw := values.Get(block.ID, field.Code)
			v := Coerce(raw, t)

			if field.Required && v.IsAbsent() {
				errs[key] = msgRequired
				continue
			}
			if msg := behaviorFor(t).validate(field, raw, v); msg != "" {
				errs[key] = msg
			}
		}
	}
	return errs
}

// ValidateHeader checks the two inputs that live outside the dynamic
// blocks. Errors use top-level keys so the UI can anchor them next to the
// patient picker and the date input.
func ValidateHeader(patientID, lmpDate string) map[string]string {
	errs := make(map[string]string)
	if patientID == "" {
		errs["patientID"] = msgPatientRequired
	}
	if lmpDate == "" {
		errs["lmpDate"] = msgDateRequired
	}
	return errs
}
