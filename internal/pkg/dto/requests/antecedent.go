package requests

// AntecedentField defines one field inside a block. Constraints is the
// free-form bag the engine interprets per type (min/max, maxLength,
// options).
type AntecedentField struct {
	Code         string                 `json:"code" validate:"required,max=60"`
	Label        string                 `json:"label" validate:"required,max=120"`
	Type         string                 `json:"type" validate:"required"`
	Required     bool                   `json:"required"`
	DisplayOrder *int                   `json:"displayOrder"`
	Constraints  map[string]interface{} `json:"constraints"`
}

type CreateAntecedent struct {
	Code           string            `json:"code" validate:"required,max=60"`
	Name           string            `json:"name" validate:"required,max=120"`
	Description    string            `json:"description" validate:"omitempty,max=500"`
	AntecedentType string            `json:"antecedentType" validate:"required,oneof=OBSTETRICS GYNECO GENERAL"`
	Active         bool              `json:"active"`
	Fields         []AntecedentField `json:"fields" validate:"dive"`
}

type UpdateAntecedent struct {
	Name           string            `json:"name" validate:"required,max=120"`
	Description    string            `json:"description" validate:"omitempty,max=500"`
	AntecedentType string            `json:"antecedentType" validate:"required,oneof=OBSTETRICS GYNECO GENERAL"`
	Active         bool              `json:"active"`
	Fields         []AntecedentField `json:"fields" validate:"dive"`
}
