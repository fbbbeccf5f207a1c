package requests

// CreateDossier opens a clinic file for a new patient. Gender defaults to
// F on the records side but stays editable here.
type CreateDossier struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"omitempty,oneof=F M"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Address   string `json:"address" validate:"omitempty,max=255"`
}

type SearchDossier struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
	Size   int    `json:"size"`
}
