package models

// Patient is the demographic record embedded in a dossier.
type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// Dossier is the clinic file that groups one patient's pregnancy records.
type Dossier struct {
	ID        int64   `json:"id"`
	UniqueID  string  `json:"uniqueId"`
	Patient   Patient `json:"patient"`
	CreatedAt string  `json:"createdAt"`
}
