package responses

type Dashboard struct {
	DossierCount     int `json:"dossierCount"`
	CpnRecordCount   int `json:"cpnRecordCount"`
	ActiveUserCount  int `json:"activeUserCount"`
	AntecedentBlocks int `json:"antecedentBlocks"`
}
