package responses

type Login struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}
