package requests

type CreateUser struct {
	Username  string   `json:"username" validate:"required,min=3,max=50"`
	Password  string   `json:"password" validate:"required,min=8,max=72"`
	FirstName string   `json:"firstName" validate:"required,max=100"`
	LastName  string   `json:"lastName" validate:"required,max=100"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Roles     []string `json:"roles" validate:"required,min=1,dive,oneof=ADMIN DOCTOR RECEPTIONIST"`
}

type CreateRole struct {
	Name        string `json:"name" validate:"required,min=3,max=50,uppercase"`
	Description string `json:"description" validate:"max=255"`
}

type UpdateUser struct {
	FirstName string   `json:"firstName" validate:"required,max=100"`
	LastName  string   `json:"lastName" validate:"required,max=100"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Roles     []string `json:"roles" validate:"required,min=1,dive,oneof=ADMIN DOCTOR RECEPTIONIST"`
}
