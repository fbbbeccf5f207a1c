package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Dossier messages
	GetDossiersSuccess   = "dossiers retrieved successfully"
	GetDossierSuccess    = "dossier retrieved successfully"
	CreatePatientSuccess = "patient and dossier created successfully"

	// Antecedent definition messages
	GetAntecedentsSuccess   = "antecedent definitions retrieved successfully"
	CreateAntecedentSuccess = "antecedent definition created successfully"
	UpdateAntecedentSuccess = "antecedent definition updated successfully"
	DeleteAntecedentSuccess = "antecedent definition deleted successfully"

	// CPN messages
	GetCpnFormSuccess         = "cpn form retrieved successfully"
	GetCpnListSuccess         = "cpn records retrieved successfully"
	GetCpnSuccess             = "cpn record retrieved successfully"
	CreateCpnSuccess          = "cpn record created successfully"
	GetSchedulePreviewSuccess = "consultation schedule preview computed successfully"

	// User administration messages
	GetUsersSuccess    = "users retrieved successfully"
	CreateUserSuccess  = "user created successfully"
	UpdateUserSuccess  = "user updated successfully"
	EnableUserSuccess  = "user enabled successfully"
	DisableUserSuccess = "user disabled successfully"
	GetRolesSuccess    = "roles retrieved successfully"
	CreateRoleSuccess  = "role created successfully"

	// Dashboard messages
	GetDashboardSummarySuccess = "dashboard summary retrieved successfully"
)
