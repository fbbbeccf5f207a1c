package models

import "time"

// Session is what lives in Redis for one logged-in admin user. The remote
// token never leaves the server; clients only ever hold the local session
// JWT.
type Session struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	RemoteToken string    `json:"remote_token"`
	CreatedAt   time.Time `json:"created_at"`
}
