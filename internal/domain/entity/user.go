package entity

import "time"

// User is the aggregate root for the account domain. There is no password:
// authentication is either an emailed one-time code or a Google ID token.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	Avatar    string     `json:"avatar"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
}
