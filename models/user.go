package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User mirrors one record of the remote user collection. The mock API
// stores passwords in clear text; this is a known non-goal of the
// storefront, not something to reproduce against a real backend.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSession is the locally held record of the authenticated user.
// It is owned by the session manager; everything else only reads it.
type UserSession struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
