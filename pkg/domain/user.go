package domain

import "time"

// User is a registered dashboard user.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// AuthData is what the sign-in endpoint returns: a bearer token plus
// the profile it authenticates.
type AuthData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
