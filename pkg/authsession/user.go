package authsession

import (
	"time"

	"github.com/maintboard/cmmskit/pkg/rbac"
)

// User is the flat, normalized user shape consumed by the UI layer.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      rbac.Role `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// userPayload mirrors the backend's snake_case user representation with
// nested organization memberships.
type userPayload struct {
	ID                      string    `json:"id"`
	Email                   string    `json:"email"`
	FirstName               string    `json:"first_name"`
	LastName                string    `json:"last_name"`
	Role                    string    `json:"role"`
	Status                  string    `json:"status"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
	OrganizationMemberships []struct {
		OrganizationID string `json:"organization_id"`
		Role           string `json:"role"`
	} `json:"organization_memberships"`
}

// mapUser flattens the backend payload into the User shape. The FIRST
// organization membership's role is authoritative; users belonging to several
// organizations with different roles get the first one. This mirrors the
// backend's single-organization-context assumption and is flagged for product
// clarification rather than corrected here. A top-level role field is used
// only when no membership exists, and anything unrecognized collapses to the
// viewer role.
func mapUser(p userPayload) User {
	rawRole := p.Role
	if len(p.OrganizationMemberships) > 0 {
		rawRole = p.OrganizationMemberships[0].Role
	}

	return User{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      rbac.ToRole(rawRole),
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
