package navigation

import (
	"github.com/maintboard/cmmskit/pkg/authsession"
	"github.com/maintboard/cmmskit/pkg/rbac"
)

// Visibility decides whether a navigation entry is shown to a session.
type Visibility func(session authsession.Session) bool

// Anyone shows the entry to everyone, including anonymous visitors.
func Anyone() Visibility {
	return func(authsession.Session) bool { return true }
}

// Authenticated shows the entry to any authenticated user.
func Authenticated() Visibility {
	return func(s authsession.Session) bool { return s.IsAuthenticated }
}

// Roles shows the entry to authenticated users whose role matches one of the
// given roles.
func Roles(roles ...rbac.Role) Visibility {
	return func(s authsession.Session) bool {
		if !s.IsAuthenticated || s.User == nil {
			return false
		}
		for _, role := range roles {
			if s.User.Role == role {
				return true
			}
		}
		return false
	}
}

// Permitted shows the entry to authenticated users whose role is granted the
// permission.
func Permitted(permission rbac.Permission) Visibility {
	return func(s authsession.Session) bool {
		if !s.IsAuthenticated || s.User == nil {
			return false
		}
		return rbac.HasPermission(s.User.Role, permission)
	}
}

// Item is one navigation entry. The ID is stable and unique within a
// registry; per-entry visibility is static wiring decided at registration.
type Item struct {
	ID      string
	Label   string
	Path    string
	Icon    string
	Visible Visibility
}

// Registry holds the application's navigation entries in display order.
type Registry struct {
	items []Item
}

// NewRegistry creates a registry from the given items, keeping order.
func NewRegistry(items ...Item) *Registry {
	return &Registry{items: items}
}

// Visible returns the entries the session may see, in registration order.
// Entries without a visibility predicate are treated as authenticated-only,
// so a forgotten predicate fails closed instead of leaking an entry.
func (r *Registry) Visible(session authsession.Session) []Item {
	visible := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		predicate := item.Visible
		if predicate == nil {
			predicate = Authenticated()
		}
		if predicate(session) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Lookup returns the item with the given ID.
func (r *Registry) Lookup(id string) (Item, bool) {
	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
