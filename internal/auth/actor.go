// Package auth holds the authorization rules applied after the JWT
// middleware has verified the caller's identity. Services receive an opaque
// Actor — never raw headers or tokens.
package auth

import "github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

// Actor is the authenticated identity making a request, built from verified
// JWT claims by middleware.JWTAuth.
type Actor struct {
	ID   uint
	Role string
}

// IsModerator reports whether the actor's role grants moderation rights
// over any resource regardless of ownership.
func (a Actor) IsModerator() bool {
	return a.Role == model.RoleAdmin || a.Role == model.RoleSuperAdmin
}

// CanModify decides whether the actor may mutate a resource owned by
// authorID: owners always can, moderators can for any resource.
func CanModify(actor Actor, authorID uint) bool {
	return actor.ID == authorID || actor.IsModerator()
}

// CanListUsers gates the user listing: Administrador role AND membership in
// the bootstrap-admin allow-list. The legacy system hard-coded user id 1
// here; the allow-list makes that explicit and configurable.
func CanListUsers(actor Actor, bootstrapIDs []uint) bool {
	if actor.Role != model.RoleAdmin {
		return false
	}
	for _, id := range bootstrapIDs {
		if actor.ID == id {
			return true
		}
	}
	return false
}
