package auth

import (
	"testing"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	owner := Actor{ID: 5, Role: "Docente"}
	stranger := Actor{ID: 6, Role: "Docente"}
	admin := Actor{ID: 7, Role: model.RoleAdmin}
	super := Actor{ID: 8, Role: model.RoleSuperAdmin}

	assert.True(t, CanModify(owner, 5), "owners modify their own resources")
	assert.False(t, CanModify(stranger, 5))
	assert.True(t, CanModify(admin, 5), "moderators modify anything")
	assert.True(t, CanModify(super, 5))
}

func TestCanListUsers(t *testing.T) {
	allow := []uint{1, 9}

	assert.True(t, CanListUsers(Actor{ID: 1, Role: model.RoleAdmin}, allow))
	assert.True(t, CanListUsers(Actor{ID: 9, Role: model.RoleAdmin}, allow))
	assert.False(t, CanListUsers(Actor{ID: 2, Role: model.RoleAdmin}, allow), "role alone is not enough")
	assert.False(t, CanListUsers(Actor{ID: 1, Role: "Docente"}, allow), "allow-list alone is not enough")
	assert.False(t, CanListUsers(Actor{ID: 1, Role: model.RoleSuperAdmin}, allow), "the gate checks the exact role")
	assert.False(t, CanListUsers(Actor{ID: 1, Role: model.RoleAdmin}, nil))
}
