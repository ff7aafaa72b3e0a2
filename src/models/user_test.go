package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdminister(t *testing.T) {
	assert.False(t, CanAdminister(nil))
	assert.False(t, CanAdminister(&User{}))
	assert.False(t, CanAdminister(&User{ID: 4, Username: "resident"}))
	assert.False(t, CanAdminister(&User{IsAdmin: true}), "unsaved user must not administer")
	assert.True(t, CanAdminister(&User{ID: 1, Username: "chair", IsAdmin: true}))
}
