package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	user := &User{Password: "secret123"}

	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "secret123", user.Password)

	assert.True(t, user.ComparePassword("secret123"))
	assert.False(t, user.ComparePassword("wrong-password"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("citizen"))
	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("Admin"))
}
