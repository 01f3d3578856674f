package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("alice"))
	assert.True(t, ValidUsername("alice_42"))
	assert.True(t, ValidUsername("Bob123"))

	assert.False(t, ValidUsername("al"))                                 // too short
	assert.False(t, ValidUsername(strings.Repeat("a", UsernameMaxLength+1))) // too long
	assert.False(t, ValidUsername("alice smith"))
	assert.False(t, ValidUsername("alice-42"))
	assert.False(t, ValidUsername("alice@x"))
	assert.False(t, ValidUsername(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.example.org"))

	assert.False(t, ValidEmail("alice"))
	assert.False(t, ValidEmail("alice@"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("alice@example"))
	assert.False(t, ValidEmail(""))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("secret"))
	assert.True(t, ValidPassword("a longer passphrase"))

	assert.False(t, ValidPassword("short"))
	assert.False(t, ValidPassword(""))
}
