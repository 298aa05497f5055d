package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatorCollectsErrors(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(true, "description", "must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["title"])
	assert.NotContains(t, v.Errors, "description")
}

func TestFirstErrorPerFieldWins(t *testing.T) {
	v := New()
	v.AddError("email", "must be provided")
	v.AddError("email", "must be a valid email address")

	assert.Equal(t, "must be provided", v.Errors["email"])
}

func TestEmailRX(t *testing.T) {
	valid := []string{"alice@example.com", "bob.smith+tag@sub.example.co.uk"}
	for _, email := range valid {
		assert.True(t, Matches(email, EmailRX), email)
	}

	invalid := []string{"", "not-an-email", "@example.com", "alice@"}
	for _, email := range invalid {
		assert.False(t, Matches(email, EmailRX), email)
	}
}

func TestUsernameRX(t *testing.T) {
	assert.True(t, Matches("alice_99", UsernameRX))
	assert.False(t, Matches("alice smith", UsernameRX))
	assert.False(t, Matches("alice!", UsernameRX))
	assert.False(t, Matches("", UsernameRX))
}

func TestIn(t *testing.T) {
	assert.True(t, In("Book", "Book", "Movie", "Game"))
	assert.False(t, In("Podcast", "Book", "Movie", "Game"))
}
