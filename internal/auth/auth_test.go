package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stylepins/internal/models"
)

func TestAuthenticatePlain(t *testing.T) {
	settings := models.Settings{Password: "admin"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "valid credentials", username: "admin", password: "admin", want: true},
		{name: "wrong password", username: "admin", password: "Admin", want: false},
		{name: "wrong username", username: "root", password: "admin", want: false},
		{name: "username not trimmed", username: " admin", password: "admin", want: false},
		{name: "password not trimmed", username: "admin", password: "admin ", want: false},
		{name: "uppercase username", username: "ADMIN", password: "admin", want: false},
		{name: "empty both", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authenticate(tt.username, tt.password, settings))
		})
	}
}

func TestAuthenticateEmptyStoredPassword(t *testing.T) {
	// An empty stored password matches only an empty candidate.
	settings := models.Settings{}
	assert.True(t, Authenticate("admin", "", settings))
	assert.False(t, Authenticate("admin", "x", settings))
}

func TestAuthenticateBcrypt(t *testing.T) {
	hash, err := BcryptHasher{Cost: bcrypt.MinCost}.Hash("s3cret")
	require.NoError(t, err)

	settings := models.Settings{Password: hash, PasswordScheme: SchemeBcrypt}
	assert.True(t, Authenticate("admin", "s3cret", settings))
	assert.False(t, Authenticate("admin", "wrong", settings))
	assert.False(t, Authenticate("admin", hash, settings), "the hash itself is not the password")
}

func TestVerifierFor(t *testing.T) {
	hash, err := BcryptHasher{Cost: bcrypt.MinCost}.Hash("pw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		settings models.Settings
		want     Verifier
	}{
		{name: "bcrypt scheme", settings: models.Settings{Password: hash, PasswordScheme: SchemeBcrypt}, want: BcryptVerifier("")},
		{name: "plain scheme", settings: models.Settings{Password: "pw"}, want: PlainVerifier("")},
		{name: "hash stored as plain", settings: models.Settings{Password: hash}, want: PlainVerifier("")},
		{name: "unknown scheme", settings: models.Settings{Password: "pw", PasswordScheme: "argon2"}, want: rejectAll{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, VerifierFor(tt.settings))
		})
	}
}

func TestAuthenticateHashShapedPlainPassword(t *testing.T) {
	// A plain password that happens to look like a bcrypt hash still
	// compares by exact equality.
	hash, err := BcryptHasher{Cost: bcrypt.MinCost}.Hash("other")
	require.NoError(t, err)

	settings := models.Settings{Password: hash}
	assert.True(t, Authenticate("admin", hash, settings))
	assert.False(t, Authenticate("admin", "other", settings))
}

func TestAuthenticateUnknownScheme(t *testing.T) {
	settings := models.Settings{Password: "pw", PasswordScheme: "argon2"}
	assert.False(t, Authenticate("admin", "pw", settings))
}

func TestBcryptHasherScheme(t *testing.T) {
	assert.Equal(t, SchemeBcrypt, BcryptHasher{}.Scheme())
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	hash, err := BcryptHasher{}.Hash("x")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasherTooLong(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	_, err := BcryptHasher{Cost: bcrypt.MinCost}.Hash(string(long))
	assert.Error(t, err, "bcrypt rejects passwords over 72 bytes")
}
