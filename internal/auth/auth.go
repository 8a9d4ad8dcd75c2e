// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth is the admin login gate. Credentials are checked through a
// Verifier so the stored password can be plain text (the historical
// format) or a bcrypt hash without changing callers.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"stylepins/internal/models"
)

// AdminUsername is the single admin login name.
const AdminUsername = "admin"

// Password schemes recorded in Settings.PasswordScheme. The empty scheme is
// the historical plain-text format.
const (
	SchemePlain  = ""
	SchemeBcrypt = "bcrypt"
)

// Verifier checks a candidate password against a stored credential.
type Verifier interface {
	Verify(candidate string) bool
}

// Hasher turns a new password into the form stored in Settings.Password.
// Scheme names that form.
type Hasher interface {
	Hash(password string) (string, error)
	Scheme() string
}

var (
	_ Verifier = PlainVerifier("")
	_ Verifier = BcryptVerifier("")
	_ Verifier = rejectAll{}
	_ Hasher   = BcryptHasher{}
)

// PlainVerifier compares against a password stored as given.
type PlainVerifier string

// Verify reports exact equality. The comparison time does not depend on
// where the strings differ.
func (p PlainVerifier) Verify(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(p), []byte(candidate)) == 1
}

// BcryptVerifier compares against a bcrypt hash.
type BcryptVerifier string

// Verify reports whether candidate hashes to the stored value.
func (h BcryptVerifier) Verify(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h), []byte(candidate)) == nil
}

// BcryptHasher hashes passwords with bcrypt. A zero Cost means
// bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

// Hash returns the bcrypt hash of password.
func (b BcryptHasher) Hash(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Scheme returns SchemeBcrypt.
func (BcryptHasher) Scheme() string {
	return SchemeBcrypt
}

// rejectAll refuses every candidate. It guards passwords stored under a
// scheme this build does not know.
type rejectAll struct{}

func (rejectAll) Verify(string) bool { return false }

// VerifierFor picks the verifier for the scheme settings records. The
// password's shape is never consulted, so a plain password that looks like
// a hash still compares by exact equality.
func VerifierFor(settings models.Settings) Verifier {
	switch settings.PasswordScheme {
	case SchemePlain:
		return PlainVerifier(settings.Password)
	case SchemeBcrypt:
		return BcryptVerifier(settings.Password)
	}
	return rejectAll{}
}

// Authenticate succeeds iff username is the admin login and password
// matches the stored credential. No normalisation is applied to either.
func Authenticate(username, password string, settings models.Settings) bool {
	// Evaluate both so a wrong username costs the same as a wrong password.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(AdminUsername)) == 1
	passOK := VerifierFor(settings).Verify(password)
	return userOK && passOK
}
