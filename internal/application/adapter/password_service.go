// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and checks back-office account passwords.
type PasswordService interface {
	// HashPassword derives a storable hash from a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether the plain text password matches the hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum policy.
	ValidatePasswordStrength(password string) error
}
