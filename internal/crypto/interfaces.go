// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing hashes and
// checks candidates against them. Hashes carry their own salt and cost
// parameters, so changing the parameters never invalidates stored hashes.
type PasswordHasher interface {
	// Hash returns an encoded argon2id hash of password with a fresh
	// random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed
	// encoded value is an error, a mismatch is (false, nil).
	Verify(password, encoded string) (bool, error)
}
