// Package account defines the validated user record for the contas store.
//
// Features:
//   - Field validation at construction: CPF, CEP, email and password strength
//   - Password hashing (HMAC-SHA512 keyed by CPF, then bcrypt with a random salt)
//   - Credential verification against the stored hash
//   - Derived numeric identifier for lookup by id
//
// Accounts are created with New, which returns a sentinel error identifying
// the first field that failed validation. A plaintext password is never kept
// on the record; only the bcrypt hash of the keyed digest is stored and
// persisted.
//
// This package is intended for use by the store package and administrative
// tools; callers outside this module interact with it through the store.
package account
