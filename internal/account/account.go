package account

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"hash/fnv"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	cpfPattern   = regexp.MustCompile(`^[0-9]{3}\.[0-9]{3}\.[0-9]{3}-[0-9]{2}$`)
	cepPattern   = regexp.MustCompile(`^[0-9]{5}-[0-9]{3}$`)
	emailPattern = regexp.MustCompile(`^[\w.]+@[\w.]+$`)
)

// Validation failures returned by New and SetPassword.
var (
	ErrInvalidCPF   = errors.New("cpf must match NNN.NNN.NNN-NN")
	ErrInvalidCEP   = errors.New("cep must match NNNNN-NNN")
	ErrInvalidEmail = errors.New("email must be local@domain")
	ErrWeakPassword = errors.New("password must have at least 8 characters, a digit and a letter")
)

// Account represents one user of the ecommerce backend.
//
// The plaintext password is never stored. PasswordHash holds a bcrypt hash of
// an HMAC-SHA512 digest keyed by the account's CPF, so a leaked hash cannot be
// replayed against another account even if two users share a password.
type Account struct {
	Username     string    `json:"username"`
	GivenName    string    `json:"given_name"`
	FamilyName   string    `json:"family_name"`
	CPF          string    `json:"cpf"`
	Address      string    `json:"address,omitempty"`
	CEP          string    `json:"cep,omitempty"`
	BirthDate    time.Time `json:"birth_date"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"password_hash"`
	ID           uint64    `json:"id"`
}

// Params carries the caller-supplied fields for New.
// Address and CEP are optional; everything else is required.
type Params struct {
	Username   string
	GivenName  string
	FamilyName string
	CPF        string
	BirthDate  time.Time
	Email      string
	Password   string
	Address    string
	CEP        string
}

// New validates p and returns a fully initialised account.
//
// Validation runs in order: CPF, CEP (only when supplied), email, password
// strength. The first failure aborts construction and the returned error is
// one of the sentinel values above, so callers can tell which rule failed.
func New(p Params) (*Account, error) {
	if !cpfPattern.MatchString(p.CPF) {
		return nil, ErrInvalidCPF
	}
	if p.CEP != "" && !cepPattern.MatchString(p.CEP) {
		return nil, ErrInvalidCEP
	}
	if !emailPattern.MatchString(p.Email) {
		return nil, ErrInvalidEmail
	}

	a := &Account{
		Username:   p.Username,
		GivenName:  p.GivenName,
		FamilyName: p.FamilyName,
		CPF:        p.CPF,
		Address:    p.Address,
		CEP:        p.CEP,
		BirthDate:  p.BirthDate,
		Email:      p.Email,
	}
	if err := a.SetPassword(p.Password); err != nil {
		return nil, err
	}
	a.ID = deriveID(time.Now(), a.CPF, a.Username)
	return a, nil
}

// SetPassword re-derives the stored hash from a new plaintext password.
// The same strength rule as New applies here as well.
func (a *Account) SetPassword(password string) error {
	if !strongPassword(password) {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword(a.keyedDigest(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

// VerifyPassword reports whether password matches the stored hash. The
// comparison goes through bcrypt, which re-derives the salt from the stored
// hash and compares in constant time.
func (a *Account) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, a.keyedDigest(password)) == nil
}

// keyedDigest binds the password to this account before the adaptive hash:
// HMAC-SHA512 with the CPF as key and the password as message. The fixed
// 64-byte digest also stays inside bcrypt's 72-byte input limit regardless of
// password length.
func (a *Account) keyedDigest(password string) []byte {
	mac := hmac.New(sha512.New, []byte(a.CPF))
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

// strongPassword enforces the registration password rule: at least 8
// characters with at least one ASCII digit and one ASCII letter.
func strongPassword(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}
	var digit, letter bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		}
	}
	return digit && letter
}

// deriveID hashes (timestamp, cpf, username) with FNV-1a. The result is
// unique in practice, not by construction; the store never deduplicates ids.
func deriveID(now time.Time, cpf, username string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strconv.FormatInt(now.UnixNano(), 10)))
	h.Write([]byte(cpf))
	h.Write([]byte(username))
	return h.Sum64()
}
