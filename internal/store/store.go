package store

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"os"
	"sync"

	"contas/internal/account"
)

// DefaultFile is the database file name used when the caller supplies none.
const DefaultFile = "Usuários.json"

// Business-rule failures returned by Add.
var (
	ErrDuplicateCPF      = errors.New("an account with this cpf already exists")
	ErrDuplicateUsername = errors.New("an account with this username already exists")
)

// ErrNotFound is returned by operations that require an existing account.
var ErrNotFound = errors.New("account not found")

// Store keeps accounts in memory keyed by CPF and mirrors every mutation to a
// JSON file. By default each operation reloads from the file first, so writes
// made by another process through the same file are observed; disable that
// with WithoutReloadOnRead when the store is the only writer.
type Store struct {
	mu           sync.RWMutex
	accounts     map[string]*account.Account
	order        []string // CPFs in insertion order
	path         string
	reloadOnRead bool
}

// Option configures a Store at open time.
type Option func(*Store)

// WithoutReloadOnRead disables the implicit file reload before each
// operation. Lookups then serve the in-memory state, which is deterministic
// and avoids re-reading the file on every call.
func WithoutReloadOnRead() Option {
	return func(s *Store) { s.reloadOnRead = false }
}

// Open returns a Store backed by path, creating an empty database file when
// none exists. An empty path selects DefaultFile in the working directory.
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		path = DefaultFile
	}
	s := &Store{
		accounts:     make(map[string]*account.Account),
		path:         path,
		reloadOnRead: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory state with the file's contents. A missing
// file is created empty and the current state kept; content that does not
// decode as a record list is ignored with a warning.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked()
}

func (s *Store) reloadLocked() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s.persistLocked()
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var records []*account.Account
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("store: ignoring malformed database file %s: %v", s.path, err)
		return nil
	}

	accounts := make(map[string]*account.Account, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		// A hand-edited file can carry null entries; they decode as nil
		// records and have no key to index by.
		if rec == nil || rec.CPF == "" {
			continue
		}
		if _, ok := accounts[rec.CPF]; ok {
			continue
		}
		accounts[rec.CPF] = rec
		order = append(order, rec.CPF)
	}
	s.accounts = accounts
	s.order = order
	return nil
}

// refreshLocked runs the implicit pre-operation reload. Reload failures here
// keep the cached state, matching the file-absent and malformed-file paths.
func (s *Store) refreshLocked() {
	if !s.reloadOnRead {
		return
	}
	if err := s.reloadLocked(); err != nil {
		log.Printf("store: reload failed, keeping cached state: %v", err)
	}
}

// Persist rewrites the database file from the in-memory state.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

// persistLocked serialises all records in insertion order and swaps the file
// into place with a rename so readers never see a partial write.
func (s *Store) persistLocked() error {
	records := make([]*account.Account, 0, len(s.order))
	for _, cpf := range s.order {
		records = append(records, s.accounts[cpf])
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Add inserts acc keyed by its CPF and persists. It fails with
// ErrDuplicateCPF or ErrDuplicateUsername when another account already holds
// that identity.
func (s *Store) Add(acc *account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()

	if _, ok := s.accounts[acc.CPF]; ok {
		return ErrDuplicateCPF
	}
	if s.findByUsernameLocked(acc.Username) != nil {
		return ErrDuplicateUsername
	}

	s.accounts[acc.CPF] = acc
	s.order = append(s.order, acc.CPF)

	if err := s.persistLocked(); err != nil {
		// Rollback so memory and file stay in step.
		delete(s.accounts, acc.CPF)
		s.order = s.order[:len(s.order)-1]
		return err
	}
	return nil
}

// Signup registers a new account. It is the registration-flow name for Add.
func (s *Store) Signup(acc *account.Account) error {
	return s.Add(acc)
}

// GetByCPF returns the account with the given CPF, or nil when absent.
// This is the efficient lookup; the CPF is the map key.
func (s *Store) GetByCPF(cpf string) *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return s.accounts[cpf]
}

// GetByUsername returns the account with the given username, or nil.
func (s *Store) GetByUsername(username string) *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return s.findByUsernameLocked(username)
}

func (s *Store) findByUsernameLocked(username string) *account.Account {
	for _, cpf := range s.order {
		if acc := s.accounts[cpf]; acc.Username == username {
			return acc
		}
	}
	return nil
}

// GetByID returns the account with the given derived numeric id, or nil.
func (s *Store) GetByID(id uint64) *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	for _, cpf := range s.order {
		if acc := s.accounts[cpf]; acc.ID == id {
			return acc
		}
	}
	return nil
}

// List returns all accounts in insertion order.
func (s *Store) List() []*account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	out := make([]*account.Account, 0, len(s.order))
	for _, cpf := range s.order {
		out = append(out, s.accounts[cpf])
	}
	return out
}

// Len returns the number of stored accounts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()
	return len(s.accounts)
}

// RemoveByCPF deletes the account with the given CPF and persists. The file
// is rewritten even when nothing was removed. It returns the removed account,
// or nil when no account had that CPF.
func (s *Store) RemoveByCPF(cpf string) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()

	removed := s.accounts[cpf]
	if removed != nil {
		delete(s.accounts, cpf)
		for i, key := range s.order {
			if key == cpf {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}

	if err := s.persistLocked(); err != nil {
		return removed, err
	}
	return removed, nil
}

// UpdatePassword changes the password of the account with the given CPF and
// persists. The new password must satisfy the registration strength rule.
func (s *Store) UpdatePassword(cpf, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked()

	acc, ok := s.accounts[cpf]
	if !ok {
		return ErrNotFound
	}
	if err := acc.SetPassword(password); err != nil {
		return err
	}
	return s.persistLocked()
}

// Backup copies the database file to backupPath.
func (s *Store) Backup(backupPath string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
