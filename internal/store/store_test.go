package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contas/internal/account"
)

type StoreSuite struct {
	suite.Suite
	path string
	st   *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "accounts.json")
	st, err := Open(s.path)
	s.Require().NoError(err)
	s.st = st
}

// newAccount builds a valid account; username and cpf vary per caller so
// uniqueness checks can be exercised.
func (s *StoreSuite) newAccount(username, cpf string) *account.Account {
	acc, err := account.New(account.Params{
		Username:   username,
		GivenName:  "Ana",
		FamilyName: "Silva",
		CPF:        cpf,
		BirthDate:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Email:      "ana@x.com",
		Password:   "senha123",
	})
	s.Require().NoError(err)
	return acc
}

func (s *StoreSuite) TestOpenCreatesEmptyFile() {
	_, err := os.Stat(s.path)
	s.Require().NoError(err)
	s.Empty(s.st.List())
	s.Zero(s.st.Len())
}

func (s *StoreSuite) TestAddAndLookups() {
	acc := s.newAccount("ana123", "123.456.789-09")
	s.Require().NoError(s.st.Add(acc))

	s.Run("by cpf", func() {
		found := s.st.GetByCPF("123.456.789-09")
		s.Require().NotNil(found)
		s.Equal("ana123", found.Username)
	})

	s.Run("by username", func() {
		found := s.st.GetByUsername("ana123")
		s.Require().NotNil(found)
		s.Equal("123.456.789-09", found.CPF)
	})

	s.Run("by id", func() {
		found := s.st.GetByID(acc.ID)
		s.Require().NotNil(found)
		s.Equal("ana123", found.Username)
	})

	s.Run("unknown keys return nil", func() {
		s.Nil(s.st.GetByCPF("000.000.000-00"))
		s.Nil(s.st.GetByUsername("nobody"))
		s.Nil(s.st.GetByID(acc.ID + 1))
	})
}

func (s *StoreSuite) TestDuplicateCPF() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))

	err := s.st.Add(s.newAccount("bia456", "123.456.789-09"))
	s.Require().ErrorIs(err, ErrDuplicateCPF)
	s.Equal(1, s.st.Len())
}

func (s *StoreSuite) TestDuplicateUsername() {
	s.Require().NoError(s.st.Signup(s.newAccount("ana123", "123.456.789-09")))

	err := s.st.Signup(s.newAccount("ana123", "987.654.321-00"))
	s.Require().ErrorIs(err, ErrDuplicateUsername)
	s.Equal(1, s.st.Len())
}

func (s *StoreSuite) TestListKeepsInsertionOrder() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))
	s.Require().NoError(s.st.Add(s.newAccount("bia456", "987.654.321-00")))
	s.Require().NoError(s.st.Add(s.newAccount("caio789", "111.222.333-44")))

	var usernames []string
	for _, acc := range s.st.List() {
		usernames = append(usernames, acc.Username)
	}
	s.Equal([]string{"ana123", "bia456", "caio789"}, usernames)
}

func (s *StoreSuite) TestRoundTrip() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))
	s.Require().NoError(s.st.Add(s.newAccount("bia456", "987.654.321-00")))

	reopened, err := Open(s.path)
	s.Require().NoError(err)

	accounts := reopened.List()
	s.Require().Len(accounts, 2)
	s.Equal("ana123", accounts[0].Username)
	s.Equal("bia456", accounts[1].Username)
	s.True(accounts[0].VerifyPassword("senha123"))
}

func (s *StoreSuite) TestRemoveByCPF() {
	acc := s.newAccount("ana123", "123.456.789-09")
	s.Require().NoError(s.st.Add(acc))

	removed, err := s.st.RemoveByCPF("123.456.789-09")
	s.Require().NoError(err)
	s.Require().NotNil(removed)
	s.Equal("ana123", removed.Username)
	s.Nil(s.st.GetByCPF("123.456.789-09"))

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.Empty(reopened.List())
}

func (s *StoreSuite) TestRemoveMissingStillPersists() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))
	before, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	// Delete the file out from under the store so the unconditional persist
	// is observable: the remove must recreate it with unchanged content.
	s.Require().NoError(os.Remove(s.path))

	removed, err := s.st.RemoveByCPF("000.000.000-00")
	s.Require().NoError(err)
	s.Nil(removed)

	after, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.JSONEq(string(before), string(after))
}

func (s *StoreSuite) TestMalformedFileKeepsState() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))

	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0600))
	s.Require().NoError(s.st.Reload())

	accounts := s.st.List()
	s.Require().Len(accounts, 1)
	s.Equal("ana123", accounts[0].Username)
}

func (s *StoreSuite) TestNullEntriesInFileAreSkipped() {
	s.Require().NoError(os.WriteFile(s.path, []byte("[null]"), 0600))

	st, err := Open(s.path)
	s.Require().NoError(err)
	s.Empty(st.List())

	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))

	// A null entry next to a real record must not take the record with it.
	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Require().NoError(os.WriteFile(s.path, append([]byte("[null,"), data[1:]...), 0600))

	s.Require().NoError(s.st.Reload())
	accounts := s.st.List()
	s.Require().Len(accounts, 1)
	s.Equal("ana123", accounts[0].Username)
}

func (s *StoreSuite) TestReloadSeesExternalWrites() {
	other, err := Open(s.path)
	s.Require().NoError(err)
	s.Require().NoError(other.Add(s.newAccount("ana123", "123.456.789-09")))

	found := s.st.GetByCPF("123.456.789-09")
	s.Require().NotNil(found)
	s.Equal("ana123", found.Username)
}

func (s *StoreSuite) TestWithoutReloadOnRead() {
	st, err := Open(s.path, WithoutReloadOnRead())
	s.Require().NoError(err)

	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))

	s.Nil(st.GetByCPF("123.456.789-09"))
	s.Require().NoError(st.Reload())
	s.NotNil(st.GetByCPF("123.456.789-09"))
}

func (s *StoreSuite) TestUpdatePassword() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))

	s.Run("changes and persists", func() {
		s.Require().NoError(s.st.UpdatePassword("123.456.789-09", "novasenha9"))

		reopened, err := Open(s.path)
		s.Require().NoError(err)
		acc := reopened.GetByCPF("123.456.789-09")
		s.Require().NotNil(acc)
		s.True(acc.VerifyPassword("novasenha9"))
		s.False(acc.VerifyPassword("senha123"))
	})

	s.Run("unknown cpf", func() {
		err := s.st.UpdatePassword("000.000.000-00", "novasenha9")
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("weak password", func() {
		err := s.st.UpdatePassword("123.456.789-09", "short")
		s.Require().ErrorIs(err, account.ErrWeakPassword)
	})
}

func (s *StoreSuite) TestBackup() {
	s.Require().NoError(s.st.Add(s.newAccount("ana123", "123.456.789-09")))

	dest := filepath.Join(s.T().TempDir(), "backup.json")
	s.Require().NoError(s.st.Backup(dest))

	original, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	copied, err := os.ReadFile(dest)
	s.Require().NoError(err)
	s.Equal(original, copied)
}
