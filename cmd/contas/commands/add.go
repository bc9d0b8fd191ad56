package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"contas/internal/account"
)

func addCmd() *cobra.Command {
	var (
		address  string
		cep      string
		password string
	)

	cmd := &cobra.Command{
		Use:   "add [username] [given-name] [family-name] [cpf] [birth-date] [email]",
		Short: "Register a new account",
		Long: `Register a new account. The CPF must match NNN.NNN.NNN-NN, the birth
date must be YYYY-MM-DD and the password needs at least 8 characters with a
digit and a letter. Unless --password is given, the password is prompted for
and never echoed.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := time.Parse("2006-01-02", args[4])
			if err != nil {
				return fmt.Errorf("birth date must be YYYY-MM-DD: %w", err)
			}

			if password == "" {
				if password, err = promptNewPassword(); err != nil {
					return err
				}
			}

			acc, err := account.New(account.Params{
				Username:   args[0],
				GivenName:  args[1],
				FamilyName: args[2],
				CPF:        args[3],
				BirthDate:  birth,
				Email:      args[5],
				Password:   password,
				Address:    address,
				CEP:        cep,
			})
			if err != nil {
				return err
			}

			if err := db.Signup(acc); err != nil {
				return err
			}
			fmt.Printf("Account %q registered (id %d)\n", acc.Username, acc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "street address")
	cmd.Flags().StringVar(&cep, "cep", "", "postal code (NNNNN-NNN)")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}
