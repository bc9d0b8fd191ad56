package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"contas/internal/account"
)

func showCmd() *cobra.Command {
	var (
		cpf      string
		username string
		id       uint64
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Look up one account by CPF, username or id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var acc *account.Account
			switch {
			case cpf != "":
				acc = db.GetByCPF(cpf)
			case username != "":
				acc = db.GetByUsername(username)
			case id != 0:
				acc = db.GetByID(id)
			default:
				return errors.New("one of --cpf, --username or --id is required")
			}

			if acc == nil {
				fmt.Println("Account not found.")
				return nil
			}

			fmt.Printf("Username:   %s\n", acc.Username)
			fmt.Printf("Name:       %s %s\n", acc.GivenName, acc.FamilyName)
			fmt.Printf("CPF:        %s\n", acc.CPF)
			fmt.Printf("Email:      %s\n", acc.Email)
			fmt.Printf("Birth date: %s\n", acc.BirthDate.Format("2006-01-02"))
			if acc.Address != "" {
				fmt.Printf("Address:    %s\n", acc.Address)
			}
			if acc.CEP != "" {
				fmt.Printf("CEP:        %s\n", acc.CEP)
			}
			fmt.Printf("ID:         %d\n", acc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&cpf, "cpf", "", "look up by CPF")
	cmd.Flags().StringVar(&username, "username", "", "look up by username")
	cmd.Flags().Uint64Var(&id, "id", 0, "look up by numeric id")
	return cmd
}
