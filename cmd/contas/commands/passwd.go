package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func passwdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd [cpf]",
		Short: "Change an account's password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptNewPassword()
			if err != nil {
				return err
			}
			if err := db.UpdatePassword(args[0], password); err != nil {
				return err
			}
			fmt.Println("Password changed.")
			return nil
		},
	}
}
