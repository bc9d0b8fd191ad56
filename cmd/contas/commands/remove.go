package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [cpf]",
		Short: "Remove an account by CPF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := db.RemoveByCPF(args[0])
			if err != nil {
				return err
			}
			if removed == nil {
				fmt.Printf("No account with CPF %s\n", args[0])
				return nil
			}
			fmt.Printf("Account %q removed\n", removed.Username)
			return nil
		},
	}
}
