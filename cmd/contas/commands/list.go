package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts := db.List()
			if len(accounts) == 0 {
				fmt.Println("No accounts found.")
				return nil
			}

			fmt.Printf("%-20s %-25s %-15s %s\n", "Username", "Name", "CPF", "Email")
			fmt.Println(strings.Repeat("-", 80))
			for _, acc := range accounts {
				fmt.Printf("%-20s %-25s %-15s %s\n",
					acc.Username,
					acc.GivenName+" "+acc.FamilyName,
					acc.CPF,
					acc.Email,
				)
			}
			fmt.Printf("%d account(s)\n", len(accounts))
			return nil
		},
	}
}
