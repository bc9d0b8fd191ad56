package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [destination]",
		Short: "Copy the database file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Backup(args[0]); err != nil {
				return err
			}
			fmt.Printf("Database backed up to %s\n", args[0])
			return nil
		},
	}
}
