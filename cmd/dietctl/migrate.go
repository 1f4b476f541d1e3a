package main

import (
	"github.com/spf13/cobra"

	"lg/diet-tracker-api/internal/migrate"
)

func newMigrateCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			conn, err := connect(ctx)
			if err != nil {
				return err
			}
			defer conn.Close(ctx)

			out := cmd.OutOrStdout()
			ran, err := migrate.Apply(ctx, conn, dir, out)
			if err != nil {
				return err
			}
			if ran == 0 {
				cmd.Println("No pending migrations.")
			} else {
				cmd.Printf("\n%d migration(s) applied.\n", ran)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "db", "directory holding the *.sql migration files")
	return cmd
}
