package commands

import (
	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the LightBnB schema",
	Long: `Apply the embedded schema migrations (users, properties, reservations,
property_reviews) to the configured database. Already applied versions are
skipped, so the command is safe to re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		return database.Migrate(cmd.Context(), &rt.log, rt.cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
