package commands

import (
	"context"
	"errors"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/fixture"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the fixture users into the database",
	Long: `Insert every user from users.json through the regular user insert.
Users whose email already exists are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// userAdder is the part of the user repository seeding uses.
type userAdder interface {
	AddUser(ctx context.Context, u *model.NewUser) (*model.User, error)
}

func runSeed(ctx context.Context) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	store, err := fixture.Load(rt.cfg.Fixtures.Dir)
	if err != nil {
		return err
	}

	db, err := database.New(ctx, rt.cfg, &rt.log, rt.loggerService)
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, skipped, err := seedUsers(ctx, repository.NewUserRepository(db.Pool, &rt.log), store.Users(), &rt.log)
	if err != nil {
		return err
	}

	rt.log.Info().Int("inserted", inserted).Int("skipped", skipped).Msg("seeded users")
	return nil
}

func seedUsers(ctx context.Context, users userAdder, fixtures []model.User, log *zerolog.Logger) (inserted, skipped int, err error) {
	for _, u := range fixtures {
		_, err := users.AddUser(ctx, &model.NewUser{Name: u.Name, Email: u.Email, Password: u.Password})
		switch {
		case errors.Is(err, errs.ErrUserAlreadyExists):
			log.Debug().Str("email", u.Email).Msg("user already exists, skipping")
			skipped++
		case err != nil:
			return inserted, skipped, err
		default:
			inserted++
		}
	}
	return inserted, skipped, nil
}
