package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"hotel/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const sourceURL = "file://migrations/postgres"

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
	ActionForce   = "force"
)

var ErrUnknownAction = errors.New("unknown migration action")

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// DatabaseURL builds the golang-migrate connection string for the write replica.
func DatabaseURL(config *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		getDBName(config, config.DB.Postgres.Write.Name),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(sourceURL, DatabaseURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func ignoreNoChange(err error) error {
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return err
}

// Runner executes a migration action. force takes the target version as its argument.
func Runner(config *config.Config, action string, args ...string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		if err := ignoreNoChange(mig.Up()); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")
	case ActionDown:
		if err := ignoreNoChange(mig.Steps(-1)); err != nil {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")
	case ActionStepUp:
		if err := ignoreNoChange(mig.Steps(1)); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")
	case ActionDrop:
		if err := ignoreNoChange(mig.Down()); err != nil {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")
	case ActionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current database migration version")
	case ActionForce:
		if len(args) == 0 {
			return errors.New("force requires a target version")
		}

		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}

		if err := mig.Force(version); err != nil {
			return fmt.Errorf("error forcing migration version: %w", err)
		}

		log.Info().Int("version", version).Msg("Database migration version forced")
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
