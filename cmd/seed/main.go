// Command seed populates a development database with a few known accounts.
package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedUser struct {
	email    string
	name     string
	password string
	role     entity.Role
}

// The first account is promoted to admin so the elevated surface is usable
// right after seeding.
var seedUsers = []seedUser{
	{email: "user1@example.com", name: "User 1", password: "password1", role: entity.RoleAdmin},
	{email: "user2@example.com", name: "User 2", password: "password2", role: entity.RoleCustomer},
	{email: "user3@example.com", name: "User 3", password: "password3", role: entity.RoleCustomer},
	{email: "user4@example.com", name: "User 4", password: "password4", role: entity.RoleCustomer},
}

type seedParams struct {
	fx.In

	Shutdowner fx.Shutdowner
	TxManager  repository.TransactionManager
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			newPasswordHasher,
		),
		fx.Invoke(runSeed),
	).Run()
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(0)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func runSeed(ctx context.Context, params seedParams) {
	seeded := 0
	for _, candidate := range seedUsers {
		created, err := seedOne(ctx, params, candidate)
		if err != nil {
			params.Logger.Error("Failed to seed user",
				slog.String("email", candidate.email),
				slog.Any("error", err),
			)
			os.Exit(1)
		}
		if created {
			seeded++
		}
	}

	params.Logger.Info("Seeding finished",
		slog.Int("created", seeded),
		slog.Int("skipped", len(seedUsers)-seeded),
	)

	if err := params.Shutdowner.Shutdown(); err != nil {
		params.Logger.Error("Failed to shut down", slog.Any("error", err))
	}
}

// seedOne inserts one account with its credential. Existing accounts are
// left untouched so the command stays re-runnable.
func seedOne(ctx context.Context, params seedParams, candidate seedUser) (bool, error) {
	hash, err := params.Hasher.Hash(candidate.password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash seed password")
	}

	created := false
	err = params.TxManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		credentialRepo := repoFactory.NewCredentialRepository()

		if _, err := userRepo.FindByEmail(ctx, candidate.email); err == nil {
			return nil
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		user := &entity.User{
			Email: candidate.email,
			Name:  candidate.name,
			Role:  candidate.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create seed user")
		}

		credential := &entity.Credential{
			UserID:       user.ID,
			PasswordHash: hash,
		}
		if err := credentialRepo.Create(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create seed credential")
		}

		created = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}
