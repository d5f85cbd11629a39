package seeder

import (
	"context"
	"fmt"

	"roombook/config"
	userModel "roombook/internal/domains/user/model"
	userDto "roombook/internal/domains/user/model/dto"
	userRepository "roombook/internal/domains/user/repository"
	gDto "roombook/shared/dto"
	"roombook/shared/password"

	"github.com/rs/zerolog/log"
)

// demoPassword is shared by every seeded account. Seeding only ever runs
// in the development environment.
const demoPassword = "Password123!"

type demoUser struct {
	FullName string
	Email    string
	Role     string
}

var demoUsers = []demoUser{
	{FullName: "Campus Admin", Email: "admin@campus.local", Role: "Admin"},
	{FullName: "Dina Lestari", Email: "dina.lestari@campus.local", Role: "User"},
	{FullName: "Raka Pratama", Email: "raka.pratama@campus.local", Role: "User"},
}

type Seeder struct {
	cfg   *config.Config
	users userRepository.User
}

func New(cfg *config.Config, users userRepository.User) *Seeder {
	return &Seeder{
		cfg:   cfg,
		users: users,
	}
}

// SeedDemoUsers inserts the demo accounts unless they already exist.
// Outside development this is a no-op.
func (s *Seeder) SeedDemoUsers(ctx context.Context) error {
	if !s.cfg.IsDevelopment() {
		return nil
	}

	for _, demo := range demoUsers {
		exists, err := s.users.Exist(ctx, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldEmail,
					Operator: gDto.FilterOperatorEq,
					Value:    demo.Email,
					Table:    userModel.TableName,
				},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to check seeded user %s: %w", demo.Email, err)
		}

		if exists {
			continue
		}

		hashedPassword, err := password.Hash(demoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		req := userDto.CreateUserRequest{
			FullName: demo.FullName,
			Email:    demo.Email,
			Password: demoPassword,
			Role:     demo.Role,
		}

		if err := s.users.Insert(ctx, req.ToModel(hashedPassword)); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", demo.Email, err)
		}

		log.Info().Str("email", demo.Email).Msg("Seeded demo user")
	}

	return nil
}
