package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"roombook/infras/jwt"
	"roombook/infras/otel"
	"roombook/internal/domains/auth/model/dto"
	userModel "roombook/internal/domains/user/model"
	userDto "roombook/internal/domains/user/model/dto"
	userRepository "roombook/internal/domains/user/repository"
	"roombook/shared"
	"roombook/shared/cache"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	"roombook/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	msgEmailRegistered    = "Email is already registered"
	msgInvalidCredentials = "Invalid email or password"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	users userRepository.User
	jwt   jwt.JWT
	cache cache.RedisCache
	otel  otel.Otel
}

func New(users userRepository.User, jwt jwt.JWT, cache cache.RedisCache, otel otel.Otel) Auth {
	return &serviceImpl{
		users: users,
		jwt:   jwt,
		cache: cache,
		otel:  otel,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := shared.NormalizeEmail(req.Email)

	exists, err := s.users.Exist(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is registered")

		return res, fmt.Errorf("failed to check if email is registered: %w", err)
	}

	if exists {
		return res, failure.ConflictForField("Email", msgEmailRegistered) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	createReq := userDto.CreateUserRequest{
		FullName: req.FullName,
		Email:    email,
		Password: req.Password,
	}
	user := createReq.ToModel(hashedPassword)

	if err = s.users.Insert(ctx, user); err != nil {
		// The partial unique index closes the check-then-insert race.
		if shared.IsUniqueViolation(err) {
			return res, failure.ConflictForField("Email", msgEmailRegistered) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register user")

		return res, fmt.Errorf("failed to register user: %w", err)
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "user:gets")
		shared.InvalidateCaches(c, s.cache, "user:count")
	}()

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := shared.NormalizeEmail(req.Email)

	user, err := s.users.Get(ctx, emailFilter(email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Unknown email and wrong password answer identically so the endpoint
	// never reveals which accounts exist.
	if user.ID == constant.Empty {
		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.Token = *token
	res.User.FromModel(user)

	return res, nil
}
