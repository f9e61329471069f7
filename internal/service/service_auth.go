package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wall-of-love/server/internal/config"
	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/store"
	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and bearer
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the secret used to sign and verify bearer tokens.
	tokenSignKey string

	// tokenAlgorithm names the JWT signing method; tokens signed with a
	// different method are rejected during parsing.
	tokenAlgorithm string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// bcryptCost is the cost factor applied when hashing passwords.
	bcryptCost int

	// uuid generates identifiers for new accounts.
	uuid *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenDuration:  cfg.TokenDuration(),
		bcryptCost:     cfg.BcryptCost,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// It validates that email, password, and name are non-empty, hashes the
// password with bcrypt at the configured cost, assigns a fresh UUID and
// a UTC creation timestamp, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
func (a *authService) RegisterUser(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" || name == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.uuid.Generate(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and compares the stored bcrypt hash
// against the supplied password. An unknown email and a wrong password
// both produce ErrInvalidCredentials so callers cannot distinguish the
// two cases.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)) != nil {
		log.Warn().Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	log.Debug().Str("id", foundUser.ID).Str("email", foundUser.Email).Msg("user successfully logged in")

	return foundUser, nil
}

// GetUserByEmail looks up an account by email, typically after a bearer
// token has been resolved to its subject.
func (a *authService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, err
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed bearer token carrying the user's email as
// the subject claim; the token expires after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Email, a.tokenDuration, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw bearer token string.
//
// Any validation failure (expired, wrong signing method, malformed,
// bad signature) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
