package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap credentials for the default administrator created on first login.
const (
	bootstrapUsername = "admin"
	bootstrapPassword = "admin"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account disabled")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users. Save must be
// insert-if-absent keyed on the username: it returns false on conflict.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (bool, error)
}

// Tokener defines an interface for issuing and decoding JWT tokens.
type Tokener interface {
	Generate(ctx context.Context, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles login and per-request identity resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Login authenticates a user and returns a JWT token.
//
// The very first login with the bootstrap credentials creates the default
// administrator account; every later login, admin included, is verified
// against the stored bcrypt hash. Disabled accounts are rejected at
// identity-resolution time, not here.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if user == nil {
		if username != bootstrapUsername || password != bootstrapPassword {
			logger.Log.Errorw("user does not exist", "username", username)
			return "", ErrUserNotFound
		}
		user, err = svc.bootstrapAdmin(ctx)
		if err != nil {
			logger.Log.Errorw("failed to bootstrap admin", "err", err)
			return "", err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// bootstrapAdmin inserts the default admin record. The insert is conditional
// on username absence, so the loser of a concurrent first-login race re-reads
// the winner's record instead of creating a duplicate.
func (svc *AuthService) bootstrapAdmin(ctx context.Context) (*models.UserDB, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.UserDB{
		UserID:       uuid.New(),
		Username:     bootstrapUsername,
		PasswordHash: string(hashedPassword),
		Disabled:     false,
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	inserted, err := svc.writer.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	if inserted {
		logger.Log.Infow("default admin user created")
		return &user, nil
	}

	// Lost the race: another request inserted the record first.
	existing, err := svc.reader.GetByUsername(ctx, bootstrapUsername)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}
	return existing, nil
}

// ResolveIdentity verifies the bearer token and returns the account it
// belongs to. Token failures and unknown subjects are indistinguishable
// to the caller.
func (svc *AuthService) ResolveIdentity(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to decode token", "err", err)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByUsername(ctx, claims.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("token subject does not exist", "username", claims.Username)
		return nil, ErrInvalidToken
	}

	if user.Disabled {
		logger.Log.Errorw("account disabled", "username", user.Username)
		return nil, ErrAccountDisabled
	}

	return user, nil
}
