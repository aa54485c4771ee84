package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokener(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed := hashPassword(t, password)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		expectJWT string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashed},
			expectJWT: "token123",
		},
		{
			name:      "user does not exist",
			username:  "bob",
			loginPass: password,
			user:      nil,
			wantErr:   services.ErrUserNotFound,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			user:      &models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashed},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashed},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
		{
			name:      "disabled account still logs in",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashed, Disabled: true},
			expectJWT: "token456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && !errors.Is(tt.wantErr, services.ErrInvalidCredentials) {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.username).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Login_BootstrapAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokener(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("first admin login creates the record", func(t *testing.T) {
		var saved models.UserDB

		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "admin").
			Return(nil, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.UserDB) (bool, error) {
				saved = user
				return true, nil
			})
		mockJWT.EXPECT().
			Generate(gomock.Any(), "admin").
			Return("admin-token", nil)

		token, err := svc.Login(context.Background(), "admin", "admin")
		assert.NoError(t, err)
		assert.Equal(t, "admin-token", token)

		assert.Equal(t, "admin", saved.Username)
		assert.Equal(t, models.RoleAdmin, saved.Role)
		assert.False(t, saved.Disabled)
		assert.NotEqual(t, uuid.Nil, saved.UserID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("admin")))
	})

	t.Run("losing the bootstrap race reuses the winner's record", func(t *testing.T) {
		winner := &models.UserDB{
			UserID:       uuid.New(),
			Username:     "admin",
			PasswordHash: hashPassword(t, "admin"),
			Role:         models.RoleAdmin,
		}

		gomock.InOrder(
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), "admin").
				Return(nil, nil),
			mockWriter.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				Return(false, nil), // conflict: another request inserted first
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), "admin").
				Return(winner, nil),
		)
		mockJWT.EXPECT().
			Generate(gomock.Any(), "admin").
			Return("admin-token-2", nil)

		token, err := svc.Login(context.Background(), "admin", "admin")
		assert.NoError(t, err)
		assert.Equal(t, "admin-token-2", token)
	})

	t.Run("wrong admin password does not bootstrap", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "admin").
			Return(nil, nil)

		token, err := svc.Login(context.Background(), "admin", "not-admin")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Empty(t, token)
	})

	t.Run("existing admin uses the stored hash, not the bootstrap path", func(t *testing.T) {
		existing := &models.UserDB{
			UserID:       uuid.New(),
			Username:     "admin",
			PasswordHash: hashPassword(t, "rotated-password"),
			Role:         models.RoleAdmin,
		}

		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "admin").
			Return(existing, nil)

		token, err := svc.Login(context.Background(), "admin", "admin")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokener(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	enabled := &models.UserDB{
		UserID:    uuid.New(),
		Username:  "alice",
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}
	disabled := &models.UserDB{
		UserID:   uuid.New(),
		Username: "bob",
		Disabled: true,
	}

	tests := []struct {
		name      string
		token     string
		claims    *jwt.Claims
		claimsErr error
		user      *models.UserDB
		readerErr error
		wantUser  *models.UserDB
		wantErr   error
	}{
		{
			name:     "valid token for enabled account",
			token:    "valid",
			claims:   &jwt.Claims{Username: "alice"},
			user:     enabled,
			wantUser: enabled,
		},
		{
			name:      "invalid token",
			token:     "garbage",
			claimsErr: errors.New("bad signature"),
			wantErr:   services.ErrInvalidToken,
		},
		{
			name:    "unknown subject maps to invalid token",
			token:   "valid",
			claims:  &jwt.Claims{Username: "ghost"},
			user:    nil,
			wantErr: services.ErrInvalidToken,
		},
		{
			name:    "disabled account",
			token:   "valid",
			claims:  &jwt.Claims{Username: "bob"},
			user:    disabled,
			wantErr: services.ErrAccountDisabled,
		},
		{
			name:      "reader error",
			token:     "valid",
			claims:    &jwt.Claims{Username: "alice"},
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockJWT.EXPECT().
				GetClaims(gomock.Any(), tt.token).
				Return(tt.claims, tt.claimsErr)

			if tt.claimsErr == nil {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.claims.Username).
					Return(tt.user, tt.readerErr)
			}

			user, err := svc.ResolveIdentity(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUser, user)
			}
		})
	}
}
