package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/domain/repositories"
	"community-hub.backend/pkg/crypto"
	"community-hub.backend/pkg/jwt"
	"community-hub.backend/pkg/logger"
	"community-hub.backend/pkg/redis"
	"community-hub.backend/pkg/utils"
	"go.uber.org/zap"
)

// SessionStore keeps browser sessions server side
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

const sessionIDBytes = 32

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
	sessions   SessionStore
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil when Redis
// is not configured; session sign-in is then rejected.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	jwtService *jwt.JWTService,
	sessions SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// SignIn registers the user on first sign-in and issues credentials. The
// caller is the trusted OAuth front end, so the email is already proven.
func (u *AuthUsecase) SignIn(ctx context.Context, input *entities.SignInInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, domainerrors.BadRequest("email and name are required")
	}

	user, err := u.findOrCreateUser(ctx, email, name)
	if err != nil {
		return nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	if !input.UseSession {
		return &entities.AuthResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         user,
		}, nil
	}

	if u.sessions == nil {
		return nil, domainerrors.BadRequest("sessions are not available")
	}
	sessionID, err := crypto.GenerateRandomToken(sessionIDBytes)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	data := &redis.SessionData{
		UserID:       user.ID.String(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
	if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
}

func (u *AuthUsecase) findOrCreateUser(ctx context.Context, email, name string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if user.Name != name {
			if err := u.userRepo.UpdateName(ctx, user.ID, name); err != nil {
				return nil, err
			}
			user.Name = name
		}
		return user, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	user = &entities.User{
		ID:    utils.GenerateUUIDv7(),
		Email: email,
		Name:  name,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		// Two first sign-ins raced on the email unique index.
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return u.userRepo.GetByEmail(ctx, email)
		}
		return nil, err
	}
	logger.Info(ctx, "user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Refresh exchanges a refresh token for a new token pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid refresh token")
		}
		return nil, err
	}
	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// ResolveAccessToken returns the current user behind an access token. The
// user row is always re-read so a fresh verification is seen immediately.
func (u *AuthUsecase) ResolveAccessToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := u.jwtService.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, "token expired", domainerrors.ErrTokenExpired)
		}
		return nil, domainerrors.Unauthorized("invalid token")
	}
	return u.loadActiveUser(ctx, claims.UserID.String())
}

// ResolveSession resolves a session id to its user. An expired access token
// is rotated with the stored refresh token and the session rewritten.
func (u *AuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*entities.User, error) {
	if u.sessions == nil || sessionID == "" {
		return nil, domainerrors.Unauthorized("invalid session")
	}
	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, domainerrors.Unauthorized("invalid session")
		}
		return nil, domainerrors.InternalError(err)
	}

	if _, err := u.jwtService.ValidateAccessToken(data.AccessToken); err == nil {
		return u.loadActiveUser(ctx, data.UserID)
	} else if !errors.Is(err, jwt.ErrExpiredToken) {
		return nil, domainerrors.Unauthorized("invalid session")
	}

	refreshed, err := u.Refresh(ctx, data.RefreshToken)
	if err != nil {
		_ = u.sessions.DeleteSession(ctx, sessionID)
		return nil, err
	}
	data.AccessToken = refreshed.AccessToken
	data.RefreshToken = refreshed.RefreshToken
	if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return refreshed.User, nil
}

func (u *AuthUsecase) loadActiveUser(ctx context.Context, rawID string) (*entities.User, error) {
	id, err := utils.ParseID(rawID)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid token")
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("user no longer exists")
		}
		return nil, err
	}
	return user, nil
}

// Logout deletes a session. Unknown sessions are not an error.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if u.sessions == nil || sessionID == "" {
		return nil
	}
	if err := u.sessions.DeleteSession(ctx, sessionID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// GetUser gets user by ID
func (u *AuthUsecase) GetUser(ctx context.Context, actor entities.Actor) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, actor.UserID)
}
