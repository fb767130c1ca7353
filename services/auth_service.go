package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"ansh-apparels/libs"
	"ansh-apparels/models"
	"ansh-apparels/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const minPasswordLength = 6

type AuthService struct {
	users    UserStore
	sessions SessionStore
	tokens   *libs.TokenIssuer
	policy   AdminPolicy
}

func NewAuthService(users UserStore, sessions SessionStore, tokens *libs.TokenIssuer, policy AdminPolicy) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		policy:   policy,
	}
}

type LoginResult struct {
	User      models.PublicUser
	SessionID string
	Token     string
}

// Signup creates the account. The returned view always reports a regular
// user, even when the stored role is admin; the client learns the real role
// after logging in.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.PublicUser, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || len(req.Password) < minPasswordLength {
		return nil, models.NewValidationError("Invalid signup data")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if s.policy.MatchesInviteCode(req.AdminCode) || s.policy.IsBootstrapAdmin(email) {
		role = models.RoleAdmin
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, models.NewValidationError("Email already registered")
		}
		return nil, err
	}

	public := user.Public()
	public.Role = models.RoleUser
	public.IsAdmin = false
	return &public, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !ok {
		return nil, models.ErrInvalidCredentials
	}

	user, err = s.promote(ctx, user)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	token, err := s.tokens.Issue(public)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, user.ID); err != nil {
		return nil, err
	}

	return &LoginResult{User: public, SessionID: sessionID, Token: token}, nil
}

// SessionUserID resolves a session cookie value. An empty id means the client
// never logged in; an unknown one means the session is gone.
func (s *AuthService) SessionUserID(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", models.ErrNotLoggedIn
	}

	userID, err := s.sessions.GetUserID(ctx, sessionID)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrSessionExpired
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *AuthService) Me(ctx context.Context, sessionID string) (*models.User, error) {
	userID, err := s.SessionUserID(ctx, sessionID)
	if errors.Is(err, models.ErrSessionExpired) {
		return nil, models.ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	return s.loadUser(ctx, userID)
}

func (s *AuthService) MeFromToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, models.ErrNotLoggedIn
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		log.Debug().Err(err).Msg("bearer token rejected")
		return nil, models.ErrNotLoggedIn
	}
	return s.loadUser(ctx, claims.Subject)
}

// Identify prefers the session cookie and only falls back to the bearer token
// when no cookie was sent.
func (s *AuthService) Identify(ctx context.Context, sessionID, bearer string) (*models.User, error) {
	if sessionID != "" {
		return s.Me(ctx, sessionID)
	}
	return s.MeFromToken(ctx, bearer)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) loadUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	return s.promote(ctx, user)
}

func (s *AuthService) promote(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Role == models.RoleAdmin || !s.policy.IsBootstrapAdmin(user.Email) {
		return user, nil
	}

	updated, err := s.users.SetRole(ctx, user.ID, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID).Msg("promoted allow-listed user to admin")
	return updated, nil
}
