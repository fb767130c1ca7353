package services

import (
	"context"
	"testing"

	"ansh-apparels/libs"
	"ansh-apparels/models"
	"ansh-apparels/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	svc      *AuthService
	users    *testutil.UserStore
	sessions *testutil.SessionStore
	tokens   *libs.TokenIssuer
}

func newAuthFixture(policy AdminPolicy) authFixture {
	f := authFixture{
		users:    testutil.NewUserStore(),
		sessions: testutil.NewSessionStore(),
		tokens:   libs.NewTokenIssuer("test-secret"),
	}
	f.svc = NewAuthService(f.users, f.sessions, f.tokens, policy)
	return f
}

func TestSignupMasksRole(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{InviteCode: "let-me-in"})

	user, err := f.svc.Signup(ctx, models.SignupRequest{Name: "Asha", Email: "  Asha@Example.com ", Password: "secret1", AdminCode: " let-me-in "})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, "asha@example.com", user.Email)

	stored, err := f.users.FindByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestSignupAllowListedEmailIsAdmin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{Emails: []string{"owner@example.com"}})

	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "Owner", Email: "OWNER@example.com", Password: "secret1"})
	require.NoError(t, err)

	stored, err := f.users.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestSignupValidation(t *testing.T) {
	f := newAuthFixture(AdminPolicy{})

	for _, req := range []models.SignupRequest{
		{Name: "", Email: "a@x.com", Password: "secret1"},
		{Name: "A", Email: "  ", Password: "secret1"},
		{Name: "A", Email: "a@x.com", Password: "12345"},
	} {
		_, err := f.svc.Signup(context.Background(), req)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid signup data", verr.Message)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})

	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.svc.Signup(ctx, models.SignupRequest{Name: "B", Email: "A@X.com", Password: "secret2"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email already registered", verr.Message)
}

func TestLoginCreatesSessionAndToken(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})
	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	result, err := f.svc.Login(ctx, models.LoginRequest{Email: "A@x.com", Password: "secret1"})
	require.NoError(t, err)

	userID, err := f.sessions.GetUserID(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)

	claims, err := f.tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})
	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "nope"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, models.LoginRequest{Email: "b@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestLoginPromotesAllowListedUser(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})
	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	f.svc.policy = AdminPolicy{Emails: []string{"a@x.com"}}
	result, err := f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, result.User.IsAdmin)

	claims, err := f.tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginWithoutSigningSecret(t *testing.T) {
	ctx := context.Background()
	users := testutil.NewUserStore()
	sessions := testutil.NewSessionStore()
	svc := NewAuthService(users, sessions, libs.NewTokenIssuer(""), AdminPolicy{})
	_, err := svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, libs.ErrMissingSigningSecret)
	assert.Equal(t, 0, sessions.Len())
}

func TestSessionLookup(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})

	_, err := f.svc.SessionUserID(ctx, "")
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)

	_, err = f.svc.SessionUserID(ctx, "unknown")
	assert.ErrorIs(t, err, models.ErrSessionExpired)

	_, err = f.svc.Me(ctx, "unknown")
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)
}

func TestMeAndLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})
	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	result, err := f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	me, err := f.svc.Me(ctx, result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", me.Email)

	require.NoError(t, f.svc.Logout(ctx, result.SessionID))
	_, err = f.svc.Me(ctx, result.SessionID)
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)
}

func TestIdentifyFallsBackToBearer(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(AdminPolicy{})
	_, err := f.svc.Signup(ctx, models.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	result, err := f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	user, err := f.svc.Identify(ctx, "", result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)

	_, err = f.svc.Identify(ctx, "stale-session", result.Token)
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)

	_, err = f.svc.Identify(ctx, "", "garbage")
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)
}
