package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/email"
	"gymfit_backend/internal/handlers"
	"gymfit_backend/internal/middleware"
	"gymfit_backend/internal/models"
	"gymfit_backend/internal/repositories"
	"gymfit_backend/internal/routes"
	"gymfit_backend/internal/services"
	"gymfit_backend/internal/validator"
)

// memUserRepo is a map-backed stand-in for the gorm repository, enough to
// drive the HTTP surface end to end without a database.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (f *memUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *memUserRepo) FindByEmail(db *gorm.DB, emailAddr string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == strings.ToLower(emailAddr) {
			c := *u
			return &c, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *memUserRepo) ExistsByEmail(db *gorm.DB, emailAddr string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == strings.ToLower(emailAddr) {
			return true, nil
		}
	}
	return false, nil
}

func (f *memUserRepo) Create(db *gorm.DB, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.Email = strings.ToLower(user.Email)
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	c := *user
	f.users[user.ID] = &c
	return nil
}

func (f *memUserRepo) Update(db *gorm.DB, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.PasswordHash = user.PasswordHash
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Phone = user.Phone
	stored.IsActive = user.IsActive
	stored.IsEmailVerified = user.IsEmailVerified
	stored.VerificationToken = user.VerificationToken
	stored.ResetToken = user.ResetToken
	stored.ResetTokenExp = user.ResetTokenExp
	return nil
}

func (f *memUserRepo) UpdateLastLogin(db *gorm.DB, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	now := time.Now()
	stored.LastLogin = &now
	return nil
}

func (f *memUserRepo) FindByVerificationToken(db *gorm.DB, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.VerificationToken != "" && u.VerificationToken == token {
			c := *u
			return &c, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *memUserRepo) FindByResetToken(db *gorm.DB, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ResetToken != "" && u.ResetToken == token {
			c := *u
			return &c, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

// --- Router fixture ---

type apiFixture struct {
	router *gin.Engine
	repo   *memUserRepo
	mail   *email.MockProvider
	tokens *auth.TokenManager
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	tokens, err := auth.NewTokenManager(strings.Repeat("k", 64), 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	repo := newMemUserRepo()
	mail := email.NewMockProvider()

	authService := services.NewAuthService(repo, tokens, mail)
	userService := services.NewUserService(repo)

	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, authService),
		UserHandler: handlers.NewUserHandler(baseHandler, userService),
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.DBMiddleware(nil))

	routes.RegisterRoutes(router, appHandlers, tokens)

	return &apiFixture{router: router, repo: repo, mail: mail, tokens: tokens}
}

func (fx *apiFixture) send(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

func (fx *apiFixture) register(t *testing.T, emailAddr, password string) {
	t.Helper()

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":            emailAddr,
		"password":         password,
		"confirm_password": password,
		"first_name":       "Aida",
		"last_name":        "Bekova",
		"accept_terms":     true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", body)
}

func (fx *apiFixture) login(t *testing.T, emailAddr, password string) (accessToken, refreshToken string) {
	t.Helper()

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    emailAddr,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", body)

	var res struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	return res.AccessToken, res.RefreshToken
}

// --- Tests ---

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":            "member@test.com",
		"password":         "super_password123",
		"confirm_password": "super_password123",
		"first_name":       "Aida",
		"last_name":        "Bekova",
		"accept_terms":     true,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, body, `"requires_verification":true`)
	assert.Contains(t, body, "member@test.com")
	assert.NotContains(t, body, "password")
}

func TestRegisterEndpoint_BindingRejectsBadEmail(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)

	rec, _ := fx.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":            "not-an-email",
		"password":         "super_password123",
		"confirm_password": "super_password123",
		"first_name":       "Aida",
		"last_name":        "Bekova",
		"accept_terms":     true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":            "member@test.com",
		"password":         "super_password123",
		"confirm_password": "super_password123",
		"first_name":       "Aida",
		"last_name":        "Bekova",
		"accept_terms":     true,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, body, "EMAIL_ALREADY_EXISTS")
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	access, refresh := fx.login(t, "member@test.com", "super_password123")
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "member@test.com",
		"password": "wrong_password",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body, "Invalid email or password")
}

func TestRefreshEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")
	_, refresh := fx.login(t, "member@test.com", "super_password123")

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": refresh,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "access_token")
}

func TestRefreshEndpoint_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")
	access, _ := fx.login(t, "member@test.com", "super_password123")

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": access,
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestForgotPasswordEndpoint_UniformResponse(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	recKnown, bodyKnown := fx.send(t, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "member@test.com",
	})
	recUnknown, bodyUnknown := fx.send(t, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "ghost@test.com",
	})

	assert.Equal(t, http.StatusOK, recKnown.Code)
	assert.Equal(t, http.StatusOK, recUnknown.Code)
	assert.Equal(t, bodyKnown, bodyUnknown, "the response must not reveal whether the account exists")
}

func TestResetPasswordEndpoint_FullFlow(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	rec, _ := fx.send(t, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]interface{}{
		"email": "member@test.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resetToken string
	require.Eventually(t, func() bool {
		resetToken = fx.mail.ResetTokenFor("member@test.com")
		return resetToken != ""
	}, time.Second, 5*time.Millisecond)

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":            resetToken,
		"password":         "brand_new_pass1",
		"confirm_password": "brand_new_pass1",
	})
	require.Equal(t, http.StatusOK, rec.Code, "reset failed: %s", body)

	fx.login(t, "member@test.com", "brand_new_pass1")

	// Replaying the consumed token must fail.
	rec, _ = fx.send(t, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]interface{}{
		"token":            resetToken,
		"password":         "yet_another_pass",
		"confirm_password": "yet_another_pass",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyEmailEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	var verificationToken string
	require.Eventually(t, func() bool {
		verificationToken = fx.mail.VerificationTokenFor("member@test.com")
		return verificationToken != ""
	}, time.Second, 5*time.Millisecond)

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": verificationToken,
	})
	require.Equal(t, http.StatusOK, rec.Code, "verify failed: %s", body)

	// Resending for a verified account is rejected.
	rec, body = fx.send(t, http.MethodPost, "/api/v1/auth/resend-verification", "", map[string]interface{}{
		"email": "member@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "EMAIL_ALREADY_VERIFIED")
}

func TestCheckEmailEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")

	rec, body := fx.send(t, http.MethodGet, "/api/v1/auth/check-email?email=member@test.com", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"exists":true`)

	rec, body = fx.send(t, http.MethodGet, "/api/v1/auth/check-email?email=ghost@test.com", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"exists":false`)

	rec, _ = fx.send(t, http.MethodGet, "/api/v1/auth/check-email", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)

	rec, body := fx.send(t, http.MethodGet, "/api/v1/auth/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "ok")
}

func TestCurrentUserEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")
	access, refresh := fx.login(t, "member@test.com", "super_password123")

	// No token.
	rec, _ := fx.send(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A refresh token is not an access token.
	rec, _ = fx.send(t, http.MethodGet, "/api/v1/users/me", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Access token.
	rec, body := fx.send(t, http.MethodGet, "/api/v1/users/me", access, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "member@test.com")
	assert.NotContains(t, body, "password")
}

func TestChangePasswordEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)
	fx.register(t, "member@test.com", "super_password123")
	access, _ := fx.login(t, "member@test.com", "super_password123")

	rec, body := fx.send(t, http.MethodPost, "/api/v1/users/change-password", access, map[string]interface{}{
		"current_password": "super_password123",
		"new_password":     "new_password456",
	})
	require.Equal(t, http.StatusOK, rec.Code, "change failed: %s", body)

	fx.login(t, "member@test.com", "new_password456")

	rec, _ = fx.send(t, http.MethodPost, "/api/v1/users/change-password", access, map[string]interface{}{
		"current_password": "super_password123",
		"new_password":     "another_pass789",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "the old password is no longer current")
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	fx := newAPIFixture(t)

	rec, body := fx.send(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Logged out")
}
