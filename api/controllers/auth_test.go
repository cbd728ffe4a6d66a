package controllers

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	testutils "github.com/alex-pricope/snackify/api/controllers/testing"
	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/api/transport"
	"github.com/alex-pricope/snackify/auth"
	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "controller-test-secret"

// fakeProvider issues tokens signed with testJWTSecret so the verifier can
// check them locally.
type fakeProvider struct {
	mu        sync.Mutex
	passwords map[string]string
}

func (f *fakeProvider) issue(email string) (*auth.Result, error) {
	id := "uid-" + email
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	if err != nil {
		return nil, err
	}
	return &auth.Result{
		User:    auth.User{ID: id, Email: email},
		Session: &auth.Session{AccessToken: token, RefreshToken: "r-" + id, ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}, nil
}

func (f *fakeProvider) SignUp(_ context.Context, email, password string) (*auth.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.passwords[email]; ok {
		return nil, auth.ErrAlreadyRegistered
	}
	f.passwords[email] = password
	return f.issue(email)
}

func (f *fakeProvider) SignIn(_ context.Context, email, password string) (*auth.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pw, ok := f.passwords[email]; !ok || pw != password {
		return nil, auth.ErrInvalidCredentials
	}
	return f.issue(email)
}

func (f *fakeProvider) GetUser(context.Context, string) (*auth.User, error) {
	return nil, &auth.ProviderError{Status: http.StatusUnauthorized, Message: "invalid JWT"}
}

func (f *fakeProvider) UpdatePassword(_ context.Context, token, newPassword string) error {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	}); err != nil {
		return err
	}
	email, _ := claims["email"].(string)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwords[email] = newPassword
	return nil
}

func setupTestAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logging.Log = logrus.New()

	provider := &fakeProvider{passwords: map[string]string{}}
	service := auth.NewService(provider, auth.NewVerifier(testJWTSecret, provider), storage.NewMemoryProfileStorage())

	r := transport.NewRouter(gin.TestMode)
	NewAuthController(service).RegisterRoutes(r)
	NewProfileController(service).RegisterRoutes(r)
	return r
}

func registerTestUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/register", models.CredentialsRequest{Email: email, Password: password}, nil)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	body, err := testutils.Decode[models.AuthResponse](res)
	require.NoError(t, err)
	require.NotNil(t, body.Session)
	return body.Session.AccessToken
}

func TestAuthEndpoints(t *testing.T) {
	router := setupTestAuthRouter(t)
	token := registerTestUser(t, router, "taster@example.com", "crunchy1")

	t.Run("Unhappy path - duplicate registration", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/register", models.CredentialsRequest{Email: "taster@example.com", Password: "crunchy1"}, nil)
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("Unhappy path - invalid registration", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/register", models.CredentialsRequest{Email: "nope", Password: "1"}, nil)
		require.Equal(t, http.StatusBadRequest, res.Code)

		body, err := testutils.Decode[models.ErrorResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "Validation failed", body.Error)
		assert.Len(t, body.Details, 2)
	})

	t.Run("Happy path - login", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/login", models.CredentialsRequest{Email: "TASTER@example.com", Password: "crunchy1"}, nil)
		require.Equal(t, http.StatusOK, res.Code)

		body, err := testutils.Decode[models.AuthResponse](res)
		require.NoError(t, err)
		assert.True(t, body.Success)
		assert.Equal(t, "Login successful", body.Message)
		assert.Equal(t, "uid-taster@example.com", body.User.ID)
	})

	t.Run("Unhappy path - wrong password", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/login", models.CredentialsRequest{Email: "taster@example.com", Password: "soggy"}, nil)
		require.Equal(t, http.StatusUnauthorized, res.Code)

		body, err := testutils.Decode[models.ErrorResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "Invalid email or password", body.Error)
	})

	t.Run("Happy path - me", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/auth/me", nil, testutils.Bearer(token))
		require.Equal(t, http.StatusOK, res.Code)

		body, err := testutils.Decode[models.CurrentUserResponse](res)
		require.NoError(t, err)
		require.NotNil(t, body.User.Username)
		assert.Equal(t, "taster", *body.User.Username)
		assert.Nil(t, body.User.ProfilePictureURL)
	})

	t.Run("Unhappy path - me without token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/auth/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/auth/me", nil, testutils.Bearer("forged"))
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Happy path - logout", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/auth/logout", nil, testutils.Bearer(token))
		assert.Equal(t, http.StatusOK, res.Code)
	})
}

func TestProfileEndpoints(t *testing.T) {
	router := setupTestAuthRouter(t)
	token := registerTestUser(t, router, "chef@example.com", "secret12")
	headers := testutils.Bearer(token)

	t.Run("Happy path - get profile", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/profile", nil, headers)
		require.Equal(t, http.StatusOK, res.Code)

		body, err := testutils.Decode[models.ProfileResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "chef", body.Profile.Username)
		assert.Equal(t, "chef@example.com", body.Profile.Email)
	})

	t.Run("Happy path - update profile", func(t *testing.T) {
		username := "head chef"
		picture := "https://cdn.example.com/chef.png"
		res := testutils.PerformRequest(router, http.MethodPut, "/api/profile", models.UpdateProfileRequest{Username: &username, ProfilePictureURL: &picture}, headers)
		require.Equal(t, http.StatusOK, res.Code)

		body, err := testutils.Decode[models.ProfileResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "Profile updated successfully", body.Message)
		assert.Equal(t, "head chef", body.Profile.Username)
		require.NotNil(t, body.Profile.ProfilePictureURL)
		assert.Equal(t, picture, *body.Profile.ProfilePictureURL)
	})

	t.Run("Unhappy path - nothing to update", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPut, "/api/profile", map[string]string{}, headers)
		require.Equal(t, http.StatusBadRequest, res.Code)

		body, err := testutils.Decode[models.ErrorResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "No fields to update", body.Error)
	})

	t.Run("Unhappy path - no token", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/profile", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - passwords do not match", func(t *testing.T) {
		payload := models.ChangePasswordRequest{CurrentPassword: "secret12", NewPassword: "newsecret", ConfirmPassword: "other"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/profile/change-password", payload, headers)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - wrong current password", func(t *testing.T) {
		payload := models.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newsecret", ConfirmPassword: "newsecret"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/profile/change-password", payload, headers)
		require.Equal(t, http.StatusUnauthorized, res.Code)

		body, err := testutils.Decode[models.ErrorResponse](res)
		require.NoError(t, err)
		assert.Equal(t, "Current password is incorrect", body.Error)
	})

	t.Run("Happy path - change password then login with it", func(t *testing.T) {
		payload := models.ChangePasswordRequest{CurrentPassword: "secret12", NewPassword: "newsecret", ConfirmPassword: "newsecret"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/profile/change-password", payload, headers)
		require.Equal(t, http.StatusOK, res.Code)

		res = testutils.PerformRequest(router, http.MethodPost, "/api/auth/login", models.CredentialsRequest{Email: "chef@example.com", Password: "newsecret"}, nil)
		assert.Equal(t, http.StatusOK, res.Code)
	})
}
