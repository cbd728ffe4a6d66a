package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/alex-pricope/snackify/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-key"

// fakeGoTrue is a minimal stand in for the hosted auth service.
type fakeGoTrue struct {
	mu        sync.Mutex
	passwords map[string]string
	ids       map[string]string
	tokens    map[string]string
}

func newFakeGoTrue(t *testing.T) (*fakeGoTrue, *httptest.Server) {
	t.Helper()
	f := &fakeGoTrue{passwords: map[string]string{}, ids: map[string]string{}, tokens: map[string]string{}}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/signup", f.signup)
	mux.HandleFunc("/auth/v1/token", f.token)
	mux.HandleFunc("/auth/v1/user", f.user)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return f, server
}

func (f *fakeGoTrue) writeSession(w http.ResponseWriter, email string) {
	token := "token-" + f.ids[email]
	f.tokens[token] = email
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token":  token,
		"refresh_token": "refresh-" + f.ids[email],
		"expires_in":    3600,
		"user":          map[string]string{"id": f.ids[email], "email": email},
	})
}

func (f *fakeGoTrue) signup(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body credentials
	_ = json.NewDecoder(r.Body).Decode(&body)
	if _, exists := f.passwords[body.Email]; exists {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"msg":"User already registered"}`))
		return
	}
	f.passwords[body.Email] = body.Password
	f.ids[body.Email] = "user-" + body.Email
	f.writeSession(w, body.Email)
}

func (f *fakeGoTrue) token(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var body credentials
	_ = json.NewDecoder(r.Body).Decode(&body)
	if pw, ok := f.passwords[body.Email]; !ok || pw != body.Password {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
		return
	}
	f.writeSession(w, body.Email)
}

func (f *fakeGoTrue) user(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := r.Header.Get("Authorization")[len("Bearer "):]
	email, ok := f.tokens[token]
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"invalid JWT"}`))
		return
	}
	if r.Method == http.MethodPut {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.passwords[email] = body["password"]
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"id": f.ids[email], "email": email})
}

func setupTestAuthService(t *testing.T, secret string) (*Service, *fakeGoTrue, *storage.MemoryProfileStorage) {
	t.Helper()
	logging.Log = logrus.New()

	fake, server := newFakeGoTrue(t)
	client := NewClient(server.URL, "anon-key")
	profiles := storage.NewMemoryProfileStorage()
	return NewService(client, NewVerifier(secret, client), profiles), fake, profiles
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	service, _, profiles := setupTestAuthService(t, "")

	t.Run("Happy path - register creates profile", func(t *testing.T) {
		result, profile, err := service.Register(ctx, "  Snack.Fan@Example.com ", "hunter22")
		require.NoError(t, err)

		assert.Equal(t, "user-snack.fan@example.com", result.User.ID)
		require.NotNil(t, result.Session)
		assert.NotEmpty(t, result.Session.AccessToken)
		assert.Positive(t, result.Session.ExpiresAt)
		assert.Equal(t, "snack.fan", profile.Username)

		stored, err := profiles.Get(ctx, result.User.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "snack.fan@example.com", stored.Email)
	})

	t.Run("Unhappy path - duplicate email", func(t *testing.T) {
		_, _, err := service.Register(ctx, "snack.fan@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("Unhappy path - invalid input", func(t *testing.T) {
		_, _, err := service.Register(ctx, "not-an-email", "123")
		var verr *snacks.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Details, 2)
	})

	t.Run("Happy path - login returns stored profile", func(t *testing.T) {
		result, profile, err := service.Login(ctx, "snack.fan@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, profile.ID)
		assert.Equal(t, "snack.fan", profile.Username)
	})

	t.Run("Unhappy path - wrong password", func(t *testing.T) {
		_, _, err := service.Login(ctx, "snack.fan@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Local HS256 token", func(t *testing.T) {
		verifier := NewVerifier(testSecret, nil)
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":   "user-42",
			"email": "u42@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		user, err := verifier.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", user.ID)
		assert.Equal(t, "u42@example.com", user.Email)
	})

	t.Run("Expired token without provider", func(t *testing.T) {
		verifier := NewVerifier(testSecret, nil)
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-42",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := verifier.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Falls back to the provider", func(t *testing.T) {
		service, _, _ := setupTestAuthService(t, testSecret)
		result, _, err := service.Register(ctx, "remote@example.com", "password1")
		require.NoError(t, err)

		user, err := service.Authenticate(ctx, result.Session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-remote@example.com", user.ID)

		_, err = service.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestProfileOperations(t *testing.T) {
	ctx := context.Background()
	service, _, _ := setupTestAuthService(t, "")
	result, _, err := service.Register(ctx, "pro@example.com", "password1")
	require.NoError(t, err)
	id := result.User.ID

	t.Run("Update username and picture", func(t *testing.T) {
		name := "  chef  "
		picture := "https://cdn.example.com/me.png"
		profile, err := service.UpdateProfile(ctx, id, ProfileInput{Username: &name, ProfilePictureURL: &picture})
		require.NoError(t, err)
		assert.Equal(t, "chef", profile.Username)
		assert.Equal(t, picture, *profile.ProfilePictureURL)
	})

	t.Run("Invalid picture url", func(t *testing.T) {
		picture := "ftp:/nope"
		_, err := service.UpdateProfile(ctx, id, ProfileInput{ProfilePictureURL: &picture})
		assert.True(t, snacks.IsValidation(err))
	})

	t.Run("No fields", func(t *testing.T) {
		_, err := service.UpdateProfile(ctx, id, ProfileInput{})
		var verr *snacks.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "No fields to update", verr.Message)
	})

	t.Run("Missing profile", func(t *testing.T) {
		_, err := service.RequireProfile(ctx, "nobody")
		assert.True(t, snacks.IsNotFound(err))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	service, fake, _ := setupTestAuthService(t, "")
	result, _, err := service.Register(ctx, "pw@example.com", "oldpass1")
	require.NoError(t, err)
	user := &result.User
	token := result.Session.AccessToken

	t.Run("Mismatched confirmation", func(t *testing.T) {
		err := service.ChangePassword(ctx, user, token, PasswordChange{CurrentPassword: "oldpass1", NewPassword: "newpass1", ConfirmPassword: "other"})
		assert.True(t, snacks.IsValidation(err))
	})

	t.Run("Wrong current password", func(t *testing.T) {
		err := service.ChangePassword(ctx, user, token, PasswordChange{CurrentPassword: "nope", NewPassword: "newpass1", ConfirmPassword: "newpass1"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("Happy path", func(t *testing.T) {
		err := service.ChangePassword(ctx, user, token, PasswordChange{CurrentPassword: "oldpass1", NewPassword: "newpass1", ConfirmPassword: "newpass1"})
		require.NoError(t, err)

		fake.mu.Lock()
		assert.Equal(t, "newpass1", fake.passwords["pw@example.com"])
		fake.mu.Unlock()
	})
}

func TestProviderMessage(t *testing.T) {
	assert.Equal(t, "Invalid login credentials", providerMessage([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`)))
	assert.Equal(t, "User already registered", providerMessage([]byte(`{"code":422,"msg":"User already registered"}`)))
	assert.Equal(t, "bad gateway", providerMessage([]byte("bad gateway")))
}
