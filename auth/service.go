package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/alex-pricope/snackify/logging"
	"github.com/alex-pricope/snackify/snacks"
	"github.com/alex-pricope/snackify/storage"
)

var ErrWrongPassword = errors.New("current password is incorrect")

type ProfileInput struct {
	Username          *string
	ProfilePictureURL *string
}

type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type Service struct {
	provider Provider
	verifier *Verifier
	profiles storage.ProfileStorage
}

func NewService(provider Provider, verifier *Verifier, profiles storage.ProfileStorage) *Service {
	return &Service{provider: provider, verifier: verifier, profiles: profiles}
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	return s.verifier.Verify(ctx, token)
}

// Register signs the user up and makes sure a profile row exists for them.
func (s *Service) Register(ctx context.Context, email, password string) (*Result, *storage.Profile, error) {
	email, err := validateRegistration(email, password)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, nil, providerFailure("sign up", err)
	}

	profile, err := s.profiles.Get(ctx, result.User.ID)
	if err != nil {
		return nil, nil, &snacks.UpstreamError{Op: "account created but profile setup failed", Err: err}
	}
	if profile == nil {
		profile = &storage.Profile{ID: result.User.ID, Email: email, Username: defaultUsername(email)}
		if err := s.profiles.Create(ctx, profile); err != nil && !errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			return nil, nil, &snacks.UpstreamError{Op: "account created but profile setup failed", Err: err}
		}
	}
	logging.Log.Infof("AUTH: registered user %s", result.User.ID)
	return result, profile, nil
}

// Login returns the session and the stored profile, or a minimal profile
// built from the user when none is stored yet.
func (s *Service) Login(ctx context.Context, email, password string) (*Result, *storage.Profile, error) {
	email, err := validateLogin(email, password)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, nil, providerFailure("sign in", err)
	}

	profile, err := s.profiles.Get(ctx, result.User.ID)
	if err != nil {
		logging.Log.Warnf("AUTH: profile fetch for %s failed: %v", result.User.ID, err)
	}
	if profile == nil {
		profile = &storage.Profile{ID: result.User.ID, Email: result.User.Email}
	}
	return result, profile, nil
}

// Profile returns the stored profile of a user, or nil when there is none.
func (s *Service) Profile(ctx context.Context, userID string) (*storage.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, &snacks.UpstreamError{Op: "get profile", Err: err}
	}
	return profile, nil
}

// RequireProfile is Profile with a NotFoundError instead of nil.
func (s *Service) RequireProfile(ctx context.Context, userID string) (*storage.Profile, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &snacks.NotFoundError{Resource: "Profile", ID: userID}
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*storage.Profile, error) {
	update, err := validateProfile(in)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Update(ctx, userID, update)
	switch {
	case errors.Is(err, storage.ErrNoFieldsToUpdate):
		return nil, &snacks.ValidationError{Message: "No fields to update"}
	case errors.Is(err, storage.ErrNotFound):
		return nil, &snacks.NotFoundError{Resource: "Profile", ID: userID}
	case err != nil:
		return nil, &snacks.UpstreamError{Op: "update profile", Err: err}
	}
	return profile, nil
}

// ChangePassword re-checks the current password before setting the new one.
func (s *Service) ChangePassword(ctx context.Context, user *User, token string, in PasswordChange) error {
	if err := validatePasswordChange(in); err != nil {
		return err
	}
	if token == "" {
		return ErrUnauthorized
	}

	if _, err := s.provider.SignIn(ctx, user.Email, in.CurrentPassword); err != nil {
		logging.Log.Warnf("AUTH: password check for %s failed: %v", user.ID, err)
		return ErrWrongPassword
	}
	if err := s.provider.UpdatePassword(ctx, token, in.NewPassword); err != nil {
		return providerFailure("update password", err)
	}
	logging.Log.Infof("AUTH: password changed for user %s", user.ID)
	return nil
}

func providerFailure(op string, err error) error {
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrAlreadyRegistered) {
		return err
	}
	return &snacks.UpstreamError{Op: op, Err: err}
}

func defaultUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "user"
	}
	return local
}

func normalizeEmail(errs *[]snacks.FieldError, raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		*errs = append(*errs, snacks.FieldError{Field: "email", Message: "Email is required"})
		return email
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		*errs = append(*errs, snacks.FieldError{Field: "email", Message: "Please provide a valid email address"})
	}
	return email
}

func checkNewPassword(errs *[]snacks.FieldError, field, label, password string) {
	switch n := utf8.RuneCountInString(password); {
	case n == 0:
		*errs = append(*errs, snacks.FieldError{Field: field, Message: label + " is required"})
	case n < 6:
		*errs = append(*errs, snacks.FieldError{Field: field, Message: label + " must be at least 6 characters"})
	case n > 100:
		*errs = append(*errs, snacks.FieldError{Field: field, Message: label + " must be less than 100 characters"})
	}
}

func validationResult(errs []snacks.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &snacks.ValidationError{Message: "Validation failed", Details: errs}
}

func validateRegistration(email, password string) (string, error) {
	var errs []snacks.FieldError
	email = normalizeEmail(&errs, email)
	checkNewPassword(&errs, "password", "Password", password)
	return email, validationResult(errs)
}

func validateLogin(email, password string) (string, error) {
	var errs []snacks.FieldError
	email = normalizeEmail(&errs, email)
	if password == "" {
		errs = append(errs, snacks.FieldError{Field: "password", Message: "Password is required"})
	}
	return email, validationResult(errs)
}

func validateProfile(in ProfileInput) (storage.ProfileUpdate, error) {
	var (
		errs   []snacks.FieldError
		update storage.ProfileUpdate
	)

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		switch n := utf8.RuneCountInString(username); {
		case n < 2:
			errs = append(errs, snacks.FieldError{Field: "username", Message: "Username must be at least 2 characters"})
		case n > 100:
			errs = append(errs, snacks.FieldError{Field: "username", Message: "Username must be less than 100 characters"})
		}
		update.Username = &username
	}
	if in.ProfilePictureURL != nil {
		picture := strings.TrimSpace(*in.ProfilePictureURL)
		if picture != "" && !snacks.IsAbsoluteURL(picture) {
			errs = append(errs, snacks.FieldError{Field: "profile_picture_url", Message: "Profile picture URL must be a valid URL"})
		}
		update.ProfilePictureURL = &picture
	}
	return update, validationResult(errs)
}

func validatePasswordChange(in PasswordChange) error {
	var errs []snacks.FieldError
	if in.CurrentPassword == "" {
		errs = append(errs, snacks.FieldError{Field: "current_password", Message: "Current password is required"})
	}
	checkNewPassword(&errs, "new_password", "New password", in.NewPassword)
	switch {
	case in.ConfirmPassword == "":
		errs = append(errs, snacks.FieldError{Field: "confirm_password", Message: "Please confirm your new password"})
	case in.ConfirmPassword != in.NewPassword:
		errs = append(errs, snacks.FieldError{Field: "confirm_password", Message: "Passwords do not match"})
	}
	return validationResult(errs)
}
