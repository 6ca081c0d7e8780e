package service

import "errors"

var (
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrPasswordMismatch   = errors.New("passwords don't match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotApproved = errors.New("your account is pending approval")
	ErrAccountDeactivated = errors.New("this account has been deactivated")
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrCurrentPassword    = errors.New("current password is incorrect")
	ErrInvalidResetToken  = errors.New("invalid or expired token")

	ErrAccountNotFound      = errors.New("account not found")
	ErrPersonNotFound       = errors.New("person not found")
	ErrPhotoNotFound        = errors.New("photo not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrTooManyPhotos = errors.New("maximum 6 photos allowed")
	ErrNoPhotos      = errors.New("no photos provided")

	ErrInactiveAccount = errors.New("cannot send notification to inactive user")
	ErrInactivePerson  = errors.New("cannot send notification about inactive person")

	ErrInvalidUpgradeTier = errors.New("invalid upgrade tier")
)
