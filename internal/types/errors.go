package types

import "errors"

var (
	// Link errors
	ErrNotFound           = errors.New("short url not found")
	ErrExpired            = errors.New("short url has expired")
	ErrPasswordRequired   = errors.New("password required")
	ErrWrongPassword      = errors.New("wrong password")
	ErrAliasTaken         = errors.New("custom alias already taken")
	ErrCodeTaken          = errors.New("short code already taken")
	ErrCodeSpaceExhausted = errors.New("could not allocate a unique short code")
	ErrInvalidURL         = errors.New("invalid url")
	ErrInvalidAlias       = errors.New("invalid custom alias")
	ErrInvalidDomain      = errors.New("invalid domain")
	ErrDomainTaken        = errors.New("domain already registered")
	ErrInvalidCategory    = errors.New("invalid category")

	// Account errors
	ErrInvalidAPIKey      = errors.New("invalid api key")
	ErrQuotaExceeded      = errors.New("api call limit exceeded")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	// General errors
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden operation")
)
