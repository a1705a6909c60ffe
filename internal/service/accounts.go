package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"urlpro/internal/database"
	"urlpro/internal/types"
)

const (
	apiKeyLength      = 32
	minPasswordLength = 8
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.@+-]{3,150}$`)

type AccountOptions struct {
	JWTSecret     string
	JWTExpiration time.Duration
	APICallsLimit int64
}

type Accounts struct {
	users database.UserRepository
	opts  AccountOptions
	now   func() time.Time
}

func NewAccounts(users database.UserRepository, opts AccountOptions) *Accounts {
	if opts.JWTExpiration <= 0 {
		opts.JWTExpiration = 24 * time.Hour
	}
	if opts.APICallsLimit <= 0 {
		opts.APICallsLimit = 1000
	}
	return &Accounts{users: users, opts: opts, now: time.Now}
}

// Register creates the user with a fresh profile and API key.
func (a *Accounts) Register(ctx context.Context, username, email, password string) (*types.User, *types.UserProfile, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if !usernamePattern.MatchString(username) {
		return nil, nil, fmt.Errorf("%w: username must be 3-150 letters, digits or _.@+-", types.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, nil, fmt.Errorf("%w: password must be at least %d characters", types.ErrInvalidInput, minPasswordLength)
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, nil, fmt.Errorf("%w: malformed email", types.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}
	key, err := GenerateCode(apiKeyLength)
	if err != nil {
		return nil, nil, err
	}

	user := &types.User{Username: username, Email: email, PasswordHash: string(hash)}
	profile := &types.UserProfile{
		APIKey:             key,
		APICallsLimit:      a.opts.APICallsLimit,
		EmailNotifications: true,
	}
	if err := a.users.CreateUser(ctx, user, profile); err != nil {
		return nil, nil, err
	}

	logrus.WithField("user_id", user.ID).Info("user registered")
	return user, profile, nil
}

func (a *Accounts) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return "", types.ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", types.ErrInvalidCredentials
	}
	return a.IssueToken(user.ID)
}

func (a *Accounts) IssueToken(userID int64) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.opts.JWTExpiration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.opts.JWTSecret))
}

// ParseToken returns the user id carried by a valid HS256 token.
func (a *Accounts) ParseToken(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(a.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil || !token.Valid {
		return 0, types.ErrUnauthorized
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, types.ErrUnauthorized
	}
	return id, nil
}

// ProfileByAPIKey authenticates an API key without charging quota.
func (a *Accounts) ProfileByAPIKey(ctx context.Context, apiKey string) (*types.UserProfile, error) {
	p, err := a.users.GetProfileByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, types.ErrInvalidAPIKey
		}
		return nil, err
	}
	return p, nil
}

func (a *Accounts) Profile(ctx context.Context, userID int64) (*types.User, *types.UserProfile, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := a.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

func (a *Accounts) RotateAPIKey(ctx context.Context, userID int64) (string, error) {
	key, err := GenerateCode(apiKeyLength)
	if err != nil {
		return "", err
	}
	if err := a.users.UpdateAPIKey(ctx, userID, key); err != nil {
		return "", err
	}
	return key, nil
}

// UpdatePreferences toggles report and notification delivery.
func (a *Accounts) UpdatePreferences(ctx context.Context, userID int64, prefs types.ProfilePreferences) (*types.UserProfile, error) {
	if prefs.Empty() {
		return nil, fmt.Errorf("%w: no preferences given", types.ErrInvalidInput)
	}
	if err := a.users.UpdatePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}
	return a.users.GetProfile(ctx, userID)
}

// LinkTelegram attaches a chat to the account owning apiKey.
func (a *Accounts) LinkTelegram(ctx context.Context, apiKey string, chatID int64) (*types.User, error) {
	p, err := a.ProfileByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if err := a.users.LinkTelegram(ctx, p.UserID, chatID); err != nil {
		return nil, err
	}
	return a.users.GetUserByID(ctx, p.UserID)
}

func (a *Accounts) ProfileByTelegram(ctx context.Context, chatID int64) (*types.UserProfile, error) {
	return a.users.GetProfileByTelegramChat(ctx, chatID)
}

// ResetMonthlyQuotas zeroes counters not yet reset in the current UTC month.
func (a *Accounts) ResetMonthlyQuotas(ctx context.Context) (int64, error) {
	now := a.now().UTC()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return a.users.ResetQuotas(ctx, periodStart)
}
