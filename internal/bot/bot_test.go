package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbmocks "urlpro/internal/database/mocks"
	"urlpro/internal/service"
	"urlpro/internal/types"
)

func TestAPIKeyArg(t *testing.T) {
	tests := []struct {
		payload string
		want    string
	}{
		{payload: "", want: ""},
		{payload: "   ", want: ""},
		{payload: "abc", want: "abc"},
		{payload: "  abc  ", want: "abc"},
		{payload: "abc def", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, apiKeyArg(tt.payload), "payload %q", tt.payload)
	}
}

func TestReplyForError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: types.ErrInvalidURL, want: msgBadURL},
		{err: fmt.Errorf("charge: %w", types.ErrQuotaExceeded), want: msgQuota},
		{err: types.ErrCodeSpaceExhausted, want: msgTryAgain},
		{err: errors.New("db down"), want: msgTryAgain},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, replyForError(tt.err), tt.err.Error())
	}
}

func TestShortenRequestForChat(t *testing.T) {
	tests := []struct {
		name      string
		profile   *types.UserProfile
		lookupErr error
		wantOwner *int64
		wantKey   string
		wantErr   bool
	}{
		{name: "linked chat", profile: &types.UserProfile{UserID: 12, APIKey: "key-12"}, wantOwner: ptr(int64(12)), wantKey: "key-12"},
		{name: "unlinked chat", lookupErr: types.ErrUserNotFound},
		{name: "store failure", lookupErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := dbmocks.NewMockUserRepository(gomock.NewController(t))
			users.EXPECT().GetProfileByTelegramChat(gomock.Any(), int64(777)).Return(tt.profile, tt.lookupErr)
			b := &TelegramBot{accounts: service.NewAccounts(users, service.AccountOptions{JWTSecret: "test-secret"})}

			req, err := b.shortenRequest(context.Background(), 777, "  https://example.com  ")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", req.URL)
			assert.True(t, req.FetchMetadata)
			assert.Equal(t, tt.wantOwner, req.OwnerID)
			assert.Equal(t, tt.wantKey, req.APIKey)
		})
	}
}

func ptr[T any](v T) *T { return &v }
