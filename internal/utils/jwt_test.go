package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("everkeep", "user-uuid-1", time.Hour, "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "user-uuid-1", token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", userID: "u", duration: time.Hour, signKey: "k"},
		{name: "empty user id", issuer: "i", userID: "", duration: time.Hour, signKey: "k"},
		{name: "zero duration", issuer: "i", userID: "u", duration: 0, signKey: "k"},
		{name: "empty sign key", issuer: "i", userID: "u", duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("everkeep", "user-uuid-1", time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "secret", "everkeep")
	require.NoError(t, err)
	assert.Equal(t, "user-uuid-1", parsed.UserID)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken("everkeep", "user-uuid-1", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-secret", "everkeep")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("everkeep", "user-uuid-1", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "someone-else")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken("everkeep", "user-uuid-1", -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "secret", "everkeep")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty", header: "", wantErr: true},
		{name: "empty token part", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
