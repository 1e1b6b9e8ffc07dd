package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalJSON_Timestamps(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		want time.Time
	}{
		{"rfc3339 with zone", "2025-03-01T10:20:30Z", time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"naive with micros is utc", "2025-03-01T10:20:30.123456", time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{"naive with space", "2025-03-01 10:20:30", time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"empty leaves zero", "", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"id":7,"email":"bob@x.com","username":"bob","is_active":true,"created_at":"` + tt.ts + `"}`
			var u User
			require.NoError(t, json.Unmarshal([]byte(body), &u))

			assert.Equal(t, int64(7), u.ID)
			assert.Equal(t, "bob@x.com", u.Email)
			assert.Equal(t, "bob", u.Username)
			assert.True(t, u.IsActive)
			assert.True(t, tt.want.Equal(u.CreatedAt), "got %v want %v", u.CreatedAt, tt.want)
		})
	}
}

func TestUser_UnmarshalJSON_BadTimestamp(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id":1,"created_at":"yesterday"}`), &u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid created_at")
}

func TestAuthResult_Complete(t *testing.T) {
	var nilResult *AuthResult
	assert.False(t, nilResult.Complete())
	assert.False(t, (&AuthResult{}).Complete())
	assert.False(t, (&AuthResult{User: &User{ID: 1}}).Complete())
	assert.False(t, (&AuthResult{User: &User{ID: 1}, Token: &Token{}}).Complete())
	assert.True(t, (&AuthResult{User: &User{ID: 1}, Token: &Token{AccessToken: "abc"}}).Complete())
}
