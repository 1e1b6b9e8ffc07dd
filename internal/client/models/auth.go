// Package models defines client-side data models used by the gophauth client.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// LoginCredentials is the input of a login attempt. It is never persisted.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the input of a registration attempt. It is never persisted.
type RegisterCredentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the account returned by the authentication API.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// naiveTimestampLayouts are accepted for created_at values sent without a
// zone offset; they are read as UTC.
var naiveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// UnmarshalJSON accepts RFC 3339 timestamps as well as offset-less ISO-8601.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		CreatedAt string `json:"created_at"`
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	ts, err := parseTimestamp(aux.CreatedAt)
	if err != nil {
		return err
	}
	u.CreatedAt = ts
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid created_at %q", s)
}

// Token is the bearer token issued on login/register.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthResult is the success body of both /login and /register.
type AuthResult struct {
	User  *User  `json:"user"`
	Token *Token `json:"token"`
}

// Complete reports whether the result carries both a user and a usable token.
func (r *AuthResult) Complete() bool {
	return r != nil && r.User != nil && r.Token != nil && r.Token.AccessToken != ""
}
