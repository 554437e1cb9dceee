package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *NewUserRequest {
	return &NewUserRequest{
		UserID:     "u1",
		GroupID:    1,
		StartTime:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiryTime: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *NewUserRequest)
		wantField string
	}{
		{name: "valid", mutate: func(r *NewUserRequest) {}},
		{
			name:      "empty user id",
			mutate:    func(r *NewUserRequest) { r.UserID = "" },
			wantField: "user_id",
		},
		{
			name:      "missing group",
			mutate:    func(r *NewUserRequest) { r.GroupID = 0 },
			wantField: "user_group_id",
		},
		{
			name:      "zero start",
			mutate:    func(r *NewUserRequest) { r.StartTime = time.Time{} },
			wantField: "start_datetime",
		},
		{
			name:      "zero expiry",
			mutate:    func(r *NewUserRequest) { r.ExpiryTime = time.Time{} },
			wantField: "expiry_datetime",
		},
		{
			name: "expiry before start",
			mutate: func(r *NewUserRequest) {
				r.StartTime, r.ExpiryTime = r.ExpiryTime, r.StartTime
			},
			wantField: "expiry_datetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(r)

			err := r.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.wantField, fe.Field)
		})
	}
}

func TestNewUserRequest_Validate_EqualStartAndExpiryIsAllowed(t *testing.T) {
	r := validRequest()
	r.ExpiryTime = r.StartTime
	assert.NoError(t, r.Validate())
}

func TestCredentials_Wipe(t *testing.T) {
	c := &Credentials{LoginID: "admin", Secret: []byte("s3cret")}
	c.Wipe()
	for i, b := range c.Secret {
		require.Zerof(t, b, "secret byte %d not wiped", i)
	}
	// A second wipe must be harmless.
	c.Wipe()
}
