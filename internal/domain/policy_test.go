package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	user := &User{ID: 1, Role: RoleUser}
	other := &User{ID: 2, Role: RoleUser}
	admin := &User{ID: 3, Role: RoleAdmin}
	ownerID := uint(1)

	cases := []struct {
		name         string
		u            *User
		requiredRole string
		ownerID      *uint
		allow        bool
	}{
		{"nil user denied", nil, "", nil, false},
		{"any role allows authenticated user", user, "", nil, true},
		{"exact role match", user, RoleUser, nil, true},
		{"role mismatch denied", user, RoleAdmin, nil, false},
		{"admin does not satisfy user role", admin, RoleUser, nil, false},
		{"owner passes ownership check", user, "", &ownerID, true},
		{"non-owner denied", other, "", &ownerID, false},
		{"admin bypasses ownership", admin, "", &ownerID, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.u, tc.requiredRole, tc.ownerID)
			require.Equal(t, tc.allow, d.Allow)
			if !tc.allow {
				require.NotEmpty(t, d.Reason)
			}
		})
	}
}
