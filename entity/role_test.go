package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"customer", RoleCustomer, true},
		{"admin", RoleAdmin, true},
		{"super-admin", RoleSuperAdmin, true},
		{"Admin", RoleAdmin, true},
		{"SUPER-ADMIN", RoleSuperAdmin, true},
		{"  customer  ", RoleCustomer, true},
		{"owner", "", false},
		{"", "", false},
		{"superadmin", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseRole(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
