package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccess(t *testing.T) {
	cases := []struct {
		name string
		role Role
		path string
		want Decision
	}{
		{"no session redirects to sign-in", "", "/dashboard", Decision{RedirectTo: "/sign-in"}},
		{"no session may view sign-in", "", "/sign-in", Decision{Allow: true}},
		{"admin dispatched from base dashboard", RoleAdmin, "/dashboard", Decision{RedirectTo: "/admin-dashboard"}},
		{"provider dispatched from base dashboard", RoleProvider, "/dashboard", Decision{RedirectTo: "/provider-dashboard"}},
		{"customer stays on base dashboard", RoleCustomer, "/dashboard", Decision{Allow: true}},
		{"customer bounced from admin dashboard", RoleCustomer, "/admin-dashboard/users", Decision{RedirectTo: "/dashboard"}},
		{"provider bounced from admin dashboard", RoleProvider, "/admin-dashboard", Decision{RedirectTo: "/dashboard"}},
		{"admin bounced from provider dashboard", RoleAdmin, "/provider-dashboard/menu", Decision{RedirectTo: "/dashboard"}},
		{"admin allowed on own dashboard", RoleAdmin, "/admin-dashboard/orders", Decision{Allow: true}},
		{"provider allowed on own dashboard", RoleProvider, "/provider-dashboard", Decision{Allow: true}},
		{"customer allowed on own pages", RoleCustomer, "/dashboard/my-orders", Decision{Allow: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveAccess(tc.role, tc.path))
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleProvider.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("WAITER").Valid())
	assert.False(t, Role("").Valid())
}
