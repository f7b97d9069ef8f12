// Package authz holds the role model and the routing policy that decides,
// independent of any HTTP framework, whether a role may see a path or must
// be redirected elsewhere.
package authz

import "strings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleProvider Role = "PROVIDER"
	RoleCustomer Role = "CUSTOMER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProvider, RoleCustomer:
		return true
	}
	return false
}

// Decision is the outcome of ResolveAccess: either the request proceeds or
// the caller is redirected.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func allow() Decision             { return Decision{Allow: true} }
func redirect(to string) Decision { return Decision{RedirectTo: to} }

// ResolveAccess applies the dashboard routing rules. An empty role means no
// session. The base /dashboard path dispatches admins and providers to their
// own dashboards; role-prefixed dashboards bounce everyone else back.
func ResolveAccess(role Role, path string) Decision {
	if role == "" {
		if path == "/sign-in" {
			return allow()
		}
		return redirect("/sign-in")
	}

	if path == "/dashboard" {
		switch role {
		case RoleAdmin:
			return redirect("/admin-dashboard")
		case RoleProvider:
			return redirect("/provider-dashboard")
		}
		return allow()
	}

	if strings.HasPrefix(path, "/admin-dashboard") && role != RoleAdmin {
		return redirect("/dashboard")
	}
	if strings.HasPrefix(path, "/provider-dashboard") && role != RoleProvider {
		return redirect("/dashboard")
	}

	return allow()
}
