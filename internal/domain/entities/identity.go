package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Role is a caller role as issued by the identity provider.
type Role string

const (
	RoleLecturer             Role = "Lecturer"
	RoleManager              Role = "Manager"
	RoleProgrammeCoordinator Role = "Programme Coordinator"
	RoleHR                   Role = "HR"
)

var (
	SubmitterRoles = []Role{RoleLecturer}
	ApproverRoles  = []Role{RoleManager, RoleProgrammeCoordinator}
	EditorRoles    = []Role{RoleManager, RoleProgrammeCoordinator, RoleHR}
	ReportRoles    = []Role{RoleHR, RoleManager, RoleProgrammeCoordinator}
)

// ParseRole matches role names case-insensitively; unknown names return false.
func ParseRole(raw string) (Role, bool) {
	v := strings.TrimSpace(raw)
	for _, r := range []Role{RoleLecturer, RoleManager, RoleProgrammeCoordinator, RoleHR} {
		if strings.EqualFold(string(r), v) {
			return r, true
		}
	}
	return "", false
}

// Caller is the authenticated principal of a request.
type Caller struct {
	Username string
	Roles    []Role
}

func (c Caller) HasAnyRole(roles ...Role) bool {
	for _, have := range c.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

func (c Caller) IsStaff() bool {
	return c.HasAnyRole(EditorRoles...)
}

// SubmitterProfile is owned by the identity directory. HourlyRate is the
// authoritative rate for every submission by this user.
type SubmitterProfile struct {
	Username   string          `json:"username"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (p SubmitterProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
