// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the job function a user holds within the firm.
// Roles are advisory metadata today: they are stored and carried in token
// claims, but no cost-tracking operation is gated on them.
type Role string

const (
	// RolePM indicates a project manager.
	RolePM Role = "pm"
	// RoleEstimator indicates an estimator.
	RoleEstimator Role = "estimator"
	// RoleAccountant indicates an accountant.
	RoleAccountant Role = "accountant"
	// RoleExecutive indicates an executive.
	RoleExecutive Role = "executive"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePM, RoleEstimator, RoleAccountant, RoleExecutive:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
