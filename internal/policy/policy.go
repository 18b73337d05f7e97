// Package policy holds the stateless access decisions for every resource
// action. Each function takes the caller's resolved identity (nil when
// unauthenticated) and returns nil when the action is permitted. Role checks
// live here, once per action, rather than scattered across handlers.
package policy

import (
	"github.com/google/uuid"

	"github.com/Skanda2852b/payrollmanagement/internal/apierror"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Identity is the resolved, authenticated user derived from a verified
// token. It never carries the password hash.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// Scope bounds a list query: All means unrestricted; otherwise only rows
// owned by EmployeeID may be returned.
type Scope struct {
	All        bool
	EmployeeID uuid.UUID
}

// An absent or unverifiable token is "unauthenticated" (401); an
// authenticated caller with the wrong role is "forbidden" (403). The two are
// never conflated.

func CanSubmitExpense(caller *Identity) error {
	if caller == nil {
		return apierror.Authentication("Unauthorized")
	}
	if caller.Role != RoleEmployee {
		return apierror.Authorization("Only employees can submit expenses")
	}
	return nil
}

func CanGenerateSalary(caller *Identity) error {
	if caller == nil {
		return apierror.Authentication("Unauthorized")
	}
	if caller.Role != RoleAdmin {
		return apierror.Authorization("Only admins can generate salary slips")
	}
	return nil
}

func CanListEmployees(caller *Identity) error {
	if caller == nil {
		return apierror.Authentication("Unauthorized")
	}
	if caller.Role != RoleAdmin {
		return apierror.Authorization("Only admins can list employees")
	}
	return nil
}

func CanUpdateSalary(caller *Identity) error {
	if caller == nil {
		return apierror.Authentication("Unauthorized")
	}
	if caller.Role != RoleAdmin {
		return apierror.Authorization("Only admins can update salaries")
	}
	return nil
}

// ExpenseScope decides how an expense listing must be filtered for the
// caller: admins see every record, employees only their own.
func ExpenseScope(caller *Identity) (Scope, error) {
	if caller == nil {
		return Scope{}, apierror.Authentication("Unauthorized")
	}
	if caller.Role == RoleAdmin {
		return Scope{All: true}, nil
	}
	return Scope{EmployeeID: caller.ID}, nil
}

// SalaryScope decides how a salary-record listing must be filtered for the
// caller. Same shape as ExpenseScope; kept separate so the two resources can
// diverge without touching callers.
func SalaryScope(caller *Identity) (Scope, error) {
	return ExpenseScope(caller)
}
