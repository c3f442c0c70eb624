package hrcontext

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidProfile = errors.New("default employee profile is invalid")
	ErrInvalidCatalog = errors.New("policy catalog is invalid")
)

// UserContext is one employee's profile. It is created once per session and
// never mutated afterwards.
type UserContext struct {
	UserID         string  `json:"user_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Position       string  `json:"position"`
	CurrentSalary  float64 `json:"current_salary"`
	EmployeeRating int     `json:"employee_rating"` // 0..100
}

// PolicyCatalog holds the process-wide reference lists tools read from.
// Vacation dates are ISO 8601 (YYYY-MM-DD) strings compared by exact equality.
type PolicyCatalog struct {
	VacationDates    []string `json:"vacation_dates"`
	RaisePercentages []int    `json:"raise_percentages"`
}

// SessionContext bundles the employee profile and policy catalog for one
// conversation. It is passed by reference to every tool and hook invocation
// during a turn and is read-only for its whole lifetime, so concurrent tool
// calls need no locking.
type SessionContext struct {
	SessionID string
	TenantID  string
	User      UserContext
	Policy    PolicyCatalog
}

// Process-wide defaults. These are business constants, not configuration;
// changing them is a code change.
var (
	defaultUser = UserContext{
		UserID:         "123_id",
		FirstName:      "Alex",
		LastName:       "Johnson",
		Position:       "Senior Software Engineer",
		CurrentSalary:  95000,
		EmployeeRating: 85,
	}

	defaultCatalog = PolicyCatalog{
		VacationDates: []string{
			"2025-08-15",
			"2025-08-20",
			"2025-08-21",
			"2025-09-01",
			"2025-09-05",
			"2025-09-12",
		},
		RaisePercentages: []int{5, 10, 15, 20},
	}
)

// ValidateDefaults checks the built-in profile template and policy catalog.
// It is called once at process start; a failure is fatal, the process must
// not serve requests with broken reference data.
func ValidateDefaults() error {
	if err := validateUser(defaultUser); err != nil {
		return err
	}
	return validateCatalog(defaultCatalog)
}

func validateUser(u UserContext) error {
	if strings.TrimSpace(u.UserID) == "" {
		return fmt.Errorf("%w: user id is empty", ErrInvalidProfile)
	}
	if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
		return fmt.Errorf("%w: employee name is empty", ErrInvalidProfile)
	}
	if u.CurrentSalary <= 0 {
		return fmt.Errorf("%w: current salary must be positive", ErrInvalidProfile)
	}
	if u.EmployeeRating < 0 || u.EmployeeRating > 100 {
		return fmt.Errorf("%w: employee rating %d outside [0, 100]", ErrInvalidProfile, u.EmployeeRating)
	}
	return nil
}

func validateCatalog(c PolicyCatalog) error {
	if len(c.VacationDates) == 0 {
		return fmt.Errorf("%w: no vacation dates", ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(c.VacationDates))
	for _, d := range c.VacationDates {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("%w: empty vacation date", ErrInvalidCatalog)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: duplicate vacation date %s", ErrInvalidCatalog, d)
		}
		seen[d] = struct{}{}
	}
	if len(c.RaisePercentages) == 0 {
		return fmt.Errorf("%w: no raise percentages", ErrInvalidCatalog)
	}
	for _, p := range c.RaisePercentages {
		if p <= 0 {
			return fmt.Errorf("%w: raise percentage %d must be positive", ErrInvalidCatalog, p)
		}
	}
	return nil
}

// New builds the SessionContext for one conversation. A non-empty userID
// overrides only the identifier of the default profile; all other profile
// fields and the catalog come from the process-wide defaults. The catalog
// slices are copied so a session can never observe another session's edits.
func New(sessionID, tenantID, userID string) *SessionContext {
	user := defaultUser
	if trimmed := strings.TrimSpace(userID); trimmed != "" {
		user.UserID = trimmed
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = "default"
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		tenantID = "default-tenant"
	}

	return &SessionContext{
		SessionID: sessionID,
		TenantID:  tenantID,
		User:      user,
		Policy: PolicyCatalog{
			VacationDates:    append([]string(nil), defaultCatalog.VacationDates...),
			RaisePercentages: append([]int(nil), defaultCatalog.RaisePercentages...),
		},
	}
}
