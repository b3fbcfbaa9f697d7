package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrdesk/hr-backend/pkg/config"
	"github.com/hrdesk/hr-backend/pkg/errors"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

// Roles handed back to the client on login
const (
	RoleHRManager         = "HR_MANAGER"
	RoleDepartmentManager = "DEPARTMENT_MANAGER"
	RoleEmployee          = "EMPLOYEE"
)

// Identifier is a login id. Clients send it either as a JSON string or a JSON number.
type Identifier string

// UnmarshalJSON accepts "100" as well as 100
func (id *Identifier) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = Identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = Identifier(n.String())
	return nil
}

// LoginRequest represents a login request
type LoginRequest struct {
	StaffID  Identifier `json:"staffId"`
	Password string     `json:"password"`
}

// LoginResponse is the identity the client keeps for the session.
// No token is issued.
type LoginResponse struct {
	StaffID   string  `json:"staffId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Role      string  `json:"role"`
	SectionID *string `json:"sectionId,omitempty"`
}

// AuthService handles authentication logic
type AuthService struct {
	staff    StaffStore
	sections SectionStore
	admin    config.AuthConfig
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(staff StaffStore, sections SectionStore, admin config.AuthConfig, log *logger.Logger) *AuthService {
	return &AuthService{
		staff:    staff,
		sections: sections,
		admin:    admin,
		logger:   log.WithComponent("auth"),
	}
}

// Login checks the built-in administrative account first, then the staff table.
// Every failure (unparseable id, unknown id, wrong password) is InvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	identifier := string(req.StaffID)

	if identifier == s.admin.AdminID && req.Password == s.admin.AdminPassword {
		s.logger.WithStaffID(identifier).Info().Str("role", RoleHRManager).Msg("login succeeded")
		return &LoginResponse{
			StaffID:   s.admin.AdminID,
			FirstName: s.admin.AdminFirstName,
			LastName:  s.admin.AdminLastName,
			Role:      RoleHRManager,
		}, nil
	}

	id, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		s.logger.Debug().Str("staff_id", identifier).Msg("login rejected: identifier is not numeric")
		return nil, errors.InvalidCredentials()
	}

	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			s.logger.Debug().Int64("staff_id", id).Msg("login rejected: unknown staff")
			return nil, errors.InvalidCredentials()
		}
		return nil, err
	}

	if !passwordMatches(staff.Password, req.Password) {
		s.logger.Debug().Int64("staff_id", id).Msg("login rejected: wrong password")
		return nil, errors.InvalidCredentials()
	}

	resp := &LoginResponse{
		StaffID:   strconv.FormatInt(staff.ID, 10),
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		Role:      RoleEmployee,
	}

	managed, err := s.sections.ManagedBy(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	if managed != nil {
		sectionID := strconv.FormatInt(*managed, 10)
		resp.Role = RoleDepartmentManager
		resp.SectionID = &sectionID
	}

	s.logger.WithStaffID(resp.StaffID).Info().Str("role", resp.Role).Msg("login succeeded")
	return resp, nil
}

// passwordMatches compares plaintext first. A stored value shaped like a bcrypt hash
// is then also verified with bcrypt.
func passwordMatches(stored, given string) bool {
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1 {
		return true
	}
	return isBcryptHash(stored) && bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
