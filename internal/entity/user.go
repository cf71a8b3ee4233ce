package entity

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleMember    UserRole = "member"
	RoleLibrarian UserRole = "librarian"
)

// MinMotivationLength is the minimum number of characters a member must write
// when petitioning for the librarian role.
const MinMotivationLength = 50

type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Password    string     `json:"-"`
	Role        UserRole   `json:"role"`
	MemberSince *time.Time `json:"member_since,omitempty"`
	AppointedAt *time.Time `json:"appointed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (u *User) IsMember() bool {
	return u.Role == RoleMember
}

func (u *User) IsLibrarian() bool {
	return u.Role == RoleLibrarian
}

// CanSubmit reports whether the user may propose works for the catalog.
func (u *User) CanSubmit() bool {
	return u.Role == RoleMember || u.Role == RoleLibrarian
}

// CanBorrow reports whether the user may take works on loan.
// Librarians keep member privileges.
func (u *User) CanBorrow() bool {
	return u.Role == RoleMember || u.Role == RoleLibrarian
}

// CanModerate reports whether the user may review submitted works.
func (u *User) CanModerate() bool {
	return u.Role == RoleLibrarian
}

func (u *User) CanApproveWork() bool {
	return u.IsLibrarian()
}

func (u *User) CanRejectWork() bool {
	return u.IsLibrarian()
}

func (u *User) CanManageUsers() bool {
	return u.IsLibrarian()
}

// ChangeName replaces the display name. The name must not be blank.
func (u *User) ChangeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidation("name cannot be empty")
	}
	u.FullName = name
	u.UpdatedAt = time.Now()
	return nil
}

// RequestLibrarianRole validates that the user is entitled to petition for the
// librarian role with the given motivation. Only members may petition, and the
// motivation must carry at least MinMotivationLength characters.
func (u *User) RequestLibrarianRole(motivation string) error {
	if !u.IsMember() {
		return NewValidation("only members can request the librarian role")
	}
	if len(strings.TrimSpace(motivation)) < MinMotivationLength {
		return NewValidation("motivation must contain at least 50 characters")
	}
	return nil
}

// PromoteToLibrarian grants the librarian role and stamps the appointment date.
func (u *User) PromoteToLibrarian() {
	now := time.Now()
	u.Role = RoleLibrarian
	u.AppointedAt = &now
	u.UpdatedAt = now
}
