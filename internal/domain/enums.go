package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// UserStatus represents whether an account may use the app.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

func (s UserStatus) String() string { return string(s) }

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusSuspended:
		return true
	}
	return false
}

// AdminAction is the kind of moderation action recorded in the admin log.
type AdminAction string

const (
	AdminActionFlagContent    AdminAction = "flag_content"
	AdminActionUnflagContent  AdminAction = "unflag_content"
	AdminActionDeleteContent  AdminAction = "delete_content"
	AdminActionSuspendUser    AdminAction = "suspend_user"
	AdminActionReactivateUser AdminAction = "reactivate_user"
	AdminActionSetDailyLimit  AdminAction = "set_daily_limit"
)

func (a AdminAction) String() string { return string(a) }

func (a AdminAction) IsValid() bool {
	switch a {
	case AdminActionFlagContent, AdminActionUnflagContent, AdminActionDeleteContent,
		AdminActionSuspendUser, AdminActionReactivateUser, AdminActionSetDailyLimit:
		return true
	}
	return false
}

// TargetType identifies the kind of entity an admin action applies to.
type TargetType string

const (
	TargetTypeUser     TargetType = "user"
	TargetTypeAnalysis TargetType = "analysis"
)

func (t TargetType) String() string { return string(t) }
