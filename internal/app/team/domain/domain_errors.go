package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrTeamMemberNotFound     = errors.New("team member not found")
	ErrTeamMemberExists       = errors.New("team member already exists")
	ErrEmailTaken             = errors.New("email already belongs to another team member")
	ErrEmptyID                = errors.New("team member id cannot be empty")
	ErrEmptyMemberName        = errors.New("team member name cannot be empty")
	ErrEmptyEmail             = errors.New("team member email cannot be empty")
	ErrInvalidEmail           = errors.New("team member email is not valid")
	ErrInvalidRole            = errors.New("unknown role")
	ErrInvalidStatus          = errors.New("unknown status")
	ErrInvalidPermissionLevel = errors.New("unknown permission level")
	ErrInvalidSection         = errors.New("unknown section")
)
