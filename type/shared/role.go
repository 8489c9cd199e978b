package shared

// Role is the closed set of principal roles the platform knows about.
// Authorization checks must match exhaustively instead of comparing raw strings.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Position is the closed set of team member positions.
type Position string

const (
	PositionMentor     Position = "MENTOR"
	PositionSinaridesa Position = "SINARIDESA_TEAM"
)

func (p Position) Valid() bool {
	switch p {
	case PositionMentor, PositionSinaridesa:
		return true
	}
	return false
}
