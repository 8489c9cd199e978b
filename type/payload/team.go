package payload

type CreateTeamPayload struct {
	Name     string   `json:"name" form:"name" validate:"required"`
	Position string   `json:"position" form:"position" validate:"required,oneof=MENTOR SINARIDESA_TEAM"`
	Skills   []string `json:"skills" form:"skills"`
}

type UpdateTeamPayload struct {
	Name     *string  `json:"name" form:"name"`
	Position *string  `json:"position" form:"position" validate:"omitempty,oneof=MENTOR SINARIDESA_TEAM"`
	Skills   []string `json:"skills" form:"skills"`
}

// TeamListQuery carries pagination and search parameters for the team listing.
type TeamListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

type PagedTeams struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
