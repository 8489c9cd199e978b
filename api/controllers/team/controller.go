package team_controller

import (
	teammodel "github.com/sinaridesa/sinari-api/api/model/teamModel"
)

// TeamController handles team member HTTP requests
type TeamController struct {
	teamRepo teammodel.ITeamRepository
}

// NewTeamController creates a new team controller with injected dependencies
func NewTeamController(teamRepo teammodel.ITeamRepository) *TeamController {
	return &TeamController{
		teamRepo: teamRepo,
	}
}
