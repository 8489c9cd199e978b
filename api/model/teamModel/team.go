package teammodel

import (
	"errors"
	"log/slog"

	"github.com/sinaridesa/sinari-api/type/shared/model"
	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team member not found")

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// connectSkills resolves skill names to rows, creating missing ones.
func (r *TeamRepository) connectSkills(names []string) ([]*model.Skill, error) {
	skills := make([]*model.Skill, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		skill := new(model.Skill)
		if err := r.db.Where(model.Skill{Name: name}).FirstOrCreate(skill).Error; err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func (r *TeamRepository) Create(team *model.Team, skillNames []string) (*model.Team, error) {
	skills, skillErr := r.connectSkills(skillNames)
	if skillErr != nil {
		slog.Error("Team Create connect skills", "error", skillErr)
		return nil, skillErr
	}
	team.Skills = skills

	if createErr := r.db.Create(team).Error; createErr != nil {
		slog.Error("Team Create", "error", createErr, "name", team.Name)
		return nil, createErr
	}

	return team, nil
}

// List returns a page of team members plus the total match count. Search is a
// case-insensitive substring match over the member name or any skill name.
func (r *TeamRepository) List(page int, limit int, search string) ([]*model.Team, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	idQuery := r.db.Model(&model.Team{}).Select("DISTINCT teams.id")
	if search != "" {
		pattern := "%" + search + "%"
		idQuery = idQuery.
			Joins("LEFT JOIN team_skills ON team_skills.team_id = teams.id").
			Joins("LEFT JOIN skills ON skills.id = team_skills.skill_id").
			Where("teams.name ILIKE ? OR skills.name ILIKE ?", pattern, pattern)
	}

	var total int64
	if countErr := r.db.Model(&model.Team{}).Where("id IN (?)", idQuery).Count(&total).Error; countErr != nil {
		slog.Error("Team List count", "error", countErr, "search", search)
		return nil, 0, countErr
	}

	var teams []*model.Team
	findErr := r.db.Preload("Skills").
		Where("id IN (?)", idQuery).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&teams).Error

	if findErr != nil {
		slog.Error("Team List", "error", findErr, "search", search)
		return nil, 0, findErr
	}

	return teams, total, nil
}

func (r *TeamRepository) GetById(id int32) (*model.Team, error) {
	team := new(model.Team)

	queryErr := r.db.Preload("Skills").Where("id = ?", id).First(team).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Team GetById", "error", queryErr, "team_id", id)
		return nil, queryErr
	}

	return team, nil
}

// Update applies field updates and, when skillNames is non-nil, replaces the
// member's skill set wholesale.
func (r *TeamRepository) Update(id int32, updates map[string]any, skillNames []string) (*model.Team, error) {
	team := new(model.Team)

	queryErr := r.db.Where("id = ?", id).First(team).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		slog.Error("Team Update find", "error", queryErr, "team_id", id)
		return nil, queryErr
	}

	if len(updates) > 0 {
		if updateErr := r.db.Model(team).Updates(updates).Error; updateErr != nil {
			slog.Error("Team Update", "error", updateErr, "team_id", id)
			return nil, updateErr
		}
	}

	if skillNames != nil {
		skills, skillErr := r.connectSkills(skillNames)
		if skillErr != nil {
			slog.Error("Team Update connect skills", "error", skillErr, "team_id", id)
			return nil, skillErr
		}
		if replaceErr := r.db.Model(team).Association("Skills").Replace(skills); replaceErr != nil {
			slog.Error("Team Update replace skills", "error", replaceErr, "team_id", id)
			return nil, replaceErr
		}
	}

	return r.GetById(id)
}

func (r *TeamRepository) Delete(id int32) error {
	team := new(model.Team)

	queryErr := r.db.Where("id = ?", id).First(team).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		slog.Error("Team Delete find", "error", queryErr, "team_id", id)
		return queryErr
	}

	if clearErr := r.db.Model(team).Association("Skills").Clear(); clearErr != nil {
		slog.Error("Team Delete clear skills", "error", clearErr, "team_id", id)
		return clearErr
	}

	if deleteErr := r.db.Delete(team).Error; deleteErr != nil {
		slog.Error("Team Delete", "error", deleteErr, "team_id", id)
		return deleteErr
	}

	return nil
}
