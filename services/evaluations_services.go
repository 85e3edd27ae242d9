package services

import (
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Evaluation levels
const (
	LevelDepartmental = "departmental"
	LevelCollege      = "college"
)

const defaultFeedback = "Auto-generated feedback"

// ErrInvalidEvaluationLevel is returned for a level other than departmental or college
var ErrInvalidEvaluationLevel = errors.New("level must be departmental or college")

// AddTeamEvaluation appends a judge's evaluation to one of the team's two
// evaluation collections and refreshes that level's final score (mean of the
// judges' totals). Category totals and the overall total are computed here
// from the submitted sub-criteria; caller-supplied totals are ignored.
func AddTeamEvaluation(teamID int, level string, evaluation models.Evaluation) (*models.Team, error) {
	if level != LevelDepartmental && level != LevelCollege {
		return nil, ErrInvalidEvaluationLevel
	}
	normalizeEvaluation(&evaluation)

	defer metrics.TrackDatabaseOperation("update", "teams", time.Now())

	var team *models.Team
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the row for the duration of the transaction: the append below
		// is a read-modify-write, and two judges submitting at the same time
		// must not overwrite each other's evaluation.
		var t models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("team_id = ?", teamID).First(&t).Error; err != nil {
			return err
		}

		if level == LevelDepartmental {
			t.DepartmentalScores = append(t.DepartmentalScores, evaluation)
			t.DepartmentalFinalScore = meanTotal(t.DepartmentalScores)
		} else {
			t.CollegeScores = append(t.CollegeScores, evaluation)
			t.CollegeFinalScore = meanTotal(t.CollegeScores)
		}

		if err := tx.Save(&t).Error; err != nil {
			return fmt.Errorf("failed to save evaluation: %w", err)
		}
		team = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// SetTeamQualification flips the institute-level qualification flag
func SetTeamQualification(teamID int, qualified bool) (*models.Team, error) {
	var team models.Team
	if err := database.DB.Where("team_id = ?", teamID).First(&team).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&team).Update("qualified_for_institute", qualified).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// normalizeEvaluation fills in every fixed rubric category, recomputes the
// category totals from their sub-criteria and sums them into the total score.
func normalizeEvaluation(evaluation *models.Evaluation) {
	if evaluation.RubricScores == nil {
		evaluation.RubricScores = make(map[string]models.CategoryScore, len(models.RubricCategories))
	}

	total := 0.0
	for _, category := range models.RubricCategories {
		score := evaluation.RubricScores[category]
		if score.Subcriteria == nil {
			score.Subcriteria = map[string]float64{}
		}
		score.Total = 0
		for _, v := range score.Subcriteria {
			score.Total += v
		}
		evaluation.RubricScores[category] = score
		total += score.Total
	}
	// drop categories outside the fixed rubric
	for category := range evaluation.RubricScores {
		if !isRubricCategory(category) {
			delete(evaluation.RubricScores, category)
		}
	}

	evaluation.TotalScore = total
	if evaluation.Feedback == "" {
		evaluation.Feedback = defaultFeedback
	}
}

func isRubricCategory(name string) bool {
	for _, category := range models.RubricCategories {
		if category == name {
			return true
		}
	}
	return false
}

func meanTotal(evaluations []models.Evaluation) float64 {
	if len(evaluations) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range evaluations {
		sum += e.TotalScore
	}
	return sum / float64(len(evaluations))
}
