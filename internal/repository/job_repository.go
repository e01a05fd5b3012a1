package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Sakibh04/Job-Application-Tracker/internal/model"
)

// sortColumns is the allow-list of ORDER BY targets. Anything else leaves the
// result unsorted rather than reaching the SQL layer.
var sortColumns = map[string]string{
	"company":      "company",
	"position":     "position",
	"status":       "status",
	"applied_date": "applied_date",
	"created_at":   "created_at",
}

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(job *model.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("create job failed: %w", err)
	}
	return nil
}

// ListByUserID returns the user's jobs, optionally filtered by exact status
// and ordered by one of the allow-listed columns.
func (r *JobRepository) ListByUserID(userID uint, status, sortBy, sortOrder string) ([]model.Job, error) {
	query := r.db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if column, ok := sortColumns[sortBy]; ok {
		direction := "DESC"
		if strings.EqualFold(sortOrder, "asc") {
			direction = "ASC"
		}
		query = query.Order(column + " " + direction)
	}

	jobs := make([]model.Job, 0)
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs failed: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) GetByIDAndUserID(jobID, userID uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.Where("id = ? AND user_id = ?", jobID, userID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job failed: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) Update(job *model.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("update job failed: %w", err)
	}
	return nil
}

func (r *JobRepository) DeleteByIDAndUserID(jobID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", jobID, userID).Delete(&model.Job{}).Error; err != nil {
		return fmt.Errorf("delete job failed: %w", err)
	}
	return nil
}

func (r *JobRepository) CountByUserID(userID uint) (int64, error) {
	var total int64
	if err := r.db.Model(&model.Job{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count jobs failed: %w", err)
	}
	return total, nil
}

func (r *JobRepository) CountByStatus(userID uint) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.Model(&model.Job{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count jobs by status failed: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
