package app

import (
	"errors"
	"strings"

	"github.com/Sakibh04/Job-Application-Tracker/internal/model"
	"github.com/Sakibh04/Job-Application-Tracker/internal/repository"
)

var (
	ErrJobNotFound             = errors.New("job not found")
	ErrCompanyPositionRequired = errors.New("company and position are required")
)

const defaultStatus = "applied"

type JobService struct {
	jobRepo *repository.JobRepository
}

type JobInput struct {
	Company     string
	Position    string
	Status      string
	AppliedDate *string
	JobURL      string
	Salary      string
	Notes       string
}

type ListJobsInput struct {
	UserID    uint
	Status    string
	SortBy    string
	SortOrder string
}

type Stats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

func NewJobService(jobRepo *repository.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

func (s *JobService) Create(userID uint, input JobInput) (*model.Job, error) {
	if strings.TrimSpace(input.Company) == "" || strings.TrimSpace(input.Position) == "" {
		return nil, ErrCompanyPositionRequired
	}

	job := &model.Job{
		UserID:      userID,
		Company:     input.Company,
		Position:    input.Position,
		Status:      statusOrDefault(input.Status),
		AppliedDate: input.AppliedDate,
		JobURL:      input.JobURL,
		Salary:      input.Salary,
		Notes:       input.Notes,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) List(input ListJobsInput) ([]model.Job, error) {
	return s.jobRepo.ListByUserID(input.UserID, input.Status, input.SortBy, input.SortOrder)
}

// Update overwrites every mutable field of the job. A job that does not exist
// or belongs to another user is reported as not found either way.
func (s *JobService) Update(userID, jobID uint, input JobInput) (*model.Job, error) {
	if strings.TrimSpace(input.Company) == "" || strings.TrimSpace(input.Position) == "" {
		return nil, ErrCompanyPositionRequired
	}

	job, err := s.jobRepo.GetByIDAndUserID(jobID, userID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	job.Company = input.Company
	job.Position = input.Position
	job.Status = statusOrDefault(input.Status)
	job.AppliedDate = input.AppliedDate
	job.JobURL = input.JobURL
	job.Salary = input.Salary
	job.Notes = input.Notes

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) Delete(userID, jobID uint) error {
	job, err := s.jobRepo.GetByIDAndUserID(jobID, userID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	return s.jobRepo.DeleteByIDAndUserID(jobID, userID)
}

func (s *JobService) Stats(userID uint) (*Stats, error) {
	total, err := s.jobRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.jobRepo.CountByStatus(userID)
	if err != nil {
		return nil, err
	}
	return &Stats{Total: total, ByStatus: byStatus}, nil
}

// ListForExport returns the user's jobs newest first, the order the CSV
// export emits them in.
func (s *JobService) ListForExport(userID uint) ([]model.Job, error) {
	return s.jobRepo.ListByUserID(userID, "", "created_at", "desc")
}

func statusOrDefault(status string) string {
	if strings.TrimSpace(status) == "" {
		return defaultStatus
	}
	return status
}
