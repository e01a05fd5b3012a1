// Package export serializes job records for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Sakibh04/Job-Application-Tracker/internal/model"
)

var csvHeader = []string{
	"company", "position", "status", "applied_date",
	"job_url", "salary", "notes", "created_at",
}

// WriteJobs emits a header row followed by one CSV row per job, in the order
// given (callers pass jobs newest first).
func WriteJobs(w io.Writer, jobs []model.Job) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header failed: %w", err)
	}
	for _, job := range jobs {
		appliedDate := ""
		if job.AppliedDate != nil {
			appliedDate = *job.AppliedDate
		}
		record := []string{
			job.Company,
			job.Position,
			job.Status,
			appliedDate,
			job.JobURL,
			job.Salary,
			job.Notes,
			job.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row failed: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Filename embeds the download date: job_applications_2006-01-02.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("job_applications_%s.csv", now.Format("2006-01-02"))
}
