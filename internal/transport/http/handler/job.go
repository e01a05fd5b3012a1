package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sakibh04/Job-Application-Tracker/internal/app"
	"github.com/Sakibh04/Job-Application-Tracker/internal/export"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/middleware"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/response"
)

type JobHandler struct {
	jobService *app.JobService
}

// JobRequest mirrors the dashboard form: camelCase keys on the way in,
// snake_case model tags on the way out.
type JobRequest struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Status      string  `json:"status"`
	AppliedDate *string `json:"appliedDate"`
	JobURL      string  `json:"jobUrl"`
	Salary      string  `json:"salary"`
	Notes       string  `json:"notes"`
}

func NewJobHandler(jobService *app.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func (h *JobHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobs, err := h.jobService.List(app.ListJobsInput{
		UserID:    userID,
		Status:    c.Query("status"),
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job, err := h.jobService.Create(userID, req.toInput())
	if err != nil {
		if errors.Is(err, app.ErrCompanyPositionRequired) {
			response.Error(c, http.StatusBadRequest, "Company and position are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, ok := parseJobID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	job, err := h.jobService.Update(userID, jobID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCompanyPositionRequired):
			response.Error(c, http.StatusBadRequest, "Company and position are required")
		case errors.Is(err, app.ErrJobNotFound):
			response.Error(c, http.StatusNotFound, "Job not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update job")
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	jobID, ok := parseJobID(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	if err := h.jobService.Delete(userID, jobID); err != nil {
		if errors.Is(err, app.ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "Job not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	response.Message(c, http.StatusOK, "Job deleted successfully")
}

func (h *JobHandler) Stats(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	stats, err := h.jobService.Stats(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *JobHandler) ExportCSV(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobs, err := h.jobService.ListForExport(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to export jobs")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteJobs(&buf, jobs); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to export jobs")
		return
	}

	filename := export.Filename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (r JobRequest) toInput() app.JobInput {
	return app.JobInput{
		Company:     r.Company,
		Position:    r.Position,
		Status:      r.Status,
		AppliedDate: r.AppliedDate,
		JobURL:      r.JobURL,
		Salary:      r.Salary,
		Notes:       r.Notes,
	}
}

func parseJobID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(raw), true
}

func getUserIDFromContext(c *gin.Context) (uint, bool) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := userIDAny.(uint)
	return userID, ok
}
