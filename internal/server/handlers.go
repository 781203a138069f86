package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/alkime/creatoros/internal/content"
	"github.com/alkime/creatoros/internal/creator"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func (s *Server) handleUpsertProfile(c *gin.Context) {
	var in creator.ProfileInput
	if err := bindJSON(c, &in); err != nil {
		s.writeError(c, err)
		return
	}

	profile, err := s.service.UpsertProfile(c.Request.Context(), in)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleGetProfile(c *gin.Context) {
	profile, err := s.service.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleGenerateContent(c *gin.Context) {
	var req creator.GenerateContentRequest
	if err := bindJSON(c, &req); err != nil {
		s.writeError(c, err)
		return
	}

	item, err := s.service.GenerateContent(c.Request.Context(), req)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (s *Server) handleContentHistory(c *gin.Context) {
	limit := content.HistoryListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(c, fmt.Errorf("%w: limit must be an integer", content.ErrInvalidInput))
			return
		}
		limit = n
	}

	items, err := s.service.History(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	var req creator.GeneratePlanRequest
	if err := bindJSON(c, &req); err != nil {
		s.writeError(c, err)
		return
	}

	plan, err := s.service.GeneratePlan(c.Request.Context(), req.UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// handleTodayPlan answers with the plan or a JSON null when none exists yet.
func (s *Server) handleTodayPlan(c *gin.Context) {
	plan, err := s.service.TodayPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// writeError maps service and binding errors to a status and a
// {"detail": ...} body.
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		genErr     *content.GenerationError
		validation validator.ValidationErrors
	)

	switch {
	case errors.Is(err, content.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
	case errors.As(err, &genErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": fmt.Sprintf("Failed to generate %s: %v", genErr.Op, genErr.Err),
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationDetail(validation)})
	case errors.Is(err, content.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	default:
		s.logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

// bindJSON decodes and validates the request body. Failures wrap
// content.ErrInvalidInput.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("%w: %w", content.ErrInvalidInput, err)
	}

	return nil
}

func validationDetail(errs validator.ValidationErrors) string {
	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(fields, "; ")
}
