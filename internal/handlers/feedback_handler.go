package handlers

import (
	"net/http"
	"strconv"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FeedbackHandler handles HTTP requests related to feedback on attends
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// RegisterFeedbackRoutes registers feedback-related routes
func (h *FeedbackHandler) RegisterFeedbackRoutes(g *echo.Group) {
	g.POST("/attends/:attend_id/feedbacks", h.CreateFeedback)
	g.GET("/attends/:attend_id/feedbacks", h.ListFeedbacks)
	g.PUT("/feedbacks/:id", h.UpdateFeedback)
	g.DELETE("/feedbacks/:id", h.DeleteFeedback)
}

// CreateFeedback leaves feedback on an attend
func (h *FeedbackHandler) CreateFeedback(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	attendID, err := strconv.ParseUint(c.Param("attend_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attend ID")
	}

	var req models.CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	feedback, err := h.feedbackService.Create(uint(attendID), currentUserID, req.Content)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": feedback})
}

// ListFeedbacks returns all feedback for an attend
func (h *FeedbackHandler) ListFeedbacks(c echo.Context) error {
	attendID, err := strconv.ParseUint(c.Param("attend_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attend ID")
	}

	feedbacks, err := h.feedbackService.ListByAttend(uint(attendID))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": feedbacks})
}

// ownedFeedback loads the feedback and enforces author-or-admin access.
func (h *FeedbackHandler) ownedFeedback(c echo.Context, id uint) (*models.Feedback, error) {
	feedback, err := h.feedbackService.Get(id)
	if err != nil {
		return nil, serviceError(err)
	}
	if feedback.UserID != getUserIDFromContext(c) && !isAdmin(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this feedback")
	}
	return feedback, nil
}

// UpdateFeedback updates feedback content (author or admin only)
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid feedback ID")
	}

	var req models.UpdateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.ownedFeedback(c, uint(feedbackID)); err != nil {
		return err
	}

	feedback, err := h.feedbackService.Update(uint(feedbackID), req.Content)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": feedback})
}

// DeleteFeedback deletes feedback (author or admin only)
func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	feedbackID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid feedback ID")
	}

	if _, err := h.ownedFeedback(c, uint(feedbackID)); err != nil {
		return err
	}

	if err := h.feedbackService.Delete(uint(feedbackID)); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
