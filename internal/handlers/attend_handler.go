package handlers

import (
	"net/http"
	"strconv"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AttendHandler handles HTTP requests related to work submissions
type AttendHandler struct {
	attendService *services.AttendService
}

// NewAttendHandler creates a new AttendHandler
func NewAttendHandler(attendService *services.AttendService) *AttendHandler {
	return &AttendHandler{attendService: attendService}
}

// RegisterAttendRoutes registers attend-related routes
func (h *AttendHandler) RegisterAttendRoutes(g *echo.Group) {
	g.POST("/challenges/:challenge_id/attends", h.CreateAttend)
	g.GET("/challenges/:challenge_id/attends", h.ListAttends)
	g.DELETE("/attends/:id", h.DeleteAttend)
	g.POST("/attends/:id/like", h.LikeAttend)
	g.DELETE("/attends/:id/like", h.UnlikeAttend)
}

// CreateAttend submits or drafts work for a challenge
func (h *AttendHandler) CreateAttend(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	challengeID, err := strconv.ParseUint(c.Param("challenge_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid challenge ID")
	}

	var req models.CreateAttendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attend, err := h.attendService.Submit(uint(challengeID), currentUserID, req.Content, req.IsSave)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": attend})
}

// ListAttends returns the visible attends of a challenge
func (h *AttendHandler) ListAttends(c echo.Context) error {
	challengeID, err := strconv.ParseUint(c.Param("challenge_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid challenge ID")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	attends, pageInfo, err := h.attendService.List(uint(challengeID), page, limit)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       attends,
		"pagination": pageInfo,
	})
}

// DeleteAttend soft-deletes the caller's own attend
func (h *AttendHandler) DeleteAttend(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	attendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attend ID")
	}

	attend, err := h.attendService.Get(uint(attendID))
	if err != nil {
		return serviceError(err)
	}
	if attend.UserID != currentUserID && !isAdmin(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this attend")
	}

	if _, err := h.attendService.Remove(uint(attendID)); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LikeAttend records a like on an attend
func (h *AttendHandler) LikeAttend(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	attendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attend ID")
	}

	if err := h.attendService.Like(uint(attendID), currentUserID); err != nil {
		return serviceError(err)
	}

	count, _ := h.attendService.LikeCount(uint(attendID))
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"likes": count}})
}

// UnlikeAttend removes the caller's like from an attend
func (h *AttendHandler) UnlikeAttend(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	attendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attend ID")
	}

	if err := h.attendService.Unlike(uint(attendID), currentUserID); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
