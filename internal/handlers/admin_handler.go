package handlers

import (
	"net/http"
	"strconv"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles the admin moderation surface: challenge approve/reject,
// the flattened admin listings and user deactivation.
type AdminHandler struct {
	moderationService *services.ModerationService
	challengeService  *services.ChallengeService
	userService       *services.UserService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(moderationService *services.ModerationService, challengeService *services.ChallengeService, userService *services.UserService) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		challengeService:  challengeService,
		userService:       userService,
	}
}

// RegisterAdminRoutes registers admin moderation routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/challenges", h.ListChallenges)
	g.GET("/challenges/:id", h.GetChallengeDetail)
	g.PUT("/challenges/:id/approve", h.ApproveChallenge)
	g.PUT("/challenges/:id/reject", h.RejectChallenge)
	g.DELETE("/challenges/:id", h.HardDeleteChallenge)
	g.GET("/users", h.ListUsers)
	g.DELETE("/users/:id", h.DeactivateUser)
}

// ListChallenges returns the flattened admin challenge listing.
// keyword, status and sort accept the localized tokens.
func (h *AdminHandler) ListChallenges(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	rows, pageInfo, err := h.moderationService.List(services.AdminListQuery{
		Keyword:     c.QueryParam("keyword"),
		StatusToken: c.QueryParam("status"),
		SortToken:   c.QueryParam("sort"),
		Page:        page,
		PageSize:    limit,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       rows,
		"pagination": pageInfo,
	})
}

// GetChallengeDetail returns the flattened admin challenge detail
func (h *AdminHandler) GetChallengeDetail(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.moderationService.Detail(id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": detail})
}

// ApproveChallenge approves a pending challenge
func (h *AdminHandler) ApproveChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	challenge, err := h.moderationService.Approve(id, getUserIDFromContext(c))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": challenge})
}

// RejectChallenge rejects a challenge with a reason
func (h *AdminHandler) RejectChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req models.RejectChallengeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	challenge, err := h.moderationService.Reject(id, getUserIDFromContext(c), req.Reason)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": challenge})
}

// HardDeleteChallenge physically removes a challenge
func (h *AdminHandler) HardDeleteChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.challengeService.HardDelete(id); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListUsers returns a paginated listing of active users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	users, pageInfo, err := h.userService.List(page, limit)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       users,
		"pagination": pageInfo,
	})
}

// DeactivateUser soft-deletes a user account
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if _, err := h.userService.Deactivate(uint(userID)); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
