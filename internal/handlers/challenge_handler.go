package handlers

import (
	"net/http"
	"strconv"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ChallengeHandler handles HTTP requests related to challenges
type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

// NewChallengeHandler creates a new ChallengeHandler
func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// RegisterChallengeRoutes registers challenge-related routes
func (h *ChallengeHandler) RegisterChallengeRoutes(g *echo.Group) {
	g.POST("/challenges", h.CreateChallenge)
	g.GET("/challenges", h.ListChallenges)
	g.GET("/challenges/:id", h.GetChallenge)
	g.PUT("/challenges/:id", h.UpdateChallenge)
	g.PUT("/challenges/:id/cancel", h.CancelChallenge)
	g.DELETE("/challenges/:id", h.DeleteChallenge)
}

// ownedChallenge loads the challenge and enforces that the caller is its
// owner or an admin. Stricter authorization belongs in middleware; this is
// the last line.
func (h *ChallengeHandler) ownedChallenge(c echo.Context, id uint) (*models.Challenge, error) {
	challenge, err := h.challengeService.Get(id)
	if err != nil {
		return nil, serviceError(err)
	}
	if challenge.UserID != getUserIDFromContext(c) && !isAdmin(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You are not authorized to modify this challenge")
	}
	return challenge, nil
}

func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid challenge ID")
	}
	return uint(id), nil
}

// CreateChallenge creates a new challenge owned by the current user
func (h *ChallengeHandler) CreateChallenge(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateChallengeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	challenge, err := h.challengeService.Create(req, currentUserID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": challenge})
}

// ListChallenges returns a paginated challenge listing
func (h *ChallengeHandler) ListChallenges(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	challenges, pageInfo, err := h.challengeService.List(services.ChallengeListQuery{
		Keyword:  c.QueryParam("keyword"),
		Field:    c.QueryParam("field"),
		Type:     c.QueryParam("type"),
		Status:   c.QueryParam("status"),
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       challenges,
		"pagination": pageInfo,
	})
}

// GetChallenge returns a single challenge
func (h *ChallengeHandler) GetChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	challenge, err := h.challengeService.Get(id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": challenge})
}

// UpdateChallenge applies a partial update to an owned challenge
func (h *ChallengeHandler) UpdateChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req models.UpdateChallengeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.ownedChallenge(c, id); err != nil {
		return err
	}

	challenge, err := h.challengeService.Update(id, req)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": challenge})
}

// CancelChallenge closes an owned challenge
func (h *ChallengeHandler) CancelChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := h.ownedChallenge(c, id); err != nil {
		return err
	}

	challenge, err := h.challengeService.Cancel(id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": challenge})
}

// DeleteChallenge soft-deletes an owned challenge with a reason
func (h *ChallengeHandler) DeleteChallenge(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req models.DeleteChallengeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.ownedChallenge(c, id); err != nil {
		return err
	}

	challenge, err := h.challengeService.SoftDelete(id, req.Reason)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": challenge})
}
