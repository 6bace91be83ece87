package handlers

import (
	"net/http"
	"strconv"

	"github.com/daheemang/challenge-platform/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NoticeHandler handles notice-related HTTP requests
type NoticeHandler struct {
	noticeService *services.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(noticeService *services.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// RegisterNoticeRoutes registers notice routes
func (h *NoticeHandler) RegisterNoticeRoutes(g *echo.Group) {
	g.GET("/notices", h.GetNotices)
	g.GET("/notices/unread-count", h.GetUnreadCount)
	g.PUT("/notices/:id/read", h.MarkAsRead)
}

// GetNotices returns the current user's paginated notices, most recent first
func (h *NoticeHandler) GetNotices(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	notices, pageInfo, err := h.noticeService.ListForUser(currentUserID, page, limit)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"data":       notices,
		"pagination": pageInfo,
	})
}

// GetUnreadCount returns the unread notice count
func (h *NoticeHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	count, err := h.noticeService.UnreadCount(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks one notice as read. Re-marking an already-read notice is
// rejected with a conflict, not silently accepted.
func (h *NoticeHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	noticeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notice ID")
	}

	notice, err := h.noticeService.MarkRead(uint(noticeID))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": notice})
}
