package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-mess/internal/models"
	"hostel-mess/internal/responses"
	"hostel-mess/internal/services"
)

// weekPath is the /api/menu/:day value reserved for the week view.
const weekPath = "week"

type MenuService interface {
	GetDayMenu(ctx context.Context, day string) (*models.DayMenu, error)
	GetWeekMenu(ctx context.Context) (*models.WeekMenu, error)
	UpdateMenu(ctx context.Context, req services.UpdateMenuRequest) error
	ListMeals(ctx context.Context) ([]models.Meal, error)
}

type MenuHandler struct {
	menuService MenuService
}

func NewMenuHandler(menuService MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu handles GET /api/menu/:day
func (h *MenuHandler) GetMenu(c *gin.Context) {
	day := c.Param("day")
	if day == weekPath {
		h.GetWeeklyMenu(c)
		return
	}

	menu, err := h.menuService.GetDayMenu(c.Request.Context(), day)
	if err != nil {
		serverError(c, "get day menu", err)
		return
	}

	responses.Data(c, http.StatusOK, menu)
}

// GetWeeklyMenu handles GET /api/menu/week
func (h *MenuHandler) GetWeeklyMenu(c *gin.Context) {
	menu, err := h.menuService.GetWeekMenu(c.Request.Context())
	if err != nil {
		serverError(c, "get week menu", err)
		return
	}

	responses.Data(c, http.StatusOK, menu)
}

// UpdateMenu handles PUT /api/menu/update
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	var req services.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.menuService.UpdateMenu(c.Request.Context(), req); err != nil {
		serverError(c, "update menu", err)
		return
	}

	responses.Message(c, http.StatusOK, "Menu updated successfully")
}

// ListMeals handles GET /api/meals
func (h *MenuHandler) ListMeals(c *gin.Context) {
	meals, err := h.menuService.ListMeals(c.Request.Context())
	if err != nil {
		serverError(c, "list meals", err)
		return
	}

	responses.Data(c, http.StatusOK, meals)
}
