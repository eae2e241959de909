package routes

import (
	"github.com/gin-gonic/gin"

	"hostel-mess/internal/handlers"
)

type MenuRoutes struct {
	handler *handlers.MenuHandler
}

func NewMenuRoutes(handler *handlers.MenuHandler) *MenuRoutes {
	return &MenuRoutes{handler: handler}
}

func (r *MenuRoutes) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/menu")
	{
		// GetMenu also answers /menu/week.
		menu.GET("/:day", r.handler.GetMenu)
		menu.PUT("/update", r.handler.UpdateMenu)
	}
	router.GET("/meals", r.handler.ListMeals)
}
