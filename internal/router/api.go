package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	users := api.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.FindUser, http.StatusOK, &handler.FindUserRequest{}))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated, &handler.CreateUserRequest{}))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK, &handler.GetUserRequest{}))
	users.GET("/:id/reservations", handler.Handle(h.Reservations.Handler, h.Reservations.ListForGuest, http.StatusOK, &handler.ListReservationsRequest{}))

	properties := api.Group("/properties")
	properties.GET("", handler.Handle(h.Properties.Handler, h.Properties.ListProperties, http.StatusOK, &handler.ListPropertiesRequest{}))
	properties.POST("", handler.Handle(h.Properties.Handler, h.Properties.CreateProperty, http.StatusCreated, &handler.CreatePropertyRequest{}))
}
