package handlers

import (
	"errors"
	"fmt"

	"github.com/equiptrack/backend/auth"
	"github.com/equiptrack/backend/natsserver"
	"github.com/equiptrack/backend/services"
	"github.com/equiptrack/backend/store"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Handler holds the stores and services the API routes delegate to. Nothing
// here is global; main wires one instance and registers its routes.
type Handler struct {
	users     *store.UserStore
	employees *store.EmployeeStore
	tokens    *auth.TokenService
	hub       *services.Hub
	bus       *natsserver.EmbeddedNATS
}

// New creates a handler. hub and bus may be nil; the activity feed is then
// disabled but every REST route still works.
func New(users *store.UserStore, employees *store.EmployeeStore, tokens *auth.TokenService,
	hub *services.Hub, bus *natsserver.EmbeddedNATS) *Handler {
	return &Handler{
		users:     users,
		employees: employees,
		tokens:    tokens,
		hub:       hub,
		bus:       bus,
	}
}

// validationDetail turns a binding failure into the field-level error list
// clients render next to form inputs.
func validationDetail(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"error": "Invalid request body"}
	}

	details := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, gin.H{"field": fe.Field(), "msg": fieldMessage(fe)})
	}
	return gin.H{"errors": details}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
