package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/equiptrack/backend/models"
	"github.com/equiptrack/backend/services"
	"github.com/equiptrack/backend/store"
	"github.com/gin-gonic/gin"
)

const defaultPageLimit = 10

// EmployeeInput is the validated body of POST /employees/create.
type EmployeeInput struct {
	Firstname          string  `json:"firstname" binding:"required"`
	Lastname           string  `json:"lastname" binding:"required"`
	NationalIdentity   string  `json:"nationalIdentity" binding:"required"`
	Telephone          string  `json:"telephone"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Department         string  `json:"department"`
	Position           string  `json:"position"`
	LaptopManufacturer string  `json:"laptop_manufacturer"`
	Model              string  `json:"model"`
	SerialNumber       string  `json:"serial_number" binding:"required"`
}

// CreateEmployee handles POST /employees/create
func (h *Handler) CreateEmployee(c *gin.Context) {
	var input EmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, validationDetail(err))
		return
	}

	employee := models.Employee{
		Firstname:          input.Firstname,
		Lastname:           input.Lastname,
		NationalIdentity:   input.NationalIdentity,
		Telephone:          input.Telephone,
		Email:              input.Email,
		Department:         input.Department,
		Position:           input.Position,
		LaptopManufacturer: input.LaptopManufacturer,
		Model:              input.Model,
		SerialNumber:       input.SerialNumber,
	}

	if err := h.employees.Insert(&employee); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate national ID, email, or serial number"})
		case errors.Is(err, store.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	h.publishCreated(&employee)

	c.JSON(http.StatusCreated, gin.H{"message": "Employee added"})
}

// publishCreated pushes the new record onto the activity feed. Best effort:
// a publish failure never fails the insert that already happened.
func (h *Handler) publishCreated(employee *models.Employee) {
	if h.bus == nil {
		return
	}
	data, err := json.Marshal(employee)
	if err != nil {
		return
	}
	if err := h.bus.Publish(services.SubjectEmployeeCreated, data); err != nil {
		log.Printf("⚠️ Failed to publish employee event: %v", err)
	}
}

// GetEmployees handles GET /employees/all — the unpaginated path. It keeps
// the same envelope as the paginated path so clients can use either.
func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.employees.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	pages := 0
	if len(employees) > 0 {
		pages = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
		"total":     len(employees),
		"page":      1,
		"pages":     pages,
	})
}

// GetEmployeesPerPage handles GET /employees/allPerPage?page=&limit=
func (h *Handler) GetEmployeesPerPage(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", defaultPageLimit)

	result, err := h.employees.ListPage(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employees."})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEmployeeByID handles GET /employees/:id
func (h *Handler) GetEmployeeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID"})
		return
	}

	employee, err := h.employees.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// queryInt reads an integer query parameter. Anything unparseable falls back
// to the default; the store clamps non-positive values.
func queryInt(c *gin.Context, name string, defaultVal int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return val
}
