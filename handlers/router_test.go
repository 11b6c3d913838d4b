package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/equiptrack/backend/auth"
	"github.com/equiptrack/backend/handlers"
	"github.com/equiptrack/backend/models"
	"github.com/equiptrack/backend/natsserver"
	"github.com/equiptrack/backend/services"
	"github.com/equiptrack/backend/store"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// newTestRouter wires the API against an in-memory database, mirroring the
// route table in main. The activity feed is optional.
func newTestRouter(t *testing.T, hub *services.Hub, bus *natsserver.EmbeddedNATS) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Employee{}))

	users := store.NewUserStore(db)
	employees := store.NewEmployeeStore(db)
	tokens := auth.NewTokenService(testSecret)
	gate := auth.NewGate(tokens)

	h := handlers.New(users, employees, tokens, hub, bus)

	router := gin.New()
	router.GET("/ws/activity", h.HandleActivityWebSocket)
	router.GET("/api/feed/stats", h.GetFeedStats)

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/register", h.Register)
		userRoutes.POST("/login", h.Login)
		userRoutes.GET("", h.GetAllUsers)
		userRoutes.GET("/email/:email", h.GetUserByEmail)
		userRoutes.GET("/:id", h.GetUserByID)
	}

	employeeRoutes := router.Group("/employees")
	employeeRoutes.Use(gate.Middleware())
	{
		employeeRoutes.POST("/create", h.CreateEmployee)
		employeeRoutes.GET("/all", h.GetEmployees)
		employeeRoutes.GET("/allPerPage", h.GetEmployeesPerPage)
		employeeRoutes.GET("/:id", h.GetEmployeeByID)
	}

	return router, tokens
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func loginFor(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/users/register", gin.H{
		"email": email, "password": password, "confirmPassword": password,
	}, "")
	require.Equal(t, 201, w.Code)

	w = doJSON(t, router, "POST", "/users/login", gin.H{
		"email": email, "password": password,
	}, "")
	require.Equal(t, 200, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func employeeBody(i int) gin.H {
	return gin.H{
		"firstname":           "Samanta",
		"lastname":            "ISHIMWE",
		"nationalIdentity":    "1200071091330" + string(rune('0'+i)),
		"telephone":           "0788888888",
		"email":               "samanta" + string(rune('0'+i)) + "@gmail.com",
		"department":          "Human resource",
		"position":            "Manager",
		"laptop_manufacturer": "HP",
		"model":               "envy",
		"serial_number":       "340" + string(rune('0'+i)),
	}
}
