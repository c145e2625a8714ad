// File: /routes/routes_test.go
package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportmate-api/config"
	"sportmate-api/database"
	"sportmate-api/models"
	"sportmate-api/routes"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedSports(db))

	router := gin.New()
	routes.SetupRoutes(router, db, &config.Config{JWTSecret: "test-secret"})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

func signupAndLogin(t *testing.T, router *gin.Engine, first, last, mobile, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"first_name":    first,
		"last_name":     last,
		"mobile_number": mobile,
		"email":         email,
		"password":      "Passw0rd!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "Passw0rd!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createEvent(t *testing.T, router *gin.Engine, token, startDate, startTime string, maxPlayers int) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/events/", token, gin.H{
		"title":       "Sunday Cricket",
		"sport":       1,
		"start_date":  startDate,
		"start_time":  startTime,
		"max_players": maxPlayers,
		"location":    "Central Park",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var event models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	require.NotEmpty(t, event.ID)
	return event.ID
}

func TestSignupRejectsDuplicates(t *testing.T) {
	router := setupRouter(t)

	signupAndLogin(t, router, "Alice", "Smith", "9876543210", "alice@example.com")

	// Same mobile number, different email: the mobile reason wins.
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"first_name":    "Bob",
		"last_name":     "Jones",
		"mobile_number": "9876543210",
		"email":         "bob@example.com",
		"password":      "Passw0rd!",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Mobile number already registered")
}

func TestLoginFailures(t *testing.T) {
	router := setupRouter(t)
	signupAndLogin(t, router, "Alice", "Smith", "9876543210", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect password")

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "Passw0rd!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Email not registered")
}

func TestEventRoutesRequireAuth(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/events/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJoinPolicy(t *testing.T) {
	router := setupRouter(t)
	organizerToken := signupAndLogin(t, router, "Alice", "Smith", "9876543210", "alice@example.com")
	memberToken := signupAndLogin(t, router, "Bob", "Jones", "1112223334", "bob@example.com")

	eventID := createEvent(t, router, organizerToken, "2099-01-01", "10:00 AM", 2)

	// Organizers already hold a participant entry.
	w := doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/join", organizerToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot join their own event")

	w = doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/join", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second join from the same user is refused up front.
	w = doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/join", memberToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// A third user hits the capacity check.
	thirdToken := signupAndLogin(t, router, "Carol", "White", "5556667778", "carol@example.com")
	w = doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/join", thirdToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "full")
}

func TestJoinExpiredEventRefused(t *testing.T) {
	router := setupRouter(t)
	organizerToken := signupAndLogin(t, router, "Alice", "Smith", "9876543210", "alice@example.com")
	memberToken := signupAndLogin(t, router, "Bob", "Jones", "1112223334", "bob@example.com")

	// Today at midnight has already elapsed.
	today := time.Now().Format("2006-01-02")
	eventID := createEvent(t, router, organizerToken, today, "12:00 AM", 4)

	w := doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/join", memberToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestCancelAndReactivateAuthorization(t *testing.T) {
	router := setupRouter(t)
	organizerToken := signupAndLogin(t, router, "Alice", "Smith", "9876543210", "alice@example.com")
	memberToken := signupAndLogin(t, router, "Bob", "Jones", "1112223334", "bob@example.com")

	eventID := createEvent(t, router, organizerToken, "2099-01-01", "10:00 AM", 4)

	w := doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/cancel", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/cancel", organizerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The cancelled event now shows up in the expired feed.
	w = doJSON(t, router, http.MethodGet, "/api/v1/events/expired", organizerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), eventID)

	w = doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/reactivate", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/events/"+eventID+"/reactivate", organizerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Event models.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2099-01-01", resp.Event.StartDate)
	assert.Equal(t, "10:00 AM", resp.Event.StartTime)
}

func TestSportCatalog(t *testing.T) {
	router := setupRouter(t)
	token := signupAndLogin(t, router, "Alice", "Smith", "9876543210", "alice@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/sports", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sports []models.Sport `json:"sports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sports, 7)
	assert.Equal(t, "Cricket", resp.Sports[0].Label)
}
