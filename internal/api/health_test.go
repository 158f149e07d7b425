package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/moodrecipes/backend/internal/testhelpers"
)

func TestHealth(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	router := gin.New()
	router.GET("/health", NewHealthHandler(db).Health)

	w := serve(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthUnavailable(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.Close()

	router := gin.New()
	router.GET("/health", NewHealthHandler(db).Health)

	w := serve(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
}
