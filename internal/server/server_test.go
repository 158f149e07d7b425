package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/moodrecipes/backend/config"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestNew(t *testing.T) {
	cfg := &config.Config{
		ServerHost: "localhost",
		ServerPort: "8080",
	}

	server := New(cfg, testRouter())
	require.NotNil(t, server)
	assert.Equal(t, "localhost:8080", server.http.Addr)
	assert.NotZero(t, server.http.ReadHeaderTimeout)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStartStopsOnCancel(t *testing.T) {
	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: "0"}
	server := New(cfg, testRouter())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestStartReportsListenError(t *testing.T) {
	cfg := &config.Config{ServerHost: "127.0.0.1", ServerPort: "99999"}
	server := New(cfg, testRouter())

	err := server.Start(context.Background())
	assert.Error(t, err)
}
