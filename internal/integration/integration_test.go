package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/moodrecipes/backend/config"
	"github.com/pageza/moodrecipes/backend/internal/database"
	"github.com/pageza/moodrecipes/backend/internal/model"
	"github.com/pageza/moodrecipes/backend/internal/router"
	"github.com/pageza/moodrecipes/backend/internal/service"
	"github.com/pageza/moodrecipes/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(db *gorm.DB, locker service.Locker) *gin.Engine {
	return router.SetupRouter(&config.Config{CORSAllowedOrigins: []string{"*"}}, db, locker)
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPostgresSeedAndLookup(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)

	inserted, err := database.SeedRecipes(context.Background(), db, false)
	require.NoError(t, err)
	assert.Equal(t, len(database.SampleRecipes), inserted)

	r := newRouter(db, nil)

	w := get(r, "/api/moods")
	require.Equal(t, http.StatusOK, w.Code)
	var moods []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &moods))
	assert.NotEmpty(t, moods)

	w = get(r, "/api/recipe/"+moods[0])
	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, moods[0], recipe.Mood)

	w = get(r, "/api/check-mood/"+moods[0])
	assert.Contains(t, w.Body.String(), `"exists":true`)
}

// Two routers sharing one database and a Redis lock behave like two
// replicas: only one identical add-mood may win.
func TestReplicasShareRedisLock(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)
	client := testhelpers.SetupRedis(t)

	replicas := []http.Handler{
		newRouter(db, service.NewRedisLocker(client, service.RedisLockConfig{})),
		newRouter(db, service.NewRedisLocker(client, service.RedisLockConfig{})),
	}
	body := `{"mood":"grumpy","isNewRecipe":true,"addType":"new","recipe":{"name":"Angry Pasta","ingredients":"Pasta","instructions":"Cook"}}`

	const perReplica = 5
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes []int
	)
	for _, r := range replicas {
		for i := 0; i < perReplica; i++ {
			wg.Add(1)
			go func(r http.Handler) {
				defer wg.Done()
				code := post(r, "/api/add-mood", body).Code
				mu.Lock()
				codes = append(codes, code)
				mu.Unlock()
			}(r)
		}
	}
	wg.Wait()

	ok := 0
	for _, code := range codes {
		if code == http.StatusOK {
			ok++
		}
	}
	assert.Equal(t, 1, ok)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Where("LOWER(mood) = ?", "grumpy").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
