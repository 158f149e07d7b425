package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/moodrecipes/backend/config"
	"github.com/pageza/moodrecipes/backend/internal/model"
	"github.com/pageza/moodrecipes/backend/internal/testhelpers"
	"github.com/pageza/moodrecipes/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	testhelpers.SeedTestRecipes(t, db,
		model.Recipe{Name: "Mac and Cheese", Description: "Comfort", Mood: "sad", Ingredients: "Macaroni, Cheese", Instructions: "Cook"},
		model.Recipe{Name: "Smoothie Bowl", Mood: "happy", Ingredients: "Berries", Instructions: "Blend"},
		model.Recipe{Name: "Tacos", Mood: "excited", Ingredients: "Tortillas", Instructions: "Assemble"},
	)
	cfg := &config.Config{CORSAllowedOrigins: []string{"*"}, StaticDir: staticDir}
	return SetupRouter(cfg, db, nil)
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddMoodScenario(t *testing.T) {
	router := setupRouter(t, "")

	w := do(router, http.MethodPost, "/api/add-mood",
		`{"mood":"grumpy","isNewRecipe":true,"addType":"new","recipe":{"name":"Angry Pasta","description":"","ingredients":"Pasta, Chili","instructions":"Cook"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	var added types.AddMoodResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.True(t, added.Success)
	require.NotNil(t, added.ID)

	w = do(router, http.MethodGet, "/api/moods", "")
	assert.JSONEq(t, `["excited","grumpy","happy","sad"]`, w.Body.String())

	w = do(router, http.MethodGet, "/api/recipe/GRUMPY", "")
	require.Equal(t, http.StatusOK, w.Code)
	var recipe model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Angry Pasta", recipe.Name)
	assert.Equal(t, *added.ID, recipe.ID)

	w = do(router, http.MethodPost, "/api/add-mood",
		`{"mood":"Grumpy","isNewRecipe":true,"addType":"new","recipe":{"name":"ANGRY PASTA","ingredients":"Pasta","instructions":"Cook"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"This recipe already exists for this mood"}`, w.Body.String())
}

func TestCheckMoodScenario(t *testing.T) {
	router := setupRouter(t, "")

	w := do(router, http.MethodGet, "/api/check-mood/HAPPY", "")
	assert.JSONEq(t, `{"exists":true,"existingMood":"happy"}`, w.Body.String())

	w = do(router, http.MethodGet, "/api/check-mood/bored", "")
	assert.JSONEq(t, `{"exists":false,"existingMood":null}`, w.Body.String())
}

func TestUnknownMoodScenario(t *testing.T) {
	router := setupRouter(t, "")

	w := do(router, http.MethodGet, "/api/recipe/unknown-mood", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"No recipe found for this mood"}`, w.Body.String())
}

func TestCloneAndReplaceScenario(t *testing.T) {
	router := setupRouter(t, "")

	w := do(router, http.MethodPost, "/api/add-mood",
		`{"mood":"cozy","isNewRecipe":false,"addType":"new","recipe":{"id":1,"name":"Mac and Cheese","ingredients":"Macaroni, Cheese","instructions":"Cook"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":4`)

	w = do(router, http.MethodPost, "/api/add-mood",
		`{"mood":"hungry","isNewRecipe":false,"addType":"replace","recipe":{"id":3,"name":"Tacos","ingredients":"Tortillas","instructions":"Assemble"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(router, http.MethodGet, "/api/recipes", "")
	var recipes []model.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 4)
	assert.Equal(t, "sad", recipes[0].Mood)
	assert.Equal(t, "hungry", recipes[2].Mood)
	assert.Equal(t, "cozy", recipes[3].Mood)
	assert.Equal(t, recipes[0].Description, recipes[3].Description)

	w = do(router, http.MethodGet, "/api/recipe/excited", "")
	assert.JSONEq(t, `{"error":"No recipe found for this mood"}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/add-mood",
		`{"mood":"hungry","isNewRecipe":false,"addType":"replace","recipe":{"id":99,"name":"Ghost","ingredients":"x","instructions":"y"}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
}

func TestAddMoodValidationScenario(t *testing.T) {
	router := setupRouter(t, "")

	w := do(router, http.MethodPost, "/api/add-mood",
		`{"mood":"<>","isNewRecipe":true,"addType":"new","recipe":{"name":"Angry Pasta","ingredients":"x","instructions":"y"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All required fields must be filled out"}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/add-mood", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestConcurrentAddMood(t *testing.T) {
	router := setupRouter(t, "")
	body := `{"mood":"grumpy","isNewRecipe":true,"addType":"new","recipe":{"name":"Angry Pasta","ingredients":"x","instructions":"y"}}`

	const n = 10
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = do(router, http.MethodPost, "/api/add-mood", body).Code
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, code := range codes {
		if code == http.StatusOK {
			ok++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestOperationalEndpoints(t *testing.T) {
	router := setupRouter(t, "")

	w := do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	do(router, http.MethodGet, "/api/moods", "")
	w = do(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Moods</h1>"), 0o644))
	router := setupRouter(t, dir)

	w := do(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Moods"))

	w = do(router, http.MethodGet, "/api/moods", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodPost, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
