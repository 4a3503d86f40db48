package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "disaster_backend/internal/feature/auth/adapters"
	authentity "disaster_backend/internal/feature/auth/domain/entity"
	authhandler "disaster_backend/internal/feature/auth/transport/handler"
	authusecase "disaster_backend/internal/feature/auth/usecase"
	"disaster_backend/internal/feature/chatbot/responder"
	chathandler "disaster_backend/internal/feature/chatbot/transport/handler"
	"disaster_backend/internal/feature/disasterinfo/dataset"
	disasterhandler "disaster_backend/internal/feature/disasterinfo/transport/handler"
	sosadapters "disaster_backend/internal/feature/sos/adapters"
	sosentity "disaster_backend/internal/feature/sos/domain/entity"
	soshandler "disaster_backend/internal/feature/sos/transport/handler"
	sosusecase "disaster_backend/internal/feature/sos/usecase"
	"disaster_backend/internal/platform/hash"
)

const testDisasterJSON = `{"flood":{"title":"Flood"},"earthquake":{"title":"Earthquake"}}`

// setupApp wires the full application against a file-backed SQLite database
// (file-backed so concurrent requests share one store, as in production).
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()

	dsn := "file:" + filepath.Join(dir, "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authentity.User{}, &sosentity.SOSMessage{}))

	dataPath := filepath.Join(dir, "disaster_data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testDisasterJSON), 0o600))
	data, err := dataset.Load(dataPath)
	require.NoError(t, err)

	staticDir := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(staticDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>index</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('app')"), 0o600))

	authH := authhandler.NewAuthHandler(authusecase.NewAuthUsecase(authadapters.NewUserGorm(db), hash.New("test-pepper")))
	sosH := soshandler.NewSOSHandler(sosusecase.NewSOSUsecase(sosadapters.NewSOSGorm(db)))
	disasterH := disasterhandler.NewDisasterHandler(data)
	chatH := chathandler.NewChatHandler(responder.New())

	return NewRouter(authH, sosH, disasterH, chatH, staticDir)
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const signupBody = `{"name":"Asha","email":"asha@example.com","password":"password123","phone":"9876543210"}`

func TestSignupThenLogin(t *testing.T) {
	router := setupApp(t)

	w := doJSON(router, http.MethodPost, "/api/signup", signupBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	signup := decode(t, w)
	assert.Equal(t, true, signup["success"])
	assert.Equal(t, "Registration successful!", signup["message"])
	user := signup["user"].(map[string]any)
	assert.Equal(t, "Asha", user["name"])
	assert.Equal(t, "asha@example.com", user["email"])
	assert.Equal(t, "9876543210", user["phone"])
	assert.NotContains(t, user, "password")

	// Login with the same plaintext returns the same identifier.
	w = doJSON(router, http.MethodPost, "/api/login", `{"email":"asha@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode(t, w)
	assert.Equal(t, true, login["success"])
	assert.Equal(t, user["id"], login["user"].(map[string]any)["id"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	router := setupApp(t)

	w := doJSON(router, http.MethodPost, "/api/signup", signupBody)
	require.Equal(t, http.StatusOK, w.Code)

	// Different name, phone, and password make no difference.
	w = doJSON(router, http.MethodPost, "/api/signup",
		`{"name":"Ravi","email":"asha@example.com","password":"other-pass","phone":"0000000000"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User already exists with this email address", body["message"])
}

func TestSignupConcurrentSameEmail(t *testing.T) {
	router := setupApp(t)

	const attempts = 2
	codes := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = doJSON(router, http.MethodPost, "/api/signup", signupBody).Code
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, code := range codes {
		if code == http.StatusOK {
			ok++
		}
	}
	assert.Equal(t, 1, ok, "exactly one concurrent registration may succeed, got codes %v", codes)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router := setupApp(t)

	w := doJSON(router, http.MethodPost, "/api/signup", signupBody)
	require.Equal(t, http.StatusOK, w.Code)

	wrongPass := doJSON(router, http.MethodPost, "/api/login", `{"email":"asha@example.com","password":"wrong"}`)
	unknown := doJSON(router, http.MethodPost, "/api/login", `{"email":"nobody@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, decode(t, wrongPass)["message"], decode(t, unknown)["message"],
		"the error must not reveal whether the email exists")
}

func TestSOSSubmission(t *testing.T) {
	router := setupApp(t)

	first := doJSON(router, http.MethodPost, "/api/sos", `{"location":{"lat":12.9,"lon":77.6}}`)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	firstBody := decode(t, first)
	assert.Equal(t, true, firstBody["success"])
	assert.Equal(t, "SOS message received!", firstBody["message"])

	second := doJSON(router, http.MethodPost, "/api/sos", `{"location":{"lat":12.9,"lon":77.6},"userId":123456}`)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.NotEqual(t, firstBody["sos_id"], decode(t, second)["sos_id"], "each submission gets its own id")

	missing := doJSON(router, http.MethodPost, "/api/sos", `{"userId":1}`)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestNonJSONBodyRejected(t *testing.T) {
	router := setupApp(t)

	for _, path := range []string{"/api/signup", "/api/login", "/api/sos", "/chat"} {
		req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString("name=Asha"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		body := decode(t, w)
		assert.Equal(t, false, body["success"], path)
		assert.Equal(t, "Request must be JSON", body["message"], path)
	}
}

func TestDisasterDataUnmodifiedByOtherRequests(t *testing.T) {
	router := setupApp(t)

	get := func() string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/disaster_data", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	before := get()
	assert.JSONEq(t, testDisasterJSON, before)

	doJSON(router, http.MethodPost, "/api/signup", signupBody)
	doJSON(router, http.MethodPost, "/api/sos", `{"location":{"lat":1,"lon":2}}`)
	doJSON(router, http.MethodPost, "/chat", `{"message":"flood"}`)

	assert.JSONEq(t, before, get(), "the dataset must not change after load")
}

func TestChat(t *testing.T) {
	router := setupApp(t)

	w := doJSON(router, http.MethodPost, "/chat", `{"message":"HELLO"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello! How can I assist you with disaster information today?", decode(t, w)["response"])

	w = doJSON(router, http.MethodPost, "/chat", `{"message":"anything else"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["response"], "Sorry, I didn't understand that")
}

func TestStaticFallback(t *testing.T) {
	router := setupApp(t)

	t.Run("existing asset is served", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "console.log('app')", w.Body.String())
	})

	t.Run("unknown path falls back to index.html", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<html>index</html>", w.Body.String())
	})
}
