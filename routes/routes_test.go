package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Chandu5342/RestaurntBackend/configs"
	"github.com/Chandu5342/RestaurntBackend/entity"
	"github.com/Chandu5342/RestaurntBackend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Restaurant{}, &entity.Log{}))
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	uploadDir := t.TempDir()
	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
		UploadDir: uploadDir,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg, storage.NewLocal(uploadDir, "/uploads"))
	return r, db, uploadDir
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedSuperAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rootpass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Email:    "root@x.com",
		Password: string(hash),
		Name:     "Super Admin",
		Role:     entity.RoleSuperAdmin,
		Approved: true,
	}).Error)
}

func loginToken(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegistrationApprovalFlow(t *testing.T) {
	r, db, _ := setupRouter(t)
	seedSuperAdmin(t, db)

	// admin registration: pending acknowledgment, no token
	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Ann", "email": "ann@x.com", "password": "secret1",
		"role": "admin", "location": "12 Main St", "restaurantName": "Ann's Diner",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Registered. Pending approval by a Super Admin.", body["message"])
	assert.NotContains(t, body, "token")

	user := body["user"].(map[string]any)
	assert.Equal(t, false, user["approved"])
	restaurant := user["restaurant"].(map[string]any)
	assert.Equal(t, "Ann's Diner", restaurant["name"])
	assert.Equal(t, "pending", restaurant["status"])

	// correct credentials, still gated
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "ann@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Your registration is pending approval by a super admin", decode(t, w)["message"])

	rootToken := loginToken(t, r, "root@x.com", "rootpass")

	// review queue is super-admin only
	w = doJSON(t, r, http.MethodGet, "/restaurants/pending", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/restaurants/pending", nil, rootToken)
	require.Equal(t, http.StatusOK, w.Code)

	var queue []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &queue))
	require.Len(t, queue, 1)
	assert.Equal(t, "pending", queue[0]["status"])
	owner := queue[0]["owner"].(map[string]any)
	assert.Equal(t, "Ann", owner["name"])
	assert.Equal(t, "ann@x.com", owner["email"])

	restID := int(queue[0]["id"].(float64))

	// approve
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/restaurants/%d/approve", restID), nil, rootToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Restaurant approved", decode(t, w)["message"])

	// owner can log in now, restaurant populated and approved
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "ann@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decode(t, w)
	assert.NotEmpty(t, body["token"])
	user = body["user"].(map[string]any)
	assert.Equal(t, true, user["approved"])
	restaurant = user["restaurant"].(map[string]any)
	assert.Equal(t, "approved", restaurant["status"])
	assert.Equal(t, true, restaurant["approved"])

	// second approval is a no-op success
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/restaurants/%d/approve", restID), nil, rootToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// queue drained
	w = doJSON(t, r, http.MethodGet, "/restaurants/pending", nil, rootToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &queue))
	assert.Empty(t, queue)

	// unknown id
	w = doJSON(t, r, http.MethodPost, "/restaurants/9999/approve", nil, rootToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode(t, w)["message"])
}

func TestCustomerRegistrationIssuesTokenImmediately(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "bob@x.com", "password": "secret1", "role": "customer",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "customer", user["role"])
	assert.Nil(t, user["restaurant"])
}

func TestCustomerCannotReadReviewQueue(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "bob@x.com", "password": "secret1", "role": "customer",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/restaurants/pending", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/restaurants/1/approve", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDuplicateRegistration(t *testing.T) {
	r, _, _ := setupRouter(t)

	payload := gin.H{"name": "Bob", "email": "bob@x.com", "password": "secret1", "role": "customer"}
	w := doJSON(t, r, http.MethodPost, "/auth/register", payload, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already in use", decode(t, w)["message"])
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := setupRouter(t)

	// short password
	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "bob@x.com", "password": "abc",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed email
	w = doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "not-an-email", "password": "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown role
	w = doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "bob@x.com", "password": "secret1", "role": "owner",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "ghost@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])
}

func TestMeReturnsCurrentUser(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "bob@x.com", "password": "secret1", "role": "customer",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]any)
	assert.Equal(t, "bob@x.com", user["email"])

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func doMultipart(t *testing.T, r *gin.Engine, path string, fields map[string]string, fileField string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, "img.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadProxy(t *testing.T) {
	r, _, uploadDir := setupRouter(t)

	w := doMultipart(t, r, "/upload", nil, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file provided", decode(t, w)["message"])

	w = doMultipart(t, r, "/upload", nil, "file", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	url, _ := body["url"].(string)
	storageID, _ := body["storageId"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/uploads/"))
	require.NotEmpty(t, storageID)

	data, err := os.ReadFile(filepath.Join(uploadDir, filepath.FromSlash(storageID)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestMultipartRegistrationStoresLogo(t *testing.T) {
	r, db, _ := setupRouter(t)

	w := doMultipart(t, r, "/auth/register", map[string]string{
		"name": "Ann", "email": "ann@x.com", "password": "secret1",
		"role": "admin", "restaurantName": "Ann's Diner",
	}, "avatar", []byte("logo-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rest entity.Restaurant
	require.NoError(t, db.First(&rest).Error)
	assert.True(t, strings.HasPrefix(rest.Logo.URL, "/uploads/restaurant_logos/"))
	assert.NotEmpty(t, rest.Logo.StorageID)
}

func TestRequestsAreAudited(t *testing.T) {
	r, db, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"name": "Bob", "email": "bob@x.com", "password": "secret1", "role": "customer",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := decode(t, w)["token"].(string)

	// the audit write is asynchronous
	require.Eventually(t, func() bool {
		var count int64
		db.Model(&entity.Log{}).Where("route = ?", "/auth/register").Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	w = doJSON(t, r, http.MethodGet, "/logs", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	logs := decode(t, w)["logs"].([]any)
	require.NotEmpty(t, logs)
}
