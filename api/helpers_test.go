package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"loomorro/goal-api/internal/model"
	"loomorro/goal-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// passwordHash is a bcrypt hash of "password123", computed once so
// tests that seed users directly skip the per-user hashing cost.
var passwordHash string

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zap.ReplaceGlobals(zap.NewNop())

	viper.Set("jwt.secret", "api-test-secret")
	viper.Set("host.cors_origin", "http://localhost:3000")

	var err error
	passwordHash, err = security.HashPassword("password123")
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var dbSeq atomic.Int64

// newTestAPI wires the full router around a fresh in-memory database.
func newTestAPI(t *testing.T) *API {
	t.Helper()

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", dbSeq.Add(1))
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := d.AutoMigrate(&model.User{}, &model.File{}, &model.Goal{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return New(d)
}

// seedUser inserts a user with one file directly, the same state a
// registration leaves behind. The password is always "password123".
func seedUser(t *testing.T, a *API, email string) (model.User, model.File, string) {
	t.Helper()

	user := model.User{
		Email:        email,
		PasswordHash: passwordHash,
		Username:     "tester",
	}
	if err := a.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	file := model.File{UserID: user.ID, Name: "My Goals"}
	if err := a.DB.Create(&file).Error; err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	token, err := security.MakeToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("failed to make token: %v", err)
	}

	return user, file, token
}

func seedGoal(t *testing.T, a *API, userID, fileID uint, title string, parentID *uint) model.Goal {
	t.Helper()

	goal := model.Goal{
		UserID:   userID,
		FileID:   fileID,
		ParentID: parentID,
		Title:    title,
		Status:   "active",
		Priority: model.PriorityLow,
	}
	if err := a.DB.Create(&goal).Error; err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}

	return goal
}

// doJSON runs one request through the router. A nil body sends no
// payload, a non-empty token goes out as a bearer header.
func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rdr = bytes.NewReader(buf)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// withSecret runs fn under a different signing secret and restores the
// real one afterwards.
func withSecret(secret string, fn func() (string, error)) (string, error) {
	old := viper.GetString("jwt.secret")
	viper.Set("jwt.secret", secret)
	defer viper.Set("jwt.secret", old)

	return fn()
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}

	return out
}
