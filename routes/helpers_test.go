package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/config"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/models"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/storage"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/utils"
)

const (
	testAppID  = "test-app-id"
	testSecret = "test-jwt-secret"
)

var testDBCounter int64

type testEnv struct {
	app      *iris.Application
	db       *gorm.DB
	tokens   *utils.TokenService
	uploader *fakeUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	cfg := &config.Config{
		ServerPort: "0",
		ServerEnv:  config.EnvProduction,
		AppID:      testAppID,
		JWTSecret:  testSecret,
	}

	uploader := &fakeUploader{}
	app := NewApp(Deps{Config: cfg, DB: db, Uploader: uploader})
	require.NoError(t, app.Build())

	return &testEnv{
		app:      app,
		db:       db,
		tokens:   utils.NewTokenService(testSecret),
		uploader: uploader,
	}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, utils.Envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("app-id", testAppID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("x-access-token", token)
	}

	rec := httptest.NewRecorder()
	e.app.ServeHTTP(rec, req)

	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), "body: %s", rec.Body.String())
	return rec, envelope
}

func (e *testEnv) ownerToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := e.tokens.Sign(id, models.RoleOwner)
	require.NoError(t, err)
	return token
}

func (e *testEnv) customerToken(t *testing.T, id uint) string {
	t.Helper()
	token, err := e.tokens.Sign(id, models.RoleCustomer)
	require.NoError(t, err)
	return token
}

func (e *testEnv) seedOwner(t *testing.T, name, phone string) models.Owner {
	t.Helper()
	owner := models.Owner{
		Name:        name,
		PhoneNumber: phone,
		Password:    "x",
		Status:      models.IdentityStatusActive,
		ProfilePic:  "https://cdn.example.com/avatar.jpg",
	}
	require.NoError(t, e.db.Create(&owner).Error)
	return owner
}

func (e *testEnv) seedProperty(t *testing.T, ownerID uint, status string, mutate ...func(*models.Property)) models.Property {
	t.Helper()
	property := models.Property{
		Title:        "Spacious family apartment",
		Description:  "A bright three bedroom apartment close to the metro.",
		Price:        4500000,
		TopCities:    "Mumbai",
		Location:     "Andheri West, Mumbai",
		Images:       datatypes.JSON(`["https://cdn.example.com/img1.jpg"]`),
		PropertyType: "apartment",
		ListingType:  models.ListingTypeSale,
		Status:       status,
		OwnerID:      ownerID,
	}
	for _, fn := range mutate {
		fn(&property)
	}
	require.NoError(t, e.db.Create(&property).Error)
	return property
}

func dataAsMap(t *testing.T, envelope utils.Envelope) map[string]interface{} {
	t.Helper()
	m, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "envelope data is not an object: %#v", envelope.Data)
	return m
}

func itemsFromData(t *testing.T, envelope utils.Envelope) []interface{} {
	t.Helper()
	items, ok := dataAsMap(t, envelope)["items"].([]interface{})
	require.True(t, ok)
	return items
}

type fakeUploader struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeUploader) Upload(data []byte, publicID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("upload failed")
	}
	f.calls++
	return "https://cdn.example.com/uploads/" + publicID + ".jpg", nil
}

func assertTransportOK(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code)
}
