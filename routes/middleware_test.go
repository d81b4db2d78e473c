package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/models"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/utils"
)

func TestAppIDRequired(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/static-data", nil)
	rec := httptest.NewRecorder()
	env.app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "App not provided", envelope.Message)
}

func TestAppIDMismatch(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/static-data", nil)
	req.Header.Set("app-id", "some-other-app")
	rec := httptest.NewRecorder()
	env.app.ServeHTTP(rec, req)

	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Invalid App ID", envelope.Message)
}

func TestTokenRequiredOnOwnerRoutes(t *testing.T) {
	env := newTestEnv(t)

	_, envelope := env.request(t, http.MethodPost, "/api/v1/properties", "", propertyBody())
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Token not provided", envelope.Message)

	_, envelope = env.request(t, http.MethodPost, "/api/v1/properties", "garbage-token", propertyBody())
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Invalid Token", envelope.Message)
}

// Customers can browse but never mutate listings.
func TestCustomerRoleRejectedOnOwnerRoutes(t *testing.T) {
	env := newTestEnv(t)

	_, envelope := env.request(t, http.MethodPost, "/api/v1/properties", env.customerToken(t, 1), propertyBody())
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Access to this field is not allowed.", envelope.Message)

	_, envelope = env.request(t, http.MethodGet, "/api/v1/properties/list-by-owner", env.customerToken(t, 1), nil)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Access to this field is not allowed.", envelope.Message)
}

// A role middleware configured with no roles grants access to nobody.
func TestEmptyRoleAllowListRejectsEveryone(t *testing.T) {
	env := newTestEnv(t)

	security := utils.NewSecurity(testAppID, env.tokens)
	handler := security.CheckTokenWithRoles()

	called := false
	app := iris.New()
	app.Get("/guarded", handler, func(ctx iris.Context) {
		called = true
		utils.Success(ctx, "ok", nil)
	})
	require.NoError(t, app.Build())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("x-access-token", env.ownerToken(t, 1))
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Access to this field is not allowed.", envelope.Message)
	assert.False(t, called)
}

func TestBearerPrefixAccepted(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedOwner(t, "Owner One", "9876543210")
	env.seedProperty(t, owner.ID, models.PropertyStatusActive)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/list-by-owner", nil)
	req.Header.Set("app-id", testAppID)
	req.Header.Set("Authorization", "Bearer "+env.ownerToken(t, owner.ID))
	rec := httptest.NewRecorder()
	env.app.ServeHTTP(rec, req)

	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	req.Header.Set("app-id", testAppID)
	rec := httptest.NewRecorder()
	env.app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope utils.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Route Not Found", envelope.Message)
}
