package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinica-api/config"
	"clinica-api/internal/domain/entity"
	"clinica-api/internal/repository"
	"clinica-api/internal/seeder"
	"clinica-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "christian.ramires@example.com"
	testPassword = "password"
)

type apiClient struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newAPI(t *testing.T, perMinute int) *apiClient {
	t.Helper()

	db := testutil.NewDB(t)
	redisClient, _ := testutil.NewRedis(t)
	log := testutil.NewLogger()

	cfg := &config.Config{
		JWT:       config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour},
		Cache:     config.CacheConfig{TTL: time.Minute},
		RateLimit: config.RateLimitConfig{PerMinute: perMinute},
	}

	s := seeder.New(db, log, repository.NewUserRepository(), repository.NewCidadeRepository())
	require.NoError(t, s.Run(context.Background(), seeder.DefaultUser{
		Name:     "Christian Ramires",
		Email:    testEmail,
		Password: testPassword,
	}))

	return &apiClient{t: t, handler: NewHTTPHandler(cfg, db, redisClient, log)}
}

func (c *apiClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c *apiClient) login() {
	c.t.Helper()

	rec := c.do(http.MethodPost, "/login", fmt.Sprintf(`{"email":%q,"password":%q}`, testEmail, testPassword))
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	require.Equal(c.t, "bearer", tokens.TokenType)
	require.Equal(c.t, int64(3600), tokens.ExpiresIn)
	c.token = tokens.AccessToken
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestAPI_DoctorPatientFlow(t *testing.T) {
	api := newAPI(t, 1000)
	api.login()

	rec := api.do(http.MethodGet, "/cidades", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cidades := decodeList(t, rec)
	require.Len(t, cidades, len(seeder.Capitals))
	cidadeID := int64(cidades[0]["id"].(float64))

	rec = api.do(http.MethodPost, "/medicos", fmt.Sprintf(`{"nome":"Dr. Carlos","especialidade":"Pediatria","cidade_id":%d}`, cidadeID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	medicoID := int64(decodeBody(t, rec)["id"].(float64))

	rec = api.do(http.MethodPost, "/pacientes", `{"nome":"Ana","cpf":"111.444.777-35","celular":"11987654321"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	paciente := decodeBody(t, rec)
	pacienteID := int64(paciente["id"].(float64))
	assert.Equal(t, "111.444.777-35", paciente["cpf"])
	assert.Equal(t, "(11) 98765-4321", paciente["celular"])

	rec = api.do(http.MethodPost, fmt.Sprintf("/medicos/%d/pacientes", medicoID), fmt.Sprintf(`{"medico_id":%d,"paciente_id":%d}`, medicoID, pacienteID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	medico := decodeBody(t, rec)
	assert.Equal(t, float64(medicoID), medico["id"])
	pacientes := medico["pacientes"].([]interface{})
	require.Len(t, pacientes, 1)
	pivot := pacientes[0].(map[string]interface{})["pivot"].(map[string]interface{})
	assert.Equal(t, float64(medicoID), pivot["medico_id"])
	assert.Equal(t, float64(pacienteID), pivot["paciente_id"])

	rec = api.do(http.MethodGet, fmt.Sprintf("/medicos/%d/pacientes", medicoID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = api.do(http.MethodGet, fmt.Sprintf("/cidades/%d/medicos", cidadeID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	medicos := decodeList(t, rec)
	require.Len(t, medicos, 1)
	assert.Equal(t, float64(cidadeID), medicos[0]["cidade"].(map[string]interface{})["id"])
}

func TestAPI_ProtectedRoutesRequireToken(t *testing.T) {
	api := newAPI(t, 1000)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/user"},
		{http.MethodPost, "/logout"},
		{http.MethodPost, "/cidades"},
		{http.MethodPut, "/medicos/1"},
		{http.MethodGet, "/medicos/1/pacientes"},
		{http.MethodGet, "/pacientes"},
		{http.MethodDelete, "/pacientes/1"},
		{http.MethodGet, "/audit-logs"},
	} {
		rec := api.do(route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
		assert.Equal(t, "Unauthenticated.", decodeBody(t, rec)["message"], route.path)
	}

	api.token = "not-a-jwt"
	rec := api.do(http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	api.token = ""
	rec = api.do(http.MethodGet, "/medicos", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_LoginAndLogout(t *testing.T) {
	api := newAPI(t, 1000)

	rec := api.do(http.MethodPost, "/login", fmt.Sprintf(`{"email":%q,"password":"wrong"}`, testEmail))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodPost, "/login", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	api.login()

	rec = api.do(http.MethodGet, "/user", "")
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody(t, rec)
	assert.Equal(t, testEmail, user["email"])
	assert.NotContains(t, user, "password")

	rec = api.do(http.MethodPost, "/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully logged out.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_ValidationResponses(t *testing.T) {
	api := newAPI(t, 1000)
	api.login()

	rec := api.do(http.MethodPost, "/pacientes", `{"cpf":"123.456.789-00","celular":"00987654321"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "The nome field is required. (and 2 more errors)", body["message"])
	errs := body["errors"].(map[string]interface{})
	assert.Len(t, errs, 3)
	assert.Equal(t, []interface{}{"O campo cpf não é um CPF válido."}, errs["cpf"])

	rec = api.do(http.MethodPost, "/pacientes", `{"nome":"Ana","cpf":"111.444.777-35","celular":"11987654321"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = api.do(http.MethodPost, "/pacientes", `{"nome":"Bia","cpf":"11144477735","celular":"11987654321"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The cpf without format has already been taken.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodPost, "/medicos", `{"nome":"Dr. X","especialidade":"Clínica","cidade_id":"asdf"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The cidade id field must be an integer.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodPost, "/medicos", `{"nome":"Dr. X","especialidade":"Clínica","cidade_id":9999}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The selected cidade id is invalid.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodPost, "/cidades", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_NotFoundAndDelete(t *testing.T) {
	api := newAPI(t, 1000)
	api.login()

	rec := api.do(http.MethodGet, "/medicos/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Medico not found.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodGet, "/cidades/999/medicos", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cidade not found.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodPost, "/medicos/999/pacientes", `{"medico_id":999,"paciente_id":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/pacientes/999", "")
	assert.Equal(t, "Paciente not found.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodDelete, "/cidades/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = api.do(http.MethodGet, "/cidades/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodGet, "/cidades", "")
	assert.Len(t, decodeList(t, rec), len(seeder.Capitals)-1)

	rec = api.do(http.MethodGet, "/audit-logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, decodeBody(t, rec)["total"], float64(2))

	rec = api.do(http.MethodGet, "/audit-logs?action="+entity.AuditActionCidadeDelete+"&per_page=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody(t, rec)
	assert.Equal(t, float64(1), page["total"])
	assert.Equal(t, float64(5), page["per_page"])

	rec = api.do(http.MethodGet, "/audit-logs?page=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The page field must be an integer.", decodeBody(t, rec)["message"])

	rec = api.do(http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_RateLimit(t *testing.T) {
	api := newAPI(t, 2)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/medicos", "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/medicos", "").Code)

	rec := api.do(http.MethodGet, "/medicos", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Too Many Attempts.", decodeBody(t, rec)["message"])
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
}

func TestAPI_HealthMetricsAndPreflight(t *testing.T) {
	api := newAPI(t, 1000)

	rec := api.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	api.do(http.MethodGet, "/medicos", "")
	rec = api.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/medicos"`)

	rec = api.do(http.MethodOptions, "/cidades", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
