package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecoexplore/EcoExplore/app/models"
	"github.com/ecoexplore/EcoExplore/app/repository"
	"github.com/ecoexplore/EcoExplore/internal/pkg/database"
	"github.com/ecoexplore/EcoExplore/internal/pkg/router"
	"github.com/ecoexplore/EcoExplore/internal/pkg/security"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.NewTestDB()
	require.NoError(t, err)
	database.SetDB(db)
	repository.InitializeFactory(db)

	app := fiber.New()
	tokens := security.TokenConfig{Secret: "test-secret", TTL: time.Hour}
	router.NewApiRouter(tokens).InstallRouter(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func asMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func asList(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var l []map[string]any
	require.NoError(t, json.Unmarshal(raw, &l))
	return l
}

func registerAndLogin(t *testing.T, app *fiber.App, name, email string, role models.Role) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	require.Equal(t, http.StatusCreated, status)

	status, raw := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := asMap(t, raw)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestApprovalWorkflowEndToEnd(t *testing.T) {
	app, db := setupApp(t)

	memberToken := registerAndLogin(t, app, "Member", "member@example.com", models.RoleMember)
	adminToken := registerAndLogin(t, app, "Admin", "admin@example.com", models.RoleAdmin)

	eco := models.Ecosystem{Name: "Manglar"}
	require.NoError(t, db.Create(&eco).Error)
	var nativeType models.TypeSpecie
	require.NoError(t, db.Where("code = ?", models.TYPE_NATIVE).First(&nativeType).Error)

	// Admin curates the catalogue through the API.
	status, raw := doJSON(t, app, http.MethodPost, "/species/createSpecies", adminToken, fiber.Map{
		"name": "Green Iguana", "type_specie_id": nativeType.ID,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	specieID := asMap(t, raw)["id"].(float64)

	// Member submits a sighting; it starts pending no matter what.
	status, raw = doJSON(t, app, http.MethodPost, "/sightings", memberToken, fiber.Map{
		"ecosystem_id":        eco.ID,
		"location_name":       "Estero Salado",
		"coordinates":         "-2.19,-79.88",
		"specie":              "iguana?",
		"description":         "Large lizard near the mangroves",
		"sighting_state_code": "ACCEPTED",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := asMap(t, raw)
	assert.Equal(t, "pending", created["sighting_state_name"])
	sightingID := created["id"].(float64)

	// A member cannot review sightings.
	status, _ = doJSON(t, app, http.MethodPost, "/sightings/updateState", memberToken, fiber.Map{
		"id": sightingID, "sighting_state_code": "ACCEPTED", "specie_id": specieID,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Admin accepts and credits the reporter.
	var member models.User
	require.NoError(t, db.Where("email = ?", "member@example.com").First(&member).Error)
	status, raw = doJSON(t, app, http.MethodPost, "/sightings/updateState", adminToken, fiber.Map{
		"id": sightingID, "sighting_state_code": "accepted", "specie_id": specieID, "user_id": member.ID,
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "accepted", asMap(t, raw)["sighting_state_name"])

	// Points show up on the member's profile.
	status, raw = doJSON(t, app, http.MethodGet, "/user/profile", memberToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 100, asMap(t, raw)["points"])

	// The contributed species list reflects the approval.
	status, raw = doJSON(t, app, http.MethodGet, "/user_species/my_contributed_species", memberToken, nil)
	require.Equal(t, http.StatusOK, status)
	contributed := asList(t, raw)
	require.Len(t, contributed, 1)
	assert.Equal(t, "Green Iguana", contributed[0]["name"])
	assert.EqualValues(t, 1, contributed[0]["total_sightings"])

	// A reviewed sighting cannot transition again.
	status, raw = doJSON(t, app, http.MethodPost, "/sightings/updateState", adminToken, fiber.Map{
		"id": sightingID, "sighting_state_code": "REJECTED",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status, string(raw))
}

func TestRoutesRequireAuthentication(t *testing.T) {
	app, _ := setupApp(t)

	for _, path := range []string{"/sightings", "/user/profile", "/species/getSpecies"} {
		status, _ := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}

	status, _ := doJSON(t, app, http.MethodGet, "/sightings", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminRoutesRejectMembers(t *testing.T) {
	app, _ := setupApp(t)
	memberToken := registerAndLogin(t, app, "Member", "member@example.com", models.RoleMember)

	status, _ := doJSON(t, app, http.MethodGet, "/user/getUsers", memberToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/sightings/invasive", memberToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodPost, "/species/createSpecies", memberToken, fiber.Map{
		"name": "X", "type_specie_id": 1,
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := setupApp(t)
	registerAndLogin(t, app, "Member", "member@example.com", models.RoleMember)

	status, _ := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "member@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"email": "nobody@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := setupApp(t)
	registerAndLogin(t, app, "Member", "member@example.com", models.RoleMember)

	status, raw := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name": "Clone", "email": "member@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "email is already taken", asMap(t, raw)["error"])
}

func TestMarkInvasiveFlow(t *testing.T) {
	app, db := setupApp(t)

	memberToken := registerAndLogin(t, app, "Member", "member@example.com", models.RoleMember)
	adminToken := registerAndLogin(t, app, "Admin", "admin@example.com", models.RoleAdmin)

	eco := models.Ecosystem{Name: "Laguna Costera"}
	require.NoError(t, db.Create(&eco).Error)

	status, raw := doJSON(t, app, http.MethodPost, "/sightings", memberToken, fiber.Map{
		"ecosystem_id": eco.ID, "location_name": "Orilla Sur", "description": "Strange crab swarm",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	sightingID := asMap(t, raw)["id"].(float64)

	path := fmt.Sprintf("/sightings/%d/mark_invasive", int(sightingID))
	status, raw = doJSON(t, app, http.MethodPut, path, adminToken, fiber.Map{
		"invasive_zone": "Orilla Sur",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = doJSON(t, app, http.MethodGet, "/sightings/invasive", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	report := asMap(t, raw)
	assert.EqualValues(t, 1, report["count"])
}
