package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesisir-api/models"
)

func reportFields() map[string]string {
	return map[string]string{
		"name":        "Agus Pratama",
		"email":       "agus@example.com",
		"address":     "Jl. Anggrek No. 7",
		"phone":       "081211223344",
		"desc":        "Abrasion damaging the breakwater",
		"loc_name":    "Tanggul Timur",
		"loc_address": "Jl. Tanggul",
	}
}

func TestCreateReportWithoutCoordinates(t *testing.T) {
	env := newTestEnv(t)

	// Coordinates are optional for reports; the new location still gets some.
	w := env.performMultipart(t, http.MethodPost, "/api/reports", reportFields(), "image", "photo.jpg")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "agus@example.com", body["reporter_email"])

	var location models.Location
	require.NoError(t, env.db.First(&location, "location_name = ?", "Tanggul Timur").Error)
	assert.GreaterOrEqual(t, location.Latitude, -90.0)
	assert.LessOrEqual(t, location.Latitude, 90.0)
	assert.GreaterOrEqual(t, location.Longitude, -180.0)
	assert.LessOrEqual(t, location.Longitude, 180.0)
}

func TestCreateReportKeepsExistingLocationCoordinates(t *testing.T) {
	env := newTestEnv(t)

	existing := models.Location{
		LocationName:    "Tanggul Timur",
		LocationAddress: "Jl. Tanggul",
		Latitude:        -7.75,
		Longitude:       110.42,
	}
	require.NoError(t, env.db.Create(&existing).Error)

	w := env.performMultipart(t, http.MethodPost, "/api/reports", reportFields(), "image", "photo.jpg")
	require.Equal(t, http.StatusCreated, w.Code)

	var location models.Location
	require.NoError(t, env.db.First(&location, existing.ID).Error)
	assert.Equal(t, -7.75, location.Latitude)
	assert.Equal(t, 110.42, location.Longitude)

	var count int64
	env.db.Model(&models.Location{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateReportPartial(t *testing.T) {
	env := newTestEnv(t)

	w := env.performMultipart(t, http.MethodPost, "/api/reports", reportFields(), "image", "photo.jpg")
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)

	w = env.performJSON(t, http.MethodPut, fmt.Sprintf("/api/reports/%v", created["id"]), map[string]interface{}{
		"desc": "Breakwater partially repaired",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Breakwater partially repaired", body["report_desc"])
	assert.Equal(t, "Agus Pratama", body["reporter_name"])
}

func TestGetReportNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodGet, "/api/reports/123", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Report not found", decodeBody(t, w)["message"])
}
