package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocation(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodPost, "/api/locations", map[string]interface{}{
		"name":      "Pantai Depok",
		"address":   "Jl. Depok, Bantul",
		"latitude":  -8.0012,
		"longitude": 110.2934,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Pantai Depok", body["location_name"])
	assert.Equal(t, -8.0012, body["latitude"])
}

func TestCreateLocationRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]interface{}{
		"name":      "Pantai Depok",
		"address":   "Jl. Depok, Bantul",
		"latitude":  -8.0012,
		"longitude": 110.2934,
	}
	w := env.performJSON(t, http.MethodPost, "/api/locations", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.performJSON(t, http.MethodPost, "/api/locations", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
}

func TestCreateLocationValidatesCoordinates(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodPost, "/api/locations", map[string]interface{}{
		"name":      "Nowhere",
		"address":   "Jl. Nowhere",
		"latitude":  95.0,
		"longitude": 200.0,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "latitude")
	assert.Contains(t, errs, "longitude")
}

func TestUpdateLocationPartial(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodPost, "/api/locations", map[string]interface{}{
		"name":      "Pantai Glagah",
		"address":   "Jl. Glagah",
		"latitude":  -7.9,
		"longitude": 110.1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)

	w = env.performJSON(t, http.MethodPut, fmt.Sprintf("/api/locations/%v", created["id"]), map[string]interface{}{
		"address": "Jl. Glagah Baru",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Pantai Glagah", body["location_name"])
	assert.Equal(t, "Jl. Glagah Baru", body["location_address"])
}

func TestDeleteLocationNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodDelete, "/api/locations/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Location not found", decodeBody(t, w)["message"])
}
