package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesisir-api/models"
)

func isoDate(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func activityPayload(name, date string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"desc":        "Beach cleanup morning shift",
		"date":        date,
		"time":        "08:00",
		"fee":         25000,
		"loc_name":    name + " beach",
		"loc_address": "Jl. Pantai No. 1",
		"lat":         -7.9778,
		"long":        110.3695,
	}
}

func TestCreateActivityDerivesStatus(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		date string
		want string
	}{
		{"Past Cleanup", isoDate(-3), models.ActivityStatusDone},
		{"Today Cleanup", isoDate(0), models.ActivityStatusOngoing},
		{"Future Cleanup", isoDate(5), models.ActivityStatusUpcoming},
	}

	for _, tt := range tests {
		w := env.performJSON(t, http.MethodPost, "/api/activities", activityPayload(tt.name, tt.date))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decodeBody(t, w)
		assert.Equal(t, tt.want, body["activity_status"], "date %s", tt.date)
	}
}

func TestCreateActivityRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodPost, "/api/activities", activityPayload("Mangrove Planting", isoDate(7)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.performJSON(t, http.MethodPost, "/api/activities", activityPayload("Mangrove Planting", isoDate(14)))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
}

func TestCreateActivityValidation(t *testing.T) {
	env := newTestEnv(t)

	payload := activityPayload("Broken Activity", isoDate(1))
	delete(payload, "name")
	payload["fee"] = 500
	payload["lat"] = 123.0

	w := env.performJSON(t, http.MethodPost, "/api/activities", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "fee")
	assert.Contains(t, errs, "lat")
}

func TestCreateActivityReusesLocation(t *testing.T) {
	env := newTestEnv(t)

	first := activityPayload("Cleanup One", isoDate(3))
	w := env.performJSON(t, http.MethodPost, "/api/activities", first)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same place with different coordinates: the stored row wins.
	second := activityPayload("Cleanup Two", isoDate(4))
	second["loc_name"] = first["loc_name"]
	second["loc_address"] = first["loc_address"]
	second["lat"] = 1.0
	second["long"] = 2.0
	w = env.performJSON(t, http.MethodPost, "/api/activities", second)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	env.db.Model(&models.Location{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var location models.Location
	require.NoError(t, env.db.First(&location).Error)
	assert.Equal(t, -7.9778, location.Latitude)
	assert.Equal(t, 110.3695, location.Longitude)
}

func TestUpdateActivityWithoutDateKeepsStatus(t *testing.T) {
	env := newTestEnv(t)
	activity := env.createActivity(t, "Coral Workshop", isoDate(-10), models.ActivityStatusDone)

	w := env.performJSON(t, http.MethodPut, fmt.Sprintf("/api/activities/%d", activity.ID), map[string]interface{}{
		"desc": "Updated description",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, models.ActivityStatusDone, body["activity_status"])
	assert.Equal(t, "Updated description", body["activity_desc"])
}

func TestUpdateActivityWithDateRederivesStatus(t *testing.T) {
	env := newTestEnv(t)
	activity := env.createActivity(t, "Coral Workshop", isoDate(-10), models.ActivityStatusDone)

	w := env.performJSON(t, http.MethodPut, fmt.Sprintf("/api/activities/%d", activity.ID), map[string]interface{}{
		"date": isoDate(10),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, models.ActivityStatusUpcoming, body["activity_status"])
	assert.Equal(t, isoDate(10), body["activity_date"])
}

func TestGetActivityRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodPost, "/api/activities", activityPayload("Turtle Release", isoDate(2)))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)

	w = env.performJSON(t, http.MethodGet, fmt.Sprintf("/api/activities/%v", created["id"]), nil)
	require.Equal(t, http.StatusOK, w.Code)

	fetched := decodeBody(t, w)
	assert.Equal(t, created["activity_name"], fetched["activity_name"])
	assert.Equal(t, created["activity_date"], fetched["activity_date"])
	assert.Equal(t, created["activity_status"], fetched["activity_status"])

	location := fetched["location"].(map[string]interface{})
	assert.Equal(t, "Turtle Release beach", location["location_name"])
}

func TestGetActivityNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.performJSON(t, http.MethodGet, "/api/activities/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Activity not found", decodeBody(t, w)["message"])
}

func TestDeleteActivityNotFoundLeavesRows(t *testing.T) {
	env := newTestEnv(t)
	env.createActivity(t, "Survivor", isoDate(1), models.ActivityStatusUpcoming)

	w := env.performJSON(t, http.MethodDelete, "/api/activities/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	env.db.Model(&models.Activity{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteActivity(t *testing.T) {
	env := newTestEnv(t)
	activity := env.createActivity(t, "Short Lived", isoDate(1), models.ActivityStatusUpcoming)

	w := env.performJSON(t, http.MethodDelete, fmt.Sprintf("/api/activities/%d", activity.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Activity deleted successfully", decodeBody(t, w)["message"])

	var count int64
	env.db.Model(&models.Activity{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
