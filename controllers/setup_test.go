package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pesisir-api/config"
	"pesisir-api/database"
	"pesisir-api/models"
	"pesisir-api/routes"
	"pesisir-api/services"
	"pesisir-api/storage"
)

type testEnv struct {
	router      *gin.Engine
	db          *gorm.DB
	storageRoot string
}

// newTestEnv wires the full router against an in-memory sqlite database and a
// throwaway local disk.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	root := t.TempDir()
	disk := storage.NewLocalDisk(root)

	cfg := &config.Config{
		Debug:     true,
		JWTSecret: "test-secret",
		SMTPHost:  "localhost",
		SMTPPort:  2525,
		FromEmail: "noreply@pesisir.test",
		FromName:  "Pesisir",
	}
	emailService := services.NewEmailService(cfg)

	router := gin.New()
	routes.SetupRoutes(router, db, cfg, emailService, disk)

	return &testEnv{
		router:      router,
		db:          db,
		storageRoot: root,
	}
}

func (e *testEnv) performJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
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
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) performAuthed(t *testing.T, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) performMultipart(t *testing.T, method, path string, fields map[string]string, fileField, fileName string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createActivity seeds an activity (and its location) directly through gorm.
func (e *testEnv) createActivity(t *testing.T, name, date, status string) models.Activity {
	t.Helper()

	location := models.Location{
		LocationName:    name + " location",
		LocationAddress: name + " address",
		Latitude:        -7.8,
		Longitude:       110.4,
	}
	require.NoError(t, e.db.Create(&location).Error)

	activity := models.Activity{
		ActivityName:   name,
		ActivityDate:   date,
		ActivityTime:   "08:00",
		ActivityStatus: status,
		ActivityFee:    20000,
		LocationID:     location.ID,
	}
	require.NoError(t, e.db.Create(&activity).Error)
	return activity
}
