package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/db"
	"github.com/dead-or-play/gate-go/internal/testutils"
	"github.com/dead-or-play/gate-go/middleware"
	"github.com/dead-or-play/gate-go/models"
	"github.com/dead-or-play/gate-go/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	dsn, cleanup := testutils.SetupPostgresForIntegration()

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}
	db.InitWithGormDB(gormDB)

	if err := gormDB.Exec(`DO $$ BEGIN CREATE TYPE ticket_status AS ENUM ('UNUSED', 'USED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`).Error; err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(&models.Ticket{}); err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func doRequest(t *testing.T, method, path, token string, body interface{}, expectedStatus int) *httptest.ResponseRecorder {
	return doRequestFrom(t, method, path, "203.0.113.10", token, body, expectedStatus)
}

func doRequestFrom(t *testing.T, method, path, ip, token string, body interface{}, expectedStatus int) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = ip + ":40000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, expectedStatus, resp.Code, resp.Body.String())
	return resp
}
