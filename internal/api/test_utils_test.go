package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/alimentos/backend/internal/logging"
	"github.com/pageza/alimentos/backend/internal/middleware"
	"github.com/pageza/alimentos/backend/internal/service"
	"github.com/pageza/alimentos/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupAlimentoTestRouter wires the handler to a freshly provisioned database.
// The returned buffer collects everything the handler logs.
func setupAlimentoTestRouter(t *testing.T) (*gin.Engine, string, *bytes.Buffer) {
	t.Helper()

	path := testhelpers.SetupTestDatabase(t)
	router, buf := newTestRouter(service.NewAlimentoService(path))
	return router, path, buf
}

func newTestRouter(svc service.IAlimentoService) (*gin.Engine, *bytes.Buffer) {
	var buf bytes.Buffer
	log, err := logging.NewWithWriter(&buf, "debug")
	if err != nil {
		panic(err)
	}

	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.ErrorHandler(log))
	router.NoRoute(middleware.NotFound)
	NewAlimentoHandler(svc, log).RegisterRoutes(router)

	return router, &buf
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, target, nil)
	case string:
		req = httptest.NewRequest(method, target, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewBuffer(data))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
