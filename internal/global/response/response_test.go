package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestFailNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/campers/9", nil)

	Fail(c, ErrNotFound.WithMessage("Camper not found"))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, map[string]any{"error": "Camper not found"}, decode(t, w))
	require.True(t, c.IsAborted())
}

func TestFailValidationListsDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/campers", nil)

	Fail(c, ErrValidation.WithTips("Camper must have a name", "Camper's age must be between 8 and 18 years"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, []any{"Camper must have a name", "Camper's age must be between 8 and 18 years"}, decode(t, w)["errors"])
}

func TestFailValidationFallsBackToMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/signups", nil)

	Fail(c, ErrInvalidRequest)

	require.Equal(t, []any{"invalid request"}, decode(t, w)["errors"])
}

func TestWithOriginKeepsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := ErrDatabase.WithOrigin(cause)

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ErrDatabase)
	require.NotNil(t, err.StackTrace())
	require.Contains(t, err.Origin, "disk I/O error")
	// 预定义错误不被修改
	require.Empty(t, ErrDatabase.Origin)
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		defer Recovery(c)
		c.Next()
	})
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "internal server error", decode(t, w)["error"])
}
