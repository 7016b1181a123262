package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Decode 解析响应体到 out
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

// ErrorEqual 断言 {"error": msg} 响应
func ErrorEqual(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	var body struct {
		Error string `json:"error"`
	}
	Decode(t, w, &body)
	require.Equal(t, msg, body.Error)
}

// ValidationErrors 断言 400 并返回 errors 数组
func ValidationErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	require.Equal(t, 400, w.Code, w.Body.String())
	var body struct {
		Errors []string `json:"errors"`
	}
	Decode(t, w, &body)
	require.NotEmpty(t, body.Errors)
	return body.Errors
}
