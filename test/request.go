package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Router 是各模块的 InitRouter
type Router interface {
	InitRouter(r *gin.RouterGroup)
}

// NewEngine 挂载给定模块路由的测试引擎
func NewEngine(modules ...Router) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, m := range modules {
		m.InitRouter(r.Group(""))
	}
	return r
}

// DoRequest 发送请求，body 非 nil 时编码为 JSON
func DoRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
