package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"totalBooks": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalBooks":3}`, w.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{"参数错误", apperrors.New(apperrors.ErrCodeInvalidParams, "page必须为正整数"), 400, 40900, "page必须为正整数"},
		{"存储错误隐藏内部原因", apperrors.WrapCode(errors.New("dial tcp: refused"), apperrors.ErrCodeDatabaseError, "查询图书列表失败"), 500, 50001, "查询图书列表失败"},
		{"未知错误", errors.New("panic-ish"), 500, 50000, "系统内部错误"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.NotContains(t, w.Body.String(), "refused")
		})
	}
}

func TestError_LogsInternalCause(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(LoggerKey, zap.New(core))

	Error(c, apperrors.WrapCode(errors.New("database is locked"), apperrors.ErrCodeDatabaseError, "查询失败"))

	entries := logs.FilterMessage("请求失败").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "database is locked", entries[0].ContextMap()["error"])
}
