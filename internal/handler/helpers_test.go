package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campneus/auditoria-campneus/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBindAndValidate_ListsEveryViolatedField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authH := NewAuthHandler(nil) // validation fails before the service is touched
	r.POST("/login", authH.Login)

	w := postJSON(r, "/login", map[string]string{"username": "ab"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 2)

	fields := map[string]string{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "min", fields["Username"])
	assert.Equal(t, "required", fields["Password"])
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authH := NewAuthHandler(nil)
	r.POST("/login", authH.Login)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON inválido")
}

func TestQueryUUID_MalformedFilterRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auditsH := NewAuditsHandler(nil) // the bad filter short-circuits before the service
	r.GET("/audits", auditsH.List)

	for _, query := range []string{"branch_id=abc", "auditor_id=123"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/audits?"+query, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, query)

		var resp apierror.ValidationError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "uuid", resp.Errors[0].Message)
	}
}

func TestPathUUID_Invalid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	usersH := NewUsersHandler(nil) // the bad id short-circuits before the service
	r.DELETE("/users/:id", usersH.Delete)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/users/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
