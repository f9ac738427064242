package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidate_DecimalBounds(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ok     bool
		status int
		field  string
	}{
		{"valid", `{"supplier_name":"Acme","quantity":"10","total_price":100,"tax_rate":"16"}`, true, 0, ""},
		{"tax above range", `{"supplier_name":"Acme","quantity":1,"total_price":1,"tax_rate":150}`, false, http.StatusUnprocessableEntity, "tax_rate"},
		{"negative quantity", `{"supplier_name":"Acme","quantity":-5,"total_price":1,"tax_rate":0}`, false, http.StatusUnprocessableEntity, "quantity"},
		{"missing supplier", `{"quantity":1,"total_price":1,"tax_rate":0}`, false, http.StatusUnprocessableEntity, "supplier_name"},
		{"malformed", `{"quantity":`, false, http.StatusBadRequest, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(tc.body)
			var req dto.RegisterRestockRequest

			ok := bindAndValidate(c, &req)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				return
			}
			assert.Equal(t, tc.status, w.Code)
			if tc.field != "" {
				var resp apierror.ValidationResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp.Fields, tc.field)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", apierror.Invalid("cart", "cart has no lines"), http.StatusUnprocessableEntity, "Error de validacion"},
		{"not found", apierror.NotFound("sale", 9), http.StatusNotFound, `sale "9" not found`},
		{"storage", apierror.Storage("commit sale", errors.New("pq: password authentication failed")), http.StatusInternalServerError, "Error interno del servidor"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext("")
			respondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.detail)
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"0", "-1", "abc"} {
		c, w := testContext("")
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := parseID(c, "id")
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	c, _ := testContext("")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(c, "id")
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)
}
