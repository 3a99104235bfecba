package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderForm(t *testing.T, authRequired bool) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.SetHTMLTemplate(FormTemplates())
	NewFormHandler(authRequired).Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w
}

func TestFormHandler_Show(t *testing.T) {
	w := renderForm(t, false)
	body := w.Body.String()

	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	for _, text := range []string{
		"Generate a shipping label",
		"Prefill sample data",
		"Create USPS label",
		"From address",
		"Destination address",
		"Download label",
		`data-address="from"`,
		`data-address="to"`,
		`name="street1"`,
		`name="weight"`,
	} {
		assert.Contains(t, body, text)
	}
	assert.NotContains(t, body, `name="apiKey"`)
}

func TestFormHandler_ScriptData(t *testing.T) {
	body := renderForm(t, false).Body.String()

	assert.Regexp(t, `const endpoint =\s*"(\\/|/)api(\\/|/)label"`, body)
	assert.Regexp(t, `const fallbackError =\s*"Unable to create label"`, body)
	assert.Contains(t, body, `"parcel":{"weight":16,"length":10,"width":8,"height":4}`)
	assert.Contains(t, body, `"name":"John Sender"`)
	assert.Contains(t, body, `"street1":"30 Rockefeller Plz"`)
	assert.Contains(t, body, `"parcel":{"weight":24,"length":12,"width":9,"height":6}`)
}

func TestFormHandler_AuthRequired(t *testing.T) {
	body := renderForm(t, true).Body.String()

	assert.Contains(t, body, `name="apiKey"`)
}
