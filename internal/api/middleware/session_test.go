package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "storefront_session"

func captureSession(t *testing.T, r *http.Request) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var got string
	h := Session(testCookie, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetSessionID(r.Context())
		require.True(t, ok)
		got = id
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return got, w
}

func TestSession_IssuesNewID(t *testing.T) {
	id, w := captureSession(t, httptest.NewRequest(http.MethodGet, "/checkout", nil))

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Header().Get(HeaderSessionID))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_ReusesCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	r.AddCookie(&http.Cookie{Name: testCookie, Value: "existing"})
	r.Header.Set(HeaderSessionID, "from-header")

	id, w := captureSession(t, r)
	assert.Equal(t, "existing", id)
	assert.Empty(t, w.Result().Cookies())
}

func TestSession_ReusesHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	r.Header.Set(HeaderSessionID, "from-header")

	id, _ := captureSession(t, r)
	assert.Equal(t, "from-header", id)
}

func TestSession_RejectsOversizedID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	r.Header.Set(HeaderSessionID, strings.Repeat("a", maxSessionIDLength+1))

	id, _ := captureSession(t, r)
	assert.NotEqual(t, strings.Repeat("a", maxSessionIDLength+1), id)
	assert.Len(t, id, 36)
}

func TestSession_IDLengthFitsStorageColumn(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		accepted bool
	}{
		{name: "column width", length: 64, accepted: true},
		{name: "one over column width", length: 65, accepted: false},
		{name: "long header", length: 100, accepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supplied := strings.Repeat("s", tt.length)
			r := httptest.NewRequest(http.MethodGet, "/checkout", nil)
			r.Header.Set(HeaderSessionID, supplied)

			id, _ := captureSession(t, r)
			if tt.accepted {
				assert.Equal(t, supplied, id)
				return
			}
			assert.NotEqual(t, supplied, id)
			assert.LessOrEqual(t, len(id), 64)
		})
	}
}

func TestGetSessionID_Missing(t *testing.T) {
	_, ok := GetSessionID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
