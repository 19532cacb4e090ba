package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithCookies(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	c.Request = req
	return c, w
}

func flashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", CookieName)
	return nil
}

func TestAddThenPop(t *testing.T) {
	store := NewStore("secret", false)

	c, w := contextWithCookies()
	require.NoError(t, store.Add(c, Error("Please fill in all required fields.")))
	ck := flashCookie(t, w)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure)

	c, w = contextWithCookies(ck)
	msgs := store.Pop(c)

	assert.Equal(t, []Message{{Category: CategoryError, Text: "Please fill in all required fields."}}, msgs)
	cleared := flashCookie(t, w)
	assert.Equal(t, "", cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
}

func TestAddAppendsPending(t *testing.T) {
	store := NewStore("secret", true)

	c, w := contextWithCookies()
	require.NoError(t, store.Add(c, Success("first")))
	first := flashCookie(t, w)
	assert.True(t, first.Secure)

	c, w = contextWithCookies(first)
	require.NoError(t, store.Add(c, Error("second")))

	c, _ = contextWithCookies(flashCookie(t, w))
	assert.Equal(t, []Message{Success("first"), Error("second")}, store.Pop(c))
}

func TestPopIgnoresForeignSignature(t *testing.T) {
	c, w := contextWithCookies()
	require.NoError(t, NewStore("other-secret", false).Add(c, Success("forged")))

	c, _ = contextWithCookies(flashCookie(t, w))
	assert.Empty(t, NewStore("secret", false).Pop(c))
}

func TestPopIgnoresGarbage(t *testing.T) {
	c, _ := contextWithCookies(&http.Cookie{Name: CookieName, Value: "not-a-token"})
	assert.Empty(t, NewStore("secret", false).Pop(c))
}

func TestPopIgnoresExpired(t *testing.T) {
	store := NewStore("secret", false)
	store.now = func() time.Time { return time.Now().Add(-2 * Expiry) }

	c, w := contextWithCookies()
	require.NoError(t, store.Add(c, Success("too late")))

	c, _ = contextWithCookies(flashCookie(t, w))
	assert.Empty(t, store.Pop(c))
}

func TestPopWithoutCookie(t *testing.T) {
	c, w := contextWithCookies()
	assert.Nil(t, NewStore("secret", false).Pop(c))
	assert.Empty(t, w.Result().Cookies())
}
