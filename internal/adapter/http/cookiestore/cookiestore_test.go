package cookiestore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout-persistence/internal/core/ports/mocks"
	"checkout-persistence/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, req *http.Request, sealer *service.CookieSealer) (*Store, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	if req == nil {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
	}
	c.Request = req

	var store *Store
	if sealer == nil {
		store = New(c, Attributes{HTTPOnly: true, SameSite: http.SameSiteLaxMode}, nil, zerolog.Nop())
	} else {
		store = New(c, Attributes{HTTPOnly: true, SameSite: http.SameSiteLaxMode}, sealer, zerolog.Nop())
	}
	store.now = func() time.Time { return fixedNow }
	return store, w
}

func responseCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestStore_SessionCookie(t *testing.T) {
	store, w := newTestStore(t, nil, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "email", "rider@example.com", time.Time{}))

	cookie := responseCookie(t, w, "email")
	assert.Equal(t, "rider@example.com", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.True(t, cookie.Expires.IsZero())
	assert.Zero(t, cookie.MaxAge)

	got, ok, err := store.Get(ctx, "email")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rider@example.com", got)
}

func TestStore_ExpiringCookie(t *testing.T) {
	store, w := newTestStore(t, nil, nil)
	ctx := context.Background()

	expiresAt := fixedNow.Add(10 * time.Minute)
	require.NoError(t, store.Set(ctx, "accessToken", "tok", expiresAt))

	cookie := responseCookie(t, w, "accessToken")
	assert.Equal(t, 600, cookie.MaxAge)
	assert.Equal(t, expiresAt.Unix(), cookie.Expires.Unix())

	got, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", got)

	store.now = func() time.Time { return expiresAt }
	_, ok, err = store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok, "written cookie reads absent at its expiry instant")
}

func TestStore_PastExpiryDeletes(t *testing.T) {
	store, w := newTestStore(t, nil, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "accessToken", "tok", fixedNow))

	cookie := responseCookie(t, w, "accessToken")
	assert.Equal(t, -1, cookie.MaxAge)
	assert.Empty(t, cookie.Value)

	_, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ReadsRequestCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "email", Value: "rider%40example.com"})
	store, _ := newTestStore(t, req, nil)
	ctx := context.Background()

	got, ok, err := store.Get(ctx, "email")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rider@example.com", got, "escaped values from the browser are unescaped")

	_, ok, err = store.Get(ctx, "accessToken")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_EscapesUnsafeValues(t *testing.T) {
	store, w := newTestStore(t, nil, nil)

	require.NoError(t, store.Set(context.Background(), "email", `a b;c,"d"`, time.Time{}))

	cookie := responseCookie(t, w, "email")
	assert.Equal(t, "a%20b%3Bc%2C%22d%22", cookie.Value)
}

func TestStore_Sealed(t *testing.T) {
	sealer, err := service.NewCookieSealer(testKey)
	require.NoError(t, err)
	ctx := context.Background()

	store, w := newTestStore(t, nil, sealer)
	require.NoError(t, store.Set(ctx, "email", "rider@example.com", time.Time{}))

	cookie := responseCookie(t, w, "email")
	assert.NotContains(t, cookie.Value, "rider")

	// Next request carries the sealed cookie back.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "email", Value: cookie.Value})
	next, _ := newTestStore(t, req, sealer)

	got, ok, err := next.Get(ctx, "email")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rider@example.com", got)
}

func TestStore_TamperedSealedCookieIsAbsent(t *testing.T) {
	sealer, err := service.NewCookieSealer(testKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "email", Value: "rider@example.com"})
	store, _ := newTestStore(t, req, sealer)

	_, ok, err := store.Get(context.Background(), "email")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SealFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	sealer := mocks.NewMockValueSealer(ctrl)
	sealer.EXPECT().Seal("email", "a@b.co").Return("", errors.New("entropy exhausted"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	store := New(c, Attributes{}, sealer, zerolog.Nop())

	err := store.Set(context.Background(), "email", "a@b.co", time.Time{})
	assert.Error(t, err)
	assert.Empty(t, w.Result().Cookies())
}

func TestProvider(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	store := Provider(Attributes{Domain: "shop.example.com", Secure: true}, nil, zerolog.Nop())(c, "sid")
	require.NoError(t, store.Set(context.Background(), "email", "x@y.zz", time.Time{}))

	cookie := responseCookie(t, w, "email")
	assert.Equal(t, "shop.example.com", cookie.Domain)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, ParseSameSite("Strict"))
	assert.Equal(t, http.SameSiteNoneMode, ParseSameSite("none"))
	assert.Equal(t, http.SameSiteLaxMode, ParseSameSite("lax"))
	assert.Equal(t, http.SameSiteLaxMode, ParseSameSite(""))
}
