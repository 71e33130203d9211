package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"checkout-persistence/internal/adapter/http/cookiestore"
	httpHandler "checkout-persistence/internal/adapter/http/handler"
	"checkout-persistence/internal/adapter/storage/memory"
	redisStorage "checkout-persistence/internal/adapter/storage/redis"
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/internal/service"
	"checkout-persistence/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	testMerchantSecret = "integration-merchant-secret"
	testCookieKey      = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

// testApp runs the full HTTP stack over miniredis, or over the in-memory
// backends when memory is set.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
}

type appOptions struct {
	memory    bool
	sealed    bool
	rateLimit bool
	noWallet  bool
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	log := logger.New("error", false)
	app := &testApp{}

	attrs := cookiestore.Attributes{Path: "/", HTTPOnly: true, SameSite: http.SameSiteLaxMode}

	var durable ports.DurableStoreFactory
	var checkers []ports.HealthChecker
	var rateLimitStore *redisStorage.RateLimitStore

	if opts.memory {
		durable = memory.NewDurableBackend()
	} else {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		app.redis = mr

		rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })

		durable = redisStorage.NewDurableStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		if opts.rateLimit {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
	}

	var sealer ports.ValueSealer
	if opts.sealed {
		cs, err := service.NewCookieSealer(testCookieKey)
		require.NoError(t, err)
		sealer = cs
	}
	cookies := cookiestore.Provider(attrs, sealer, log)

	var walletSvc ports.WalletJWTService
	if !opts.noWallet {
		walletSvc = service.NewWalletJWTService(service.WalletMerchant{
			ID:       "merchant-1",
			Secret:   testMerchantSecret,
			Name:     "Bike Store",
			ClientID: "client-1",
			Currency: "USD",
		})
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Facade:         httpHandler.NewFacade(durable, cookies, log),
		WalletSvc:      walletSvc,
		SessionCookie:  attrs,
		RateLimitStore: rateLimitStore,
		HealthCheckers: checkers,
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	return app
}

func (a *testApp) close() {
	a.server.Close()
	if a.redis != nil {
		a.redis.Close()
	}
}

// client returns an HTTP client with its own cookie jar, i.e. its own browser session.
func (a *testApp) client(t *testing.T) *browser {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{t: t, base: a.server.URL, http: &http.Client{Jar: jar}}
}

type browser struct {
	t    *testing.T
	base string
	http *http.Client
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func (b *browser) do(method, path string, body interface{}) (int, envelope) {
	b.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			require.NoError(b.t, err)
			raw = string(data)
		}
		reader = bytes.NewBufferString(raw)
	}

	req, err := http.NewRequest(method, b.base+path, reader)
	require.NoError(b.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.http.Do(req)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(b.t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func (b *browser) put(path string, body interface{}) int {
	b.t.Helper()
	status, _ := b.do(http.MethodPut, path, body)
	return status
}

// get decodes the data field of a 200 response into out.
func (b *browser) get(path string, out interface{}) {
	b.t.Helper()
	status, env := b.do(http.MethodGet, path, nil)
	require.Equal(b.t, http.StatusOK, status, env.ErrorCode)
	require.NoError(b.t, json.Unmarshal(env.Data, out))
}

// text reads a raw text or cookie value.
func (b *browser) text(path string) string {
	b.t.Helper()
	var v struct {
		Value string `json:"value"`
	}
	b.get(path, &v)
	return v.Value
}

func (b *browser) cookie(name string) *http.Cookie {
	b.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.base, nil)
	require.NoError(b.t, err)
	for _, c := range b.http.Jar.Cookies(req.URL) {
		if c.Name == name {
			return c
		}
	}
	return nil
}
