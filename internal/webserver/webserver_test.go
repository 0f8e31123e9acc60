package webserver

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/directory"
	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/achantasri/JanAwaaz/internal/resolver"
)

func init() {
	gin.SetMode(gin.TestMode)
	logging.BootstrapLogger()
}

func resolveRouter() *gin.Engine {
	r := gin.New()
	h := NewResolve(directory.New())
	r.GET("/v1/constituencies/resolve", h.Resolve)
	return r
}

func doResolve(t *testing.T, router *gin.Engine, query string) (int, resolver.Result) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/constituencies/resolve?"+query, nil)
	router.ServeHTTP(w, req)

	var result resolver.Result
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	}
	return w.Code, result
}

func TestResolveNationalTier(t *testing.T) {
	router := resolveRouter()

	code, result := doResolve(t, router, "tier=national&pin=110001")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, result.Groups)
	assert.Equal(t, "NCT of Delhi", result.Groups[0].Label)
	assert.Equal(t, resolver.QualityState, result.Quality)
}

func TestResolveStateTierQuality(t *testing.T) {
	router := resolveRouter()

	code, result := doResolve(t, router, "tier=state&pin=110001")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, resolver.QualityDistrict, result.Quality)

	code, result = doResolve(t, router, "tier=state&pin=590001")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, resolver.QualityState, result.Quality)
}

func TestResolveDefaultsToNational(t *testing.T) {
	router := resolveRouter()

	code, result := doResolve(t, router, "pin=560001")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, result.Groups)
	assert.Equal(t, "Karnataka", result.Groups[0].Label)
}

func TestResolveRejectsUnknownTier(t *testing.T) {
	router := resolveRouter()

	code, _ := doResolve(t, router, "tier=galactic&pin=110001")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestResolveEmptyIsNotNull(t *testing.T) {
	router := resolveRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/constituencies/resolve?tier=national&pin=99", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Clients iterate groups unconditionally; an empty result must be [].
	assert.Contains(t, w.Body.String(), `"groups":[]`)
}

func TestResolveFilterQuery(t *testing.T) {
	router := resolveRouter()

	code, result := doResolve(t, router, "tier=state&pin=226001&q=cantonment")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, result.Groups)
	for _, g := range result.Groups {
		for _, e := range g.Entries {
			assert.Contains(t, e.Name, "Cantonment")
		}
	}
}

func TestJWTRoundtrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := issueJWT("user-1", secret)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/whoami", JWTMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("uid")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":"user-1"`)
}

func TestJWTMiddlewareRejects(t *testing.T) {
	secret := []byte("test-secret")
	r := gin.New()
	r.GET("/whoami", JWTMiddleware(secret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := map[string]string{
		"no header":    "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer not.a.token",
		"wrong secret": "Bearer " + mustJWT(t, "user-1", []byte("other-secret")),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func mustJWT(t *testing.T, uid string, secret []byte) string {
	t.Helper()
	token, err := issueJWT(uid, secret)
	require.NoError(t, err)
	return token
}

func TestHMACVerifier(t *testing.T) {
	secret := []byte("gateway-secret")
	v := HMACVerifier{Secret: secret}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte("user-1\nnonce-abc"))
	proof := hex.EncodeToString(mac.Sum(nil))

	id, err := v.Verify(context.Background(), "user-1", "nonce-abc", proof)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UID)

	_, err = v.Verify(context.Background(), "user-2", "nonce-abc", proof)
	assert.Error(t, err, "proof is bound to the uid")

	_, err = v.Verify(context.Background(), "user-1", "nonce-xyz", proof)
	assert.Error(t, err, "proof is bound to the nonce")

	_, err = v.Verify(context.Background(), "user-1", "nonce-abc", "zz-not-hex")
	assert.Error(t, err)
}

func TestStatusEndpoint(t *testing.T) {
	data.SetSetting(data.SettingMaintenanceBanner, "back soon")
	data.SetSetting(data.SettingVotingDisabled, "1")
	t.Cleanup(func() {
		data.SetSetting(data.SettingMaintenanceBanner, "")
		data.SetSetting(data.SettingVotingDisabled, "")
	})

	r := gin.New()
	r.GET("/v1/status", NewSettings(nil).Status)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"banner":"back soon"`)
	assert.Contains(t, w.Body.String(), `"votingDisabled":true`)
}

func TestCastRejectedWhileVotingPaused(t *testing.T) {
	data.SetSetting(data.SettingVotingDisabled, "1")
	t.Cleanup(func() { data.SetSetting(data.SettingVotingDisabled, "") })

	r := gin.New()
	r.POST("/v1/votes", NewVotes(nil).Cast)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/votes",
		strings.NewReader(`{"constituencyId":"DL-01","topicId":"t1","direction":"up"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "voting is paused")
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should pass", i)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// Independent keys have independent budgets.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 30*time.Millisecond)

	require.True(t, rl.Allow("1.2.3.4"))
	require.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(40 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/limited", RateLimitMiddleware(NewRateLimiter(1, time.Minute)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
