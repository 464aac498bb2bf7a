package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/aussiebroadwan/notedesk/pkg/httpx"
	"github.com/aussiebroadwan/notedesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	body := `{"username":"` + strings.Repeat("a", httpx.MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var v map[string]string
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
}

func TestAuthnAndRoles(t *testing.T) {
	signer, err := jwtx.NewHS256Signer([]byte("access-secret-for-middleware-tests"))
	require.NoError(t, err)

	mint := func(roles ...string) string {
		tok, err := signer.Sign(jwtx.NewAccessClaims("alice", roles, time.Minute, time.Now()))
		require.NoError(t, err)
		return tok
	}

	var gotUser string
	protected := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotUser = claims.UserInfo.Username
		w.WriteHeader(http.StatusOK)
	}), httpx.AuthnMiddleware(signer), httpx.RequireAnyRole("Admin", "Manager"))

	cases := []struct {
		name    string
		header  string
		code    int
		errCode string
	}{
		{"missing header", "", http.StatusUnauthorized, authsdk.ErrorCodeUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, authsdk.ErrorCodeUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, authsdk.ErrorCodeUnauthorized},
		{"lacking role", "Bearer " + mint("Employee"), http.StatusForbidden, authsdk.ErrorCodeForbidden},
		{"holding role", "Bearer " + mint("Employee", "Manager"), http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUser = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)
			require.Equal(t, tc.code, rec.Code)
			if tc.code == http.StatusOK {
				require.Equal(t, "alice", gotUser)
			} else {
				require.Empty(t, gotUser)
				require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

				var body httpx.ErrorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Equal(t, tc.errCode, body.Error)
				require.NotEmpty(t, body.Message)
			}
		})
	}
}

func TestErrorEnvelopeMatchesSDK(t *testing.T) {
	limited := httpx.RateLimitByIP(httpx.RateLimitConfig{
		RequestsPerWindow: 1,
		Window:            time.Minute,
		Burst:             1,
	}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authsdk.ErrUnauthorized.WriteError(w)
	}))

	decode := func(rec *httptest.ResponseRecorder) authsdk.APIError {
		var e authsdk.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		return e
	}

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, authsdk.ErrorCodeUnauthorized, decode(rec).Code)

	rec = httptest.NewRecorder()
	limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	e := decode(rec)
	require.Equal(t, authsdk.ErrorCodeRateLimited, e.Code)
	require.NotEmpty(t, e.Message)
}
