package httpx_test

import (
	"testing"

	"github.com/aussiebroadwan/notedesk/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestParseTrustedProxies(t *testing.T) {
	t.Run("addresses and ranges", func(t *testing.T) {
		tp, err := httpx.ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.5 ", "", "::1"})
		require.NoError(t, err)
		require.Len(t, tp, 3)
		require.Equal(t, "10.0.0.0/8", tp[0].String())
		require.Equal(t, "192.168.1.5/32", tp[1].String())
		require.Equal(t, "::1/128", tp[2].String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := httpx.ParseTrustedProxies([]string{"not-an-ip"})
		require.Error(t, err)

		_, err = httpx.ParseTrustedProxies([]string{"10.0.0.0/99"})
		require.Error(t, err)
	})

	t.Run("empty trusts nobody", func(t *testing.T) {
		tp, err := httpx.ParseTrustedProxies(nil)
		require.NoError(t, err)
		require.Empty(t, tp)
	})
}

func TestTrustedProxiesClientIP(t *testing.T) {
	tp, err := httpx.ParseTrustedProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		proxies httpx.TrustedProxies
		remote  string
		xff     string
		realIP  string
		want    string
	}{
		{
			name:   "no proxies configured ignores headers",
			remote: "203.0.113.9",
			xff:    "198.51.100.1",
			realIP: "198.51.100.2",
			want:   "203.0.113.9",
		},
		{
			name:    "untrusted peer ignores headers",
			proxies: tp,
			remote:  "203.0.113.9",
			xff:     "198.51.100.1",
			want:    "203.0.113.9",
		},
		{
			name:    "trusted peer uses forwarded client",
			proxies: tp,
			remote:  "10.0.0.2",
			xff:     "198.51.100.1",
			want:    "198.51.100.1",
		},
		{
			name:    "client supplied prefix is skipped",
			proxies: tp,
			remote:  "10.0.0.2",
			xff:     "1.2.3.4, 198.51.100.1, 10.0.0.3",
			want:    "198.51.100.1",
		},
		{
			name:    "trusted peer falls back to X-Real-IP",
			proxies: tp,
			remote:  "10.0.0.2",
			realIP:  "198.51.100.7",
			want:    "198.51.100.7",
		},
		{
			name:    "trusted peer without headers",
			proxies: tp,
			remote:  "10.0.0.2",
			want:    "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestFrom(tt.remote)
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			require.Equal(t, tt.want, tt.proxies.ClientIP(req))
			require.Equal(t, tt.want, tt.proxies.KeyExtractor()(req))
		})
	}
}
