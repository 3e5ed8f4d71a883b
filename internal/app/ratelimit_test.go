package app

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPLimiter(t *testing.T) {
	l := newIPLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, l.allow("10.0.0.1", now))
	assert.True(t, l.allow("10.0.0.1", now))
	assert.False(t, l.allow("10.0.0.1", now))
	assert.True(t, l.allow("10.0.0.2", now))

	assert.True(t, l.allow("10.0.0.1", now.Add(time.Second)))

	l.allow("10.0.0.3", now.Add(time.Hour))
	assert.Len(t, l.entries, 1)
}

func TestIPLimiter_Unlimited(t *testing.T) {
	l := newIPLimiter(0, 0)
	now := time.Now()

	for i := 0; i < 100; i++ {
		assert.True(t, l.allow("10.0.0.1", now))
	}
}

func TestClientIP_UntrustedPeer(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/submit", nil)
	r.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", proxies(nil).clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "192.0.2.7", proxies(nil).clientIP(r))
}

func TestClientIP_TrustedProxy(t *testing.T) {
	p, err := parseProxies([]string{"10.0.0.0/8", "172.16.0.9"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		remote string
		xff    []string
		want   string
	}{
		{"no header", "10.0.0.5:443", nil, "10.0.0.5"},
		{"single hop", "10.0.0.5:443", []string{"203.0.113.9"}, "203.0.113.9"},
		{"rightmost untrusted hop", "10.0.0.5:443", []string{"198.51.100.1, 203.0.113.9, 172.16.0.9"}, "203.0.113.9"},
		{"spoofed left entries ignored", "10.0.0.5:443", []string{"1.1.1.1, 2.2.2.2, 203.0.113.9"}, "203.0.113.9"},
		{"multiple headers", "10.0.0.5:443", []string{"198.51.100.1", "203.0.113.9, 10.1.2.3"}, "203.0.113.9"},
		{"all hops trusted", "10.0.0.5:443", []string{"10.9.9.9, 172.16.0.9"}, "10.9.9.9"},
		{"garbage hop", "10.0.0.5:443", []string{"not-an-ip, 10.1.1.1"}, "not-an-ip"},
		{"untrusted peer", "192.0.2.7:5555", []string{"203.0.113.9"}, "192.0.2.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/submit", nil)
			r.RemoteAddr = tt.remote
			for _, v := range tt.xff {
				r.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, p.clientIP(r))
		})
	}
}

func TestParseProxies(t *testing.T) {
	p, err := parseProxies([]string{" 10.0.0.0/8 ", "", "::1", "192.0.2.1"})
	require.NoError(t, err)
	assert.Len(t, p, 3)
	assert.True(t, p.trusted("10.200.0.1"))
	assert.True(t, p.trusted("::1"))
	assert.True(t, p.trusted("::ffff:192.0.2.1"))
	assert.False(t, p.trusted("192.0.2.2"))

	_, err = parseProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)

	_, err = parseProxies([]string{"proxy.internal"})
	assert.Error(t, err)
}
