package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"socket address with port", "203.0.113.7:52110", "", "203.0.113.7"},
		{"socket address without port", "203.0.113.7", "", "203.0.113.7"},
		{"forwarded single hop", "10.0.0.1:80", "198.51.100.4", "198.51.100.4"},
		{"forwarded chain takes first", "10.0.0.1:80", "198.51.100.4, 10.0.0.2", "198.51.100.4"},
		{"forwarded with spaces", "10.0.0.1:80", "  198.51.100.4  ", "198.51.100.4"},
		{"empty forwarded falls through", "203.0.113.7:52110", "", "203.0.113.7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := clientIP(c); got != tc.want {
				t.Errorf("clientIP() = %q, want %q", got, tc.want)
			}
		})
	}
}
