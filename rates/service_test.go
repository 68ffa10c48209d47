package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-smart-calc"
)

func TestService_ExchangeRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.True(t, strings.HasSuffix(req.URL.Path, "/latest/USD"))
		response := `{
			"result": "success",
			"base_code": "USD",
			"rates": {
				"USD": 1,
				"EUR": 0.92,
				"PKR": 278.5
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	s := NewService(server.URL+"/latest/", time.Second)

	rates, err := s.ExchangeRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, smartcalc.Rate(1), rates["USD"])
	assert.Equal(t, smartcalc.Rate(0.92), rates["EUR"])
	assert.Equal(t, smartcalc.Rate(278.5), rates["PKR"])
}

func TestService_ExchangeRatesFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"malformed json", http.StatusOK, `{"rates": `},
		{"api error", http.StatusOK, `{"result": "error", "error-type": "unsupported-code"}`},
		{"no rates", http.StatusOK, `{"result": "success", "rates": {}}`},
		{"bad rate", http.StatusOK, `{"result": "success", "rates": {"EUR": 0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				rw.WriteHeader(tt.status)
				_, _ = rw.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewService(server.URL, time.Second).ExchangeRates(context.Background(), "USD")
			assert.Error(t, err)
		})
	}
}

func TestService_ExchangeRatesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	s := NewService(server.URL, 1*time.Millisecond)

	_, err := s.ExchangeRates(context.Background(), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Client.Timeout") // fragile :-(
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService("", 0).(*service)
	assert.Equal(t, ApiUrlBase, s.url)
	assert.Equal(t, DefaultTimeout, s.client.Timeout)
}
