package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-smart-calc"
)

// ApiUrlBase open exchange rates endpoint, the base currency code is appended
const ApiUrlBase = "https://open.er-api.com/v6/latest"

// DefaultTimeout bounds a single rates request
const DefaultTimeout = 3 * time.Second

// Service loads exchange rates relative to a base currency
type Service interface {
	ExchangeRates(ctx context.Context, base smartcalc.Currency) (smartcalc.Rates, error)
}

// service open exchange rates API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a rates Service against url. An empty url selects
// ApiUrlBase and a zero timeout selects DefaultTimeout.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		url: strings.TrimSuffix(url, "/"),
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates loads the latest rates for base
func (s *service) ExchangeRates(ctx context.Context, base smartcalc.Currency) (smartcalc.Rates, error) {
	type Response struct {
		Result   string             `json:"result"`
		BaseCode string             `json:"base_code"`
		Rates    map[string]float64 `json:"rates"` // maps currency codes to rates
	}

	url := fmt.Sprintf("%v/%v", s.url, base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http get: unexpected status %v", httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if response.Result != "" && response.Result != "success" {
		return nil, fmt.Errorf("rates api result: %v", response.Result)
	}
	if len(response.Rates) == 0 {
		return nil, fmt.Errorf("rates api: no rates for [%v]", base)
	}

	rates := smartcalc.Rates{}
	for k, v := range response.Rates {
		if v <= 0 {
			return nil, fmt.Errorf("bad rate value for [%v]: %v", k, v)
		}
		rates[smartcalc.Currency(k)] = smartcalc.Rate(v)
	}

	return rates, nil
}
