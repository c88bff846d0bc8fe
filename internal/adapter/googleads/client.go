package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"adpilot/internal/core/domain"
)

const (
	defaultAPIVersion        = "v18"
	defaultAssetFetchTimeout = 15 * time.Second
)

// Config carries the settings needed to talk to the Google Ads REST API.
type Config struct {
	// BaseURL is the API host, e.g. https://googleads.googleapis.com.
	BaseURL string
	// APIVersion is the version path segment, e.g. v18.
	APIVersion string
	// DeveloperToken is sent as the developer-token header.
	DeveloperToken string
	// LoginCustomerID is the manager account id header value. Optional.
	LoginCustomerID string
	// HTTPClient performs the API calls. Use OAuthHTTPClient for
	// production; tests inject a plain client against a test server.
	HTTPClient *http.Client
	// AssetFetchTimeout bounds image downloads from operator-supplied URLs.
	AssetFetchTimeout time.Duration
}

// Gateway implements port.AdsGateway against the Google Ads REST API. It is
// stateless: each method is a single synchronous remote call with no local
// retry, so none of the create operations are idempotent.
type Gateway struct {
	http            *http.Client
	assetHTTP       *http.Client
	baseURL         string
	version         string
	developerToken  string
	loginCustomerID string
}

// NewGateway returns a gateway configured from cfg. Zero values fall back
// to sensible defaults so tests only need to set BaseURL and HTTPClient.
func NewGateway(cfg Config) *Gateway {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	version := cfg.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	fetchTimeout := cfg.AssetFetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultAssetFetchTimeout
	}
	return &Gateway{
		http:            httpClient,
		assetHTTP:       &http.Client{Timeout: fetchTimeout},
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		version:         version,
		developerToken:  cfg.DeveloperToken,
		loginCustomerID: cfg.LoginCustomerID,
	}
}

// OAuthHTTPClient builds an HTTP client that authenticates with the Google
// Ads API via the OAuth2 refresh token flow. Access tokens are obtained and
// renewed lazily by the oauth2 transport.
func OAuthHTTPClient(ctx context.Context, clientID, clientSecret, refreshToken string) *http.Client {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://www.googleapis.com/auth/adwords"},
	}
	return conf.Client(ctx, &oauth2.Token{RefreshToken: refreshToken})
}

// mutateResponse is the common shape of Google Ads mutate responses.
type mutateResponse struct {
	Results []mutateResult `json:"results"`
}

type mutateResult struct {
	ResourceName string `json:"resourceName"`
}

// mutate performs a POST against customers/{customerID}/{service}:mutate and
// decodes the response into out. Remote rejections are translated into
// *domain.RemoteAPIError.
func (g *Gateway) mutate(ctx context.Context, customerID, service string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", service, err)
	}

	endpoint := fmt.Sprintf("%s/%s/customers/%s/%s:mutate", g.baseURL, g.version, customerID, service)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.developerToken != "" {
		req.Header.Set("developer-token", g.developerToken)
	}
	if g.loginCustomerID != "" {
		req.Header.Set("login-customer-id", g.loginCustomerID)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", service, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, respBody)
	}
	if out != nil {
		if err = json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse %s response: %w", service, err)
		}
	}
	return nil
}

// decodeAPIError converts a non-2xx mutate response into a RemoteAPIError,
// preferring the structured error body when the platform sent one.
func decodeAPIError(statusCode int, body []byte) error {
	var payload struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return &domain.RemoteAPIError{Code: payload.Error.Status, Message: payload.Error.Message}
	}
	return &domain.RemoteAPIError{Code: strconv.Itoa(statusCode), Message: strings.TrimSpace(string(body))}
}
