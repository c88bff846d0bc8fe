package configs

import "net/url"

// GoogleAds holds credentials and connection settings for the Google Ads
// API. The OAuth fields follow the standard installed-app refresh token
// flow. LoginCustomerID is only required when the authenticated user
// accesses the customer account through a manager account.
type GoogleAds struct {
	// DeveloperToken is sent as the developer-token header on every call.
	DeveloperToken string `env:"DEVELOPER_TOKEN"`
	// ClientID and ClientSecret identify the OAuth application.
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	// RefreshToken is exchanged for short-lived access tokens.
	RefreshToken string `env:"REFRESH_TOKEN"`
	// LoginCustomerID is the manager account id, without dashes. Optional.
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	// CustomerID is the target ad account all lifecycle operations run
	// against, without dashes.
	CustomerID string `env:"CUSTOMER_ID"`
	// Endpoint is the API base URL. Overridable for tests and sandboxes.
	Endpoint url.URL `env:"ENDPOINT" envDefault:"https://googleads.googleapis.com"`
	// APIVersion selects the REST API version path segment.
	APIVersion string `env:"API_VERSION" envDefault:"v18"`
}
