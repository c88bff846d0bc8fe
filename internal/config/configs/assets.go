package configs

import "time"

// Assets configures how image assets are downloaded before being registered
// with the ad platform. The fetch runs against an arbitrary operator-supplied
// URL, so it gets its own bounded timeout independent of the API client.
type Assets struct {
	// FetchTimeout bounds the asset download. Defaults to 15 seconds.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`
}
