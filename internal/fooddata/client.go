// Package fooddata looks foods up in USDA FoodData Central with an Open Food
// Facts fallback for barcodes. Calls are synchronous with a fixed timeout; a
// failed upstream call surfaces to the caller, never retried or cached.
package fooddata

import (
	"errors"
	"net/http"
	"time"
)

const (
	defaultSearchURL  = "https://api.nal.usda.gov/fdc/v1/foods/search"
	defaultProductURL = "https://world.openfoodfacts.org/api/v0/product"

	requestTimeout = 10 * time.Second
)

// ErrNotFound reports that neither source knows the requested food.
var ErrNotFound = errors.New("food not found")

type Client struct {
	apiKey     string
	searchURL  string
	productURL string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		searchURL:  defaultSearchURL,
		productURL: defaultProductURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}
