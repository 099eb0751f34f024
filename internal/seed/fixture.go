package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fixture is the seed document: manufacturers, drivers and the cars that
// reference them by natural key.
type Fixture struct {
	Manufacturers []ManufacturerData `json:"manufacturers"`
	Drivers       []DriverData       `json:"drivers"`
	Cars          []CarData          `json:"cars"`
}

type ManufacturerData struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type DriverData struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	LicenseNumber string `json:"license_number"`
}

// CarData names its manufacturer and drivers by manufacturer name and username.
type CarData struct {
	Model        string   `json:"model"`
	Manufacturer string   `json:"manufacturer"`
	Drivers      []string `json:"drivers"`
}

// Load reads a fixture from a local file or an http(s) URL.
func Load(ctx context.Context, source string) (*Fixture, error) {
	var (
		body []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		body, err = fetch(ctx, source)
	} else {
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var f Fixture
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &f, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := resty.New().
		SetTimeout(30 * time.Second).
		R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fixture: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fixture source returned status code: %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
