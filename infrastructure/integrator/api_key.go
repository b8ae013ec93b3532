package integrator

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIKeyCredentials is the decrypted credential bundle for api_key
// platforms. The connect flow serializes and encrypts it as a single unit;
// adapters receive the serialized form as their "access token".
type APIKeyCredentials struct {
	APIKey     string `json:"apiKey"`
	APISecret  string `json:"apiSecret"`
	CustomerID string `json:"customerId"`
}

func ParseAPIKeyCredentials(raw string) (*APIKeyCredentials, error) {
	var credentials APIKeyCredentials
	if err := json.Unmarshal([]byte(raw), &credentials); err != nil {
		return nil, errors.Wrap(err, "parsing api key credentials")
	}

	if credentials.APIKey == "" || credentials.APISecret == "" {
		return nil, errors.New("api key credentials are incomplete")
	}

	return &credentials, nil
}
