package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

func MakeRequest(url string) ([]byte, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// GetJSON performs a GET and decodes the response body into out.
func GetJSON(url string, out any) error {
	data, err := MakeRequest(url)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, out)
}

// PostFormJSON posts a form-encoded body and decodes the JSON response into out.
func PostFormJSON(endpoint string, form url.Values, out any) error {
	resp, err := httpClient.Post(endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Error on Request: %s status: %s body: %s", endpoint, resp.Status, data)
	}

	return json.Unmarshal(data, out)
}
