package utils

import (
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ReadResponseBody drains an Elasticsearch API response body, used to surface
// error payloads in backend errors.
func ReadResponseBody(response *esapi.Response) (string, error) {
	if response.Body == nil {
		return "", fmt.Errorf("response body is nil")
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
