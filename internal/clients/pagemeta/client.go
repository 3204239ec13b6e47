package pagemeta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// PageMeta holds the descriptive fields the extractor service recovered from
// an arbitrary posting URL. Any field may be empty.
type PageMeta struct {
	Title              string `json:"title"`
	CompanyName        string `json:"company_name"`
	Location           string `json:"location"`
	LocationType       string `json:"location_type"`
	DescriptionSnippet string `json:"description_snippet"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// Extract asks the extractor service to fetch and parse the page at pageURL.
// The core never touches the HTML itself.
func (c *Client) Extract(ctx context.Context, pageURL string) (*PageMeta, error) {

	if pageURL == "" {
		return nil, fmt.Errorf("page url must not be empty")
	}

	apiURL := c.baseURL + "/v1/extract?url=" + url.QueryEscape(pageURL)

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	var meta PageMeta
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&meta); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return &meta, nil
}
