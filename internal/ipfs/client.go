package ipfs

import (
	"bytes"
	"coinnect-backend/config"
	"coinnect-backend/internal/utils"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotConfigured is returned when no Filebase credentials are set.
// Anchoring is optional, so callers treat this the same as any other
// gateway failure: log it and move on.
var ErrNotConfigured = errors.New("ipfs: filebase credentials not configured")

// Client talks to the Filebase IPFS pinning API. Content is pushed as
// JSON, addressed by CID, and pinned so it survives garbage collection.
type Client struct {
	BaseURL    string
	GatewayURL string
	auth       string
	httpClient *http.Client
}

// NewClient builds a client from the service configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:    cfg.IPFSAPIBaseURL,
		GatewayURL: cfg.IPFSGatewayURL,
		auth:       basicAuth(cfg.FilebaseAccessKey, cfg.FilebaseSecretKey),
		httpClient: utils.NewHTTPClient(15 * time.Second),
	}
}

func basicAuth(accessKey, secretKey string) string {
	if accessKey == "" && secretKey == "" {
		return ""
	}
	token := base64.StdEncoding.EncodeToString([]byte(accessKey + ":" + secretKey))
	return "Basic " + token
}

type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
	Size string `json:"Size"`
}

// AddJSON uploads the given value as JSON and returns its CID.
func (c *Client) AddJSON(v interface{}) (string, error) {
	if c.auth == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/add", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError("add", resp)
	}

	var result addResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("ipfs: decode add response: %w", err)
	}
	if result.Hash == "" {
		return "", errors.New("ipfs: add response missing hash")
	}
	return result.Hash, nil
}

// CatJSON fetches the content behind a CID and unmarshals it into out.
func (c *Client) CatJSON(cid string, out interface{}) error {
	if c.auth == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/cat?arg="+url.QueryEscape(cid), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError("cat", resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// Pin asks the gateway to keep the CID pinned.
func (c *Client) Pin(cid string) error {
	if c.auth == "" {
		return ErrNotConfigured
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/pin/add?arg="+url.QueryEscape(cid), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError("pin/add", resp)
	}
	return nil
}

// GatewayLink returns a browser-viewable URL for a CID.
func (c *Client) GatewayLink(cid string) string {
	return c.GatewayURL + cid
}

func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("ipfs: %s failed: %d - %s", op, resp.StatusCode, string(body))
}
