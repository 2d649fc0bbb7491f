package persons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maksimkurb/phonebook/src/internal/errors"
	"github.com/maksimkurb/phonebook/src/internal/log"
)

// HTTPClient interface for dependency injection in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the client for the contacts collection.
//
// The client keeps no state between calls and is safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	timeout    time.Duration
}

// NewClient creates a new client with the default base URL.
//
// If httpClient is nil, http.DefaultClient is used.
//
// For custom base URLs, use NewClientWithBaseURL.
func NewClient(httpClient HTTPClient) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, httpClient)
}

// NewClientWithBaseURL creates a new client for the collection at baseURL.
//
// A trailing slash is appended when missing so that ids can be joined
// directly (baseURL + id).
//
// Example:
//
//	client := persons.NewClientWithBaseURL("http://192.168.1.10:3001/persons", nil)
func NewClientWithBaseURL(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// SetRequestTimeout bounds every call by d. Zero disables the bound, which is
// the default.
func (c *Client) SetRequestTimeout(d time.Duration) {
	c.timeout = d
}

// BaseURL returns the collection URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAll returns the full current collection.
func (c *Client) GetAll(ctx context.Context) ([]Contact, error) {
	contacts, err := doAndDeserialize[[]Contact](ctx, c, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []Contact{}
	}
	return contacts, nil
}

// Create adds a contact and returns the record created by the service,
// including its assigned id.
func (c *Client) Create(ctx context.Context, input ContactInput) (*Contact, error) {
	created, err := doAndDeserialize[Contact](ctx, c, http.MethodPost, c.baseURL, input)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the name and number of the contact with the given id.
//
// If the contact no longer exists, the returned error matches ErrNotFound.
func (c *Client) Update(ctx context.Context, id ID, input ContactInput) error {
	return c.do(ctx, http.MethodPut, c.contactURL(id), input)
}

// Delete removes the contact with the given id.
func (c *Client) Delete(ctx context.Context, id ID) error {
	return c.do(ctx, http.MethodDelete, c.contactURL(id), nil)
}

func (c *Client) contactURL(id ID) string {
	return c.baseURL + url.PathEscape(id.String())
}

// do performs the request and discards the response body.
func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}) error {
	resp, cancel, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// doAndDeserialize is a generic helper to perform a request and deserialize its JSON response.
func doAndDeserialize[T any](ctx context.Context, c *Client, method, endpoint string, body interface{}) (T, error) {
	var result T

	resp, cancel, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return result, err
	}
	defer cancel()
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, errors.NewRemoteError(fmt.Sprintf("failed to read response of %s %s", method, endpoint), err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, errors.NewRemoteError(fmt.Sprintf("failed to unmarshal response of %s %s", method, endpoint), err)
	}

	return result, nil
}

// send issues the request and checks the status code. On success the caller
// owns resp.Body and must call cancel once done with it.
func (c *Client) send(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, context.CancelFunc, error) {
	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			cancel()
			return nil, nil, errors.NewInternalError("failed to marshal request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		cancel()
		return nil, nil, errors.NewInternalError(fmt.Sprintf("failed to build request %s %s", method, endpoint), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, nil, errors.NewRemoteError(fmt.Sprintf("failed to call %s %s", method, endpoint), err)
	}
	log.Debugf("%s %s - %d (%v)", method, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		cancel()

		cause := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		if resp.StatusCode == http.StatusNotFound {
			return nil, nil, errors.NewNotFoundError(fmt.Sprintf("%s %s", method, endpoint), cause)
		}
		return nil, nil, errors.NewRemoteError(fmt.Sprintf("%s %s", method, endpoint), cause)
	}

	return resp, cancel, nil
}
