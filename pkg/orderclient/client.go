package orderclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/mitchstreats/treats-backend/internal/app/model"
)

const defaultTimeout = 30 * time.Second

// Confirmation is the outcome of an accepted submission.
type Confirmation struct {
	Message string
}

// Client submits orders to the storefront backend. At most one submission may
// be in flight at a time; a concurrent Submit returns ErrSubmitInFlight
// without issuing a request.
type Client struct {
	config     Config
	httpClient *http.Client
	inFlight   atomic.Bool
}

// NewClient creates a new submission client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Submit sends the serialized order to the backend. Any response other than a
// 2xx status with a {success:true} body is a failure; the caller's cart must
// stay intact so the user can retry.
func (c *Client) Submit(ctx context.Context, order model.OrderSubmission) (*Confirmation, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer c.inFlight.Store(false)

	reqBody, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	url := c.config.BaseURL + "/api/submit-order"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable response body", ErrSubmitFailed)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A JSON error body may still carry the server's message.
		var sr model.SubmitResponse
		if json.Unmarshal(body, &sr) == nil && sr.Message != "" {
			return nil, &ServerError{Message: sr.Message}
		}
		return nil, fmt.Errorf("%w: status %d", ErrSubmitFailed, resp.StatusCode)
	}

	var sr model.SubmitResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("%w: malformed response body", ErrSubmitFailed)
	}
	if !sr.Success {
		if sr.Message == "" {
			return nil, fmt.Errorf("%w: server rejected the order", ErrSubmitFailed)
		}
		return nil, &ServerError{Message: sr.Message}
	}

	return &Confirmation{Message: sr.Message}, nil
}
