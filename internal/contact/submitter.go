package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/Adda-Baaj/portfolio-client/pkg/httpclient"
)

// EndpointPath is the contact-intake route on the backend.
const EndpointPath = "/api/contact"

// ContactSubmitter sends a contact request and reports the tagged outcome.
type ContactSubmitter interface {
	Submit(ctx context.Context, req domain.ContactRequest) Result
}

// Submitter posts contact requests to the backend contact-intake endpoint.
type Submitter struct {
	client   httpclient.Client
	endpoint string
	log      Logger
}

// NewSubmitter builds a submitter targeting {baseURL}/api/contact.
func NewSubmitter(client httpclient.Client, baseURL string, log Logger) (*Submitter, error) {
	if client == nil {
		return nil, fmt.Errorf("http client must not be nil")
	}
	endpoint, err := httpclient.ResolveURL(baseURL, EndpointPath)
	if err != nil {
		return nil, fmt.Errorf("resolve contact endpoint: %w", err)
	}
	return &Submitter{
		client:   client,
		endpoint: endpoint,
		log:      ensureLogger(log),
	}, nil
}

// Endpoint returns the resolved contact-intake URL.
func (s *Submitter) Endpoint() string { return s.endpoint }

type intakeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit validates req and issues exactly one POST for it, carrying the field values as
// entered. It never retries.
func (s *Submitter) Submit(ctx context.Context, req domain.ContactRequest) Result {
	if err := Validate(req); err != nil {
		s.log.WarnObj("contact request rejected before send", "contact_validation", map[string]any{
			"error": err.Error(),
		})
		return Failure(err)
	}

	resp, err := s.client.PostJSON(ctx, s.endpoint, nil, req)
	if err != nil {
		s.log.ErrorObj("contact submission failed", "contact_error", map[string]any{
			"endpoint": s.endpoint,
			"error":    err.Error(),
		})
		return Failure(fmt.Errorf("%w: %v", ErrTransport, err))
	}

	status := resp.StatusCode()
	if status == http.StatusTooManyRequests {
		s.log.WarnObj("contact submission rate limited", "contact_status", map[string]any{
			"endpoint": s.endpoint,
			"status":   status,
		})
		return RateLimited()
	}
	if status < 200 || status > 299 {
		snippet := readBodySnippet(resp.Body())
		s.log.ErrorObj("contact submission rejected", "contact_status", map[string]any{
			"endpoint": s.endpoint,
			"status":   status,
			"body":     snippet,
		})
		return Failure(fmt.Errorf("%w: status %d: %s", ErrBadStatus, status, snippet))
	}

	var body intakeResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		s.log.ErrorObj("contact response decode failed", "contact_error", map[string]any{
			"endpoint": s.endpoint,
			"error":    err.Error(),
		})
		return Failure(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	if !body.Success {
		s.log.ErrorObj("contact intake reported failure", "contact_status", map[string]any{
			"endpoint": s.endpoint,
			"status":   status,
			"message":  body.Message,
		})
		return Failure(fmt.Errorf("%w: success=false", ErrMalformedResponse))
	}

	s.log.InfoObj("contact submission accepted", "contact_result", map[string]any{
		"endpoint": s.endpoint,
		"status":   status,
	})
	return Success(body.Message)
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
