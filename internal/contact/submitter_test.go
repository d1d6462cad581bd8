package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/Adda-Baaj/portfolio-client/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.ContactRequest {
	return domain.ContactRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Subject: "Project Inquiry",
		Message: "I would like to discuss a project opportunity.",
	}
}

type recordingServer struct {
	*httptest.Server
	calls  atomic.Int32
	bodies chan []byte
}

func newRecordingServer(t *testing.T, handler func(w http.ResponseWriter)) *recordingServer {
	t.Helper()
	rs := &recordingServer{bodies: make(chan []byte, 8)}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.calls.Add(1)
		if r.Method != http.MethodPost || r.URL.Path != EndpointPath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		rs.bodies <- body
		handler(w)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func newTestSubmitter(t *testing.T, baseURL string) *Submitter {
	t.Helper()
	sub, err := NewSubmitter(httpclient.NewRestyClient(2*time.Second, ""), baseURL, nil)
	require.NoError(t, err)
	return sub
}

func TestSubmitSendsOneRequestWithJSONBody(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Thank you for reaching out! I'll get back to you soon."}`))
	})

	req := validRequest()
	res := newTestSubmitter(t, srv.URL).Submit(context.Background(), req)

	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Thank you for reaching out! I'll get back to you soon.", res.Message)
	assert.NoError(t, res.Err)
	assert.Equal(t, int32(1), srv.calls.Load())

	want, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(<-srv.bodies))
}

func TestSubmitSendsFieldsAsEntered(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	})

	req := domain.ContactRequest{
		Name:    " Ada ",
		Email:   "ada@example.com",
		Subject: "  Hello",
		Message: "line1\nline2\n",
	}
	res := newTestSubmitter(t, srv.URL).Submit(context.Background(), req)
	require.Equal(t, StatusSuccess, res.Status)

	want, err := json.Marshal(req)
	require.NoError(t, err)
	got := <-srv.bodies
	assert.JSONEq(t, string(want), string(got))

	var sent domain.ContactRequest
	require.NoError(t, json.Unmarshal(got, &sent))
	assert.Equal(t, req, sent)
}

func TestSubmitRateLimitedIgnoresBody(t *testing.T) {
	srv := newRecordingServer(t, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"success":true,"message":"ignored"}`))
	})

	res := newTestSubmitter(t, srv.URL).Submit(context.Background(), validRequest())

	assert.Equal(t, StatusRateLimited, res.Status)
	assert.ErrorIs(t, res.Err, ErrRateLimited)
	assert.Equal(t, RateLimitedNotice, res.Notice().Description)
}

func TestSubmitNonSuccessStatusYieldsGenericFailure(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError, http.StatusBadGateway} {
		srv := newRecordingServer(t, func(w http.ResponseWriter) {
			http.Error(w, `{"detail":"Failed to process contact form."}`, status)
		})

		res := newTestSubmitter(t, srv.URL).Submit(context.Background(), validRequest())

		assert.Equal(t, StatusFailure, res.Status, "status %d", status)
		assert.NotEmpty(t, res.Message, "status %d", status)
		assert.ErrorIs(t, res.Err, ErrBadStatus, "status %d", status)
		assert.Equal(t, int32(1), srv.calls.Load(), "no retry expected for status %d", status)
	}
}

func TestSubmitMalformedSuccessBody(t *testing.T) {
	cases := map[string]string{
		"not json":      `<html>oops</html>`,
		"success false": `{"success":false,"message":"nope"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := newRecordingServer(t, func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(body))
			})

			res := newTestSubmitter(t, srv.URL).Submit(context.Background(), validRequest())

			assert.Equal(t, StatusFailure, res.Status)
			assert.ErrorIs(t, res.Err, ErrMalformedResponse)
			assert.Equal(t, FailureNotice, res.Notice().Description)
		})
	}
}

func TestSubmitNetworkErrorYieldsFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	res := newTestSubmitter(t, base).Submit(context.Background(), validRequest())

	assert.Equal(t, StatusFailure, res.Status)
	assert.ErrorIs(t, res.Err, ErrTransport)
	assert.NotEmpty(t, res.Message)
}

type countingClient struct {
	calls int
}

func (c *countingClient) Get(context.Context, string, map[string]string) (httpclient.Response, error) {
	c.calls++
	return nil, errors.New("unexpected call")
}

func (c *countingClient) PostJSON(context.Context, string, map[string]string, any) (httpclient.Response, error) {
	c.calls++
	return nil, errors.New("unexpected call")
}

func TestSubmitInvalidRequestNeverHitsNetwork(t *testing.T) {
	client := &countingClient{}
	sub, err := NewSubmitter(client, "https://api.example.com", nil)
	require.NoError(t, err)

	req := validRequest()
	req.Message = "  "
	res := sub.Submit(context.Background(), req)

	assert.Equal(t, StatusFailure, res.Status)
	var verr *ValidationError
	require.ErrorAs(t, res.Err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "message", verr.Fields[0].Field)
	assert.Zero(t, client.calls)
}

func TestNewSubmitterResolvesEndpoint(t *testing.T) {
	sub, err := NewSubmitter(&countingClient{}, "https://example.com/", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/contact", sub.Endpoint())

	_, err = NewSubmitter(&countingClient{}, "", nil)
	assert.Error(t, err)

	_, err = NewSubmitter(nil, "https://example.com", nil)
	assert.Error(t, err)
}
