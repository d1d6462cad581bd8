package resume

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/Adda-Baaj/portfolio-client/pkg/httpclient"
	"github.com/gabriel-vasile/mimetype"
)

// EndpointPath is the resume-asset route on the backend.
const EndpointPath = "/api/resume/download"

// ErrDownloadInProgress is returned when Download is called before an earlier call resolved.
var ErrDownloadInProgress = errors.New("resume download already in progress")

// Downloader fetches the resume from the backend and hands it to a delivery strategy.
type Downloader struct {
	client      httpclient.Client
	endpoint    string
	deliverer   Deliverer
	log         Logger
	fileName    string
	verifyMagic bool
	observer    Observer

	state atomic.Int32
	busy  atomic.Bool
}

// Option customises a Downloader.
type Option func(*Downloader)

// WithFileName overrides the suggested file name used when the response does not name one.
func WithFileName(name string) Option {
	return func(d *Downloader) {
		if name = strings.TrimSpace(name); name != "" {
			d.fileName = name
		}
	}
}

// WithMagicVerification additionally requires the body to sniff as a PDF.
func WithMagicVerification(enabled bool) Option {
	return func(d *Downloader) { d.verifyMagic = enabled }
}

// WithObserver registers a callback for state transitions.
func WithObserver(fn Observer) Option {
	return func(d *Downloader) { d.observer = fn }
}

// NewDownloader builds a downloader targeting {baseURL}/api/resume/download. deliverer
// may be nil when only Fetch is used.
func NewDownloader(client httpclient.Client, baseURL string, deliverer Deliverer, log Logger, opts ...Option) (*Downloader, error) {
	if client == nil {
		return nil, fmt.Errorf("http client must not be nil")
	}
	endpoint, err := httpclient.ResolveURL(baseURL, EndpointPath)
	if err != nil {
		return nil, fmt.Errorf("resolve resume endpoint: %w", err)
	}

	d := &Downloader{
		client:    client,
		endpoint:  endpoint,
		deliverer: deliverer,
		log:       ensureLogger(log),
		fileName:  domain.DefaultResumeFileName,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d, nil
}

// Endpoint returns the resolved resume URL.
func (d *Downloader) Endpoint() string { return d.endpoint }

// State returns the current step of the state machine.
func (d *Downloader) State() State { return State(d.state.Load()) }

func (d *Downloader) transition(to State) {
	from := State(d.state.Swap(int32(to)))
	if d.observer != nil && from != to {
		d.observer(from, to)
	}
}

// fail records the failure and returns the machine to Idle.
func (d *Downloader) fail(err error) error {
	d.transition(StateFailed)
	d.log.ErrorObj("resume download failed", "resume_error", map[string]any{
		"endpoint": d.endpoint,
		"error":    err.Error(),
	})
	d.transition(StateIdle)
	return err
}

// Fetch requests the resume and validates status and declared content type. It never
// retries. Errors are *DownloadError. Fetch shares the in-flight guard with Download, so
// a call made while either is running returns ErrDownloadInProgress.
func (d *Downloader) Fetch(ctx context.Context) (domain.ResumeAsset, error) {
	if !d.busy.CompareAndSwap(false, true) {
		return domain.ResumeAsset{}, ErrDownloadInProgress
	}
	defer d.busy.Store(false)

	asset, err := d.fetch(ctx)
	if err != nil {
		return domain.ResumeAsset{}, d.fail(err)
	}
	d.transition(StateIdle)
	return asset, nil
}

// Download fetches the resume and delivers it. A call made while another is in flight is
// suppressed with ErrDownloadInProgress.
func (d *Downloader) Download(ctx context.Context) (Delivery, error) {
	if d.deliverer == nil {
		return Delivery{}, fmt.Errorf("resume downloader has no delivery strategy")
	}
	if !d.busy.CompareAndSwap(false, true) {
		return Delivery{}, ErrDownloadInProgress
	}
	defer d.busy.Store(false)

	asset, err := d.fetch(ctx)
	if err != nil {
		return Delivery{}, d.fail(err)
	}

	d.transition(StateDelivering)
	delivery, err := d.deliverer.Deliver(ctx, asset)
	if err != nil {
		return Delivery{}, d.fail(&DownloadError{Kind: KindDelivery, Err: err})
	}
	d.transition(StateIdle)
	return delivery, nil
}

func (d *Downloader) fetch(ctx context.Context) (domain.ResumeAsset, error) {
	d.transition(StateRequesting)
	resp, err := d.client.Get(ctx, d.endpoint, map[string]string{"Accept": domain.ResumeContentType})
	if err != nil {
		return domain.ResumeAsset{}, &DownloadError{Kind: KindNetwork, Err: err}
	}

	d.transition(StateValidating)
	status := resp.StatusCode()
	contentType := resp.Header("Content-Type")
	body := resp.Body()

	if status < http.StatusOK || status > 299 {
		return domain.ResumeAsset{}, &DownloadError{
			Kind:        KindBadStatus,
			StatusCode:  status,
			ContentType: contentType,
			Detail:      describeBody(contentType, body),
		}
	}
	if !domain.IsPDFContentType(contentType) {
		return domain.ResumeAsset{}, &DownloadError{
			Kind:        KindUnexpectedContentType,
			StatusCode:  status,
			ContentType: contentType,
			Detail:      describeBody(contentType, body),
		}
	}
	if d.verifyMagic {
		if sniffed := mimetype.Detect(body); !sniffed.Is(domain.ResumeContentType) {
			return domain.ResumeAsset{}, &DownloadError{
				Kind:        KindUnexpectedContentType,
				StatusCode:  status,
				ContentType: contentType,
				Detail:      "body sniffed as " + sniffed.String(),
			}
		}
	}

	asset := domain.ResumeAsset{
		Data:        body,
		ContentType: contentType,
		FileName:    d.suggestedName(resp.Header("Content-Disposition")),
	}
	d.log.DebugObj("resume fetched", "resume_fetch", map[string]any{
		"endpoint":     d.endpoint,
		"status":       status,
		"content_type": contentType,
		"bytes":        len(body),
		"file_name":    asset.FileName,
	})
	return asset, nil
}

// suggestedName prefers the Content-Disposition filename over the configured default.
func (d *Downloader) suggestedName(disposition string) string {
	if disposition == "" {
		return d.fileName
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return d.fileName
	}
	if raw := strings.TrimSpace(params["filename"]); raw != "" {
		return sanitizeFileName(raw)
	}
	return d.fileName
}
