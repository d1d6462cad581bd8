package resume

import (
	"errors"
	"fmt"
)

// Kind classifies a DownloadError.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindBadStatus
	KindUnexpectedContentType
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindBadStatus:
		return "bad_status"
	case KindUnexpectedContentType:
		return "unexpected_content_type"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Sentinels matched by DownloadError.Is, so callers can use errors.Is(err, ErrBadStatus).
var (
	ErrNetwork               = errors.New("resume request failed")
	ErrBadStatus             = errors.New("resume endpoint returned non-success status")
	ErrUnexpectedContentType = errors.New("resume endpoint returned unexpected content type")
	ErrDelivery              = errors.New("resume delivery failed")
)

// DownloadError describes why a resume download attempt failed.
type DownloadError struct {
	Kind        Kind
	StatusCode  int
	ContentType string
	Detail      string
	Err         error
}

func (e *DownloadError) Error() string {
	var msg string
	switch e.Kind {
	case KindBadStatus:
		msg = fmt.Sprintf("bad status %d", e.StatusCode)
	case KindUnexpectedContentType:
		ct := e.ContentType
		if ct == "" {
			ct = "<none>"
		}
		msg = fmt.Sprintf("unexpected content type %q", ct)
	case KindNetwork:
		msg = "request failed"
	case KindDelivery:
		msg = "delivery failed"
	default:
		msg = "download failed"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Is matches the Kind sentinels.
func (e *DownloadError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrBadStatus:
		return e.Kind == KindBadStatus
	case ErrUnexpectedContentType:
		return e.Kind == KindUnexpectedContentType
	case ErrDelivery:
		return e.Kind == KindDelivery
	}
	return false
}

// UserMessage renders the notice shown to the user for a failed download.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return "Failed to download resume: " + err.Error()
}
