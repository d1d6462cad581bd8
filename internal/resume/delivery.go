package resume

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
)

// ErrShareCancelled is the explicit signal that the user dismissed the share action.
// It is not a failure: delivery falls back to a direct download.
var ErrShareCancelled = errors.New("share cancelled by user")

const (
	MethodShare    = "share"
	MethodDownload = "download"
)

// Delivery reports how an asset reached the user.
type Delivery struct {
	Method   string
	Location string
}

// Deliverer hands a validated asset to the user.
type Deliverer interface {
	Deliver(ctx context.Context, asset domain.ResumeAsset) (Delivery, error)
}

// Sharer offers the asset through a native share action.
type Sharer interface {
	Share(ctx context.Context, asset domain.ResumeAsset) error
}

// Saver performs a direct download of the asset and returns where it was saved.
type Saver interface {
	Save(ctx context.Context, asset domain.ResumeAsset) (string, error)
}

// Platform captures the delivery capabilities of the runtime environment.
type Platform struct {
	CanShare bool
	Mobile   bool
}

var mobileAgent = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// DetectPlatform flags touch/mobile user agents. canShare reports whether a native share
// capability is available at all.
func DetectPlatform(userAgent string, canShare bool) Platform {
	return Platform{
		CanShare: canShare,
		Mobile:   mobileAgent.MatchString(userAgent),
	}
}

// ShareThenDownload tries a native share on mobile platforms and otherwise, or when
// the share does not complete, saves the file directly.
type ShareThenDownload struct {
	platform Platform
	sharer   Sharer
	saver    Saver
	log      Logger
}

// NewShareThenDownload builds the default delivery strategy. sharer may be nil.
func NewShareThenDownload(platform Platform, sharer Sharer, saver Saver, log Logger) (*ShareThenDownload, error) {
	if saver == nil {
		return nil, fmt.Errorf("saver must not be nil")
	}
	if sharer == nil {
		platform.CanShare = false
	}
	return &ShareThenDownload{
		platform: platform,
		sharer:   sharer,
		saver:    saver,
		log:      ensureLogger(log),
	}, nil
}

// Deliver implements Deliverer.
func (s *ShareThenDownload) Deliver(ctx context.Context, asset domain.ResumeAsset) (Delivery, error) {
	if s.shouldShare(asset) {
		err := s.sharer.Share(ctx, asset)
		switch {
		case err == nil:
			s.log.InfoObj("resume shared", "resume_delivery", map[string]any{
				"method":    MethodShare,
				"file_name": asset.FileName,
			})
			return Delivery{Method: MethodShare}, nil
		case errors.Is(err, ErrShareCancelled):
			s.log.InfoObj("resume share cancelled; downloading instead", "resume_delivery", map[string]any{
				"file_name": asset.FileName,
			})
		case ctx.Err() != nil:
			return Delivery{}, ctx.Err()
		default:
			s.log.WarnObj("resume share failed; downloading instead", "resume_share_error", map[string]any{
				"file_name": asset.FileName,
				"error":     err.Error(),
			})
		}
	}

	location, err := s.saver.Save(ctx, asset)
	if err != nil {
		return Delivery{}, fmt.Errorf("save resume: %w", err)
	}
	s.log.InfoObj("resume downloaded", "resume_delivery", map[string]any{
		"method":   MethodDownload,
		"location": location,
		"bytes":    len(asset.Data),
	})
	return Delivery{Method: MethodDownload, Location: location}, nil
}

func (s *ShareThenDownload) shouldShare(asset domain.ResumeAsset) bool {
	return s.platform.CanShare && s.platform.Mobile && asset.IsPDF()
}
