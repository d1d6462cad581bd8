package app

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/Adda-Baaj/portfolio-client/internal/config"
	"github.com/Adda-Baaj/portfolio-client/internal/contact"
	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/Adda-Baaj/portfolio-client/internal/logger"
	"github.com/Adda-Baaj/portfolio-client/internal/resume"
	"github.com/Adda-Baaj/portfolio-client/pkg/httpclient"
)

// Portfolio wires the contact and resume flows against one backend and reports their
// outcomes as user notices on out.
type Portfolio struct {
	cfg        *config.Config
	form       *contact.Form
	downloader *resume.Downloader
	out        io.Writer
	log        logger.Logger
}

// NewPortfolio builds the runtime from config.
func NewPortfolio(cfg *config.Config, log logger.Logger, out io.Writer) (*Portfolio, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if out == nil {
		out = io.Discard
	}

	client := httpclient.NewRestyClient(cfg.RequestTimeout, cfg.UserAgent)
	base := cfg.BaseURL()

	submitter, err := contact.NewSubmitter(client, base, log)
	if err != nil {
		return nil, fmt.Errorf("init contact submitter: %w", err)
	}

	var sharer resume.Sharer
	cmdSharer := resume.NewCommandSharer(cfg.ShareCommand)
	if cmdSharer.Available() {
		sharer = cmdSharer
	} else if cmdSharer != nil {
		log.WarnObj("share command not found; sharing disabled", "share_command", cfg.ShareCommand)
	}
	platform := detectPlatform(cfg.UserAgent, sharer != nil)

	strategy, err := resume.NewShareThenDownload(platform, sharer, resume.NewFileSaver(cfg.ResumeOutputDir), log)
	if err != nil {
		return nil, fmt.Errorf("init resume delivery: %w", err)
	}

	downloader, err := resume.NewDownloader(client, base, strategy, log,
		resume.WithFileName(cfg.ResumeFileName),
		resume.WithMagicVerification(cfg.ResumeVerifyMagic),
		resume.WithObserver(func(from, to resume.State) {
			log.DebugObj("resume state changed", "resume_state", map[string]string{
				"from": from.String(),
				"to":   to.String(),
			})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("init resume downloader: %w", err)
	}

	log.InfoObj("portfolio client initialized", "portfolio_config", map[string]any{
		"contact_endpoint": submitter.Endpoint(),
		"resume_endpoint":  downloader.Endpoint(),
		"timeout_seconds":  int(cfg.RequestTimeout.Seconds()),
		"mobile":           platform.Mobile,
		"can_share":        platform.CanShare,
	})

	return &Portfolio{
		cfg:        cfg,
		form:       contact.NewForm(submitter),
		downloader: downloader,
		out:        out,
		log:        log,
	}, nil
}

// detectPlatform falls back to the host OS when no user agent is configured.
func detectPlatform(userAgent string, canShare bool) resume.Platform {
	p := resume.DetectPlatform(userAgent, canShare)
	if userAgent == "" && (runtime.GOOS == "android" || runtime.GOOS == "ios") {
		p.Mobile = true
	}
	return p
}

// SubmitContact sends req through the contact form and prints the resulting notice. It
// returns an error for every outcome other than success.
func (p *Portfolio) SubmitContact(ctx context.Context, req domain.ContactRequest) error {
	p.form.Fill(req)
	res, err := p.form.Submit(ctx)
	if err != nil {
		fmt.Fprintf(p.out, "Error: %v\n", err)
		return fmt.Errorf("submit contact: %w", err)
	}

	notice := res.Notice()
	fmt.Fprintf(p.out, "%s %s\n", notice.Title, notice.Description)
	if !res.Succeeded() {
		if res.Err != nil {
			return fmt.Errorf("submit contact (%s): %w", res.Status, res.Err)
		}
		return fmt.Errorf("submit contact: %s", res.Status)
	}
	return nil
}

// DownloadResume fetches and delivers the resume, printing where it went.
func (p *Portfolio) DownloadResume(ctx context.Context) error {
	delivery, err := p.downloader.Download(ctx)
	if err != nil {
		fmt.Fprintln(p.out, resume.UserMessage(err))
		return fmt.Errorf("download resume: %w", err)
	}

	switch delivery.Method {
	case resume.MethodShare:
		fmt.Fprintln(p.out, "Resume shared.")
	default:
		fmt.Fprintf(p.out, "Resume saved to %s\n", delivery.Location)
	}
	return nil
}
