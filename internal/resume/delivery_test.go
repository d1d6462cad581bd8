package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/Adda-Baaj/portfolio-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callLog records the order of share and save actions.
type callLog struct {
	calls []string
}

type fakeSharer struct {
	log *callLog
	err error
}

func (f *fakeSharer) Share(_ context.Context, _ domain.ResumeAsset) error {
	f.log.calls = append(f.log.calls, "share")
	return f.err
}

type fakeSaver struct {
	log *callLog
	err error
}

func (f *fakeSaver) Save(_ context.Context, asset domain.ResumeAsset) (string, error) {
	f.log.calls = append(f.log.calls, "save")
	if f.err != nil {
		return "", f.err
	}
	return "/downloads/" + asset.FileName, nil
}

func pdfAsset() domain.ResumeAsset {
	return domain.ResumeAsset{Data: samplePDF, ContentType: domain.ResumeContentType, FileName: domain.DefaultResumeFileName}
}

func newStrategy(t *testing.T, platform Platform, shareErr, saveErr error) (*ShareThenDownload, *callLog) {
	t.Helper()
	log := &callLog{}
	s, err := NewShareThenDownload(platform, &fakeSharer{log: log, err: shareErr}, &fakeSaver{log: log, err: saveErr}, nil)
	require.NoError(t, err)
	return s, log
}

func TestDetectPlatform(t *testing.T) {
	cases := map[string]bool{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)":  true,
		"Mozilla/5.0 (Linux; Android 14; Pixel 8)":                true,
		"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)":           true,
		"mozilla/5.0 (ipod touch)":                                true,
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0":  false,
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) Safari/605": false,
	}
	for ua, mobile := range cases {
		p := DetectPlatform(ua, true)
		assert.Equal(t, mobile, p.Mobile, "user agent %q", ua)
		assert.True(t, p.CanShare)
	}

	assert.False(t, DetectPlatform("", false).Mobile)
}

func TestMobileShareComesBeforeDownload(t *testing.T) {
	s, log := newStrategy(t, Platform{CanShare: true, Mobile: true}, nil, nil)

	d, err := s.Deliver(context.Background(), pdfAsset())
	require.NoError(t, err)
	assert.Equal(t, MethodShare, d.Method)
	assert.Equal(t, []string{"share"}, log.calls)
}

func TestShareCancelledFallsBackToDownload(t *testing.T) {
	s, log := newStrategy(t, Platform{CanShare: true, Mobile: true}, ErrShareCancelled, nil)

	d, err := s.Deliver(context.Background(), pdfAsset())
	require.NoError(t, err, "cancellation must not surface as an error")
	assert.Equal(t, MethodDownload, d.Method)
	assert.Equal(t, "/downloads/"+domain.DefaultResumeFileName, d.Location)
	assert.Equal(t, []string{"share", "save"}, log.calls)
}

func TestShareFailureFallsBackToDownload(t *testing.T) {
	s, log := newStrategy(t, Platform{CanShare: true, Mobile: true}, errors.New("no share targets"), nil)

	d, err := s.Deliver(context.Background(), pdfAsset())
	require.NoError(t, err)
	assert.Equal(t, MethodDownload, d.Method)
	assert.Equal(t, []string{"share", "save"}, log.calls)
}

func TestDesktopSkipsShare(t *testing.T) {
	s, log := newStrategy(t, Platform{CanShare: true, Mobile: false}, nil, nil)

	d, err := s.Deliver(context.Background(), pdfAsset())
	require.NoError(t, err)
	assert.Equal(t, MethodDownload, d.Method)
	assert.Equal(t, []string{"save"}, log.calls)
}

func TestMobileWithoutShareCapabilitySkipsShare(t *testing.T) {
	s, log := newStrategy(t, Platform{CanShare: false, Mobile: true}, nil, nil)

	_, err := s.Deliver(context.Background(), pdfAsset())
	require.NoError(t, err)
	assert.Equal(t, []string{"save"}, log.calls)
}

func TestNonPDFAssetSkipsShare(t *testing.T) {
	s, log := newStrategy(t, Platform{CanShare: true, Mobile: true}, nil, nil)
	asset := pdfAsset()
	asset.ContentType = "application/octet-stream"

	_, err := s.Deliver(context.Background(), asset)
	require.NoError(t, err)
	assert.Equal(t, []string{"save"}, log.calls)
}

func TestSaveFailureSurfaces(t *testing.T) {
	s, _ := newStrategy(t, Platform{}, nil, errors.New("read-only filesystem"))

	_, err := s.Deliver(context.Background(), pdfAsset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
}

func TestNilSharerDisablesShare(t *testing.T) {
	log := &callLog{}
	s, err := NewShareThenDownload(Platform{CanShare: true, Mobile: true}, nil, &fakeSaver{log: log}, nil)
	require.NoError(t, err)

	_, err = s.Deliver(context.Background(), pdfAsset())
	require.NoError(t, err)
	assert.Equal(t, []string{"save"}, log.calls)

	_, err = NewShareThenDownload(Platform{}, nil, nil, nil)
	assert.Error(t, err)
}
