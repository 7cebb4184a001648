package fetcher

import (
	"context"
	"errors"
	"net/url"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
	"github.com/aleister1102/pdfwatch/internal/config"
	"github.com/aleister1102/pdfwatch/internal/httpclient"
	"github.com/rs/zerolog"
)

// Session is the HTTP surface the fetcher needs. Cookies set by PostForm
// must be replayed by Get.
type Session interface {
	PostForm(ctx context.Context, target string, form url.Values) (*httpclient.HTTPResponse, error)
	Get(ctx context.Context, target string, maxBytes int64) (*httpclient.HTTPResponse, error)
}

// PageFetcher unlocks the password protected page and downloads its markup.
type PageFetcher struct {
	session     Session
	loginURL    *url.URL
	pageURL     *url.URL
	password    string
	maxPageSize int64
	logger      zerolog.Logger
}

// NewPageFetcher resolves the login and page URLs from the site config.
func NewPageFetcher(session Session, site config.SiteConfig, httpCfg config.HTTPConfig, logger zerolog.Logger) (*PageFetcher, error) {
	if session == nil {
		return nil, errors.New("fetcher: session is required")
	}
	pageURL, err := site.ResolvePageURL()
	if err != nil {
		return nil, err
	}
	loginURL, err := site.ResolveLoginURL()
	if err != nil {
		return nil, err
	}

	return &PageFetcher{
		session:     session,
		loginURL:    loginURL,
		pageURL:     pageURL,
		password:    site.PagePassword,
		maxPageSize: httpCfg.MaxPageSizeBytes,
		logger:      logger.With().Str("module", "PageFetcher").Logger(),
	}, nil
}

// PageURL returns the absolute page URL, used as the base for relative links.
func (f *PageFetcher) PageURL() *url.URL {
	u := *f.pageURL
	return &u
}

// Authenticate submits the page password. Any 2xx or 3xx answer is accepted;
// the redirect is not followed, only its cookies are kept.
func (f *PageFetcher) Authenticate(ctx context.Context) error {
	form := url.Values{}
	form.Set("post_password", f.password)
	form.Set("redirect_to", f.pageURL.String())

	resp, err := f.session.PostForm(ctx, f.loginURL.String(), form)
	if err != nil {
		return errors.Join(errorwrapper.ErrAuthenticationFailed, err)
	}
	if !resp.IsSuccessOrRedirect() {
		return errors.Join(
			errorwrapper.ErrAuthenticationFailed,
			errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "login rejected", f.loginURL.String()),
		)
	}

	f.logger.Debug().Int("status_code", resp.StatusCode).Msg("Page password accepted")
	return nil
}

// FetchPage downloads the page markup. Non-2xx answers are errors.
func (f *PageFetcher) FetchPage(ctx context.Context) (string, error) {
	target := f.pageURL.String()
	resp, err := f.session.Get(ctx, target, f.maxPageSize)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to fetch page")
	}
	if !resp.IsSuccess() {
		return "", errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "unexpected page status", target)
	}
	if resp.Truncated {
		f.logger.Warn().Int64("max_bytes", f.maxPageSize).Msg("Page body truncated")
	}

	f.logger.Debug().Int("size", len(resp.Body)).Str("final_url", resp.FinalURL).Msg("Page fetched")
	return string(resp.Body), nil
}
