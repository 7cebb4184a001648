package config

import (
	"net/url"
	"strings"

	"github.com/aleister1102/pdfwatch/internal/common/errorwrapper"
)

// SiteConfig describes the password protected page being watched.
type SiteConfig struct {
	BaseURL      string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"required,url"`
	PageURL      string `json:"page_url,omitempty" yaml:"page_url,omitempty" validate:"required"`
	PagePassword string `json:"page_password,omitempty" yaml:"page_password,omitempty" validate:"required"`
	LoginPath    string `json:"login_path,omitempty" yaml:"login_path,omitempty" validate:"required"`
}

// NewDefaultSiteConfig creates default site configuration
func NewDefaultSiteConfig() SiteConfig {
	return SiteConfig{
		LoginPath: DefaultLoginPath,
	}
}

// ResolvePageURL returns the absolute URL of the protected page. PageURL may
// be absolute or a path relative to BaseURL.
func (sc SiteConfig) ResolvePageURL() (*url.URL, error) {
	return sc.resolve(sc.PageURL, "page_url")
}

// ResolveLoginURL returns the absolute URL of the password form endpoint.
func (sc SiteConfig) ResolveLoginURL() (*url.URL, error) {
	return sc.resolve(sc.LoginPath, "login_path")
}

func (sc SiteConfig) resolve(ref, field string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSpace(sc.BaseURL))
	if err != nil || !base.IsAbs() {
		return nil, errorwrapper.NewValidationError("base_url", sc.BaseURL, "must be an absolute URL")
	}
	target, err := base.Parse(strings.TrimSpace(ref))
	if err != nil {
		return nil, errorwrapper.NewValidationError(field, ref, "cannot be resolved against base_url")
	}
	return target, nil
}
