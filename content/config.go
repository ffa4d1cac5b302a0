package content

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/lixenwraith/wikijump/parameter"
)

// Config holds fetch settings for the wiki client and the local file root
type Config struct {
	WikiBase  string        `toml:"wiki_base"`
	UserAgent string        `toml:"user_agent"`
	Timeout   time.Duration `toml:"timeout"`
	Subtitle  string        `toml:"subtitle"`

	MaxRetries int           `toml:"max_retries"`
	BaseDelay  time.Duration `toml:"base_delay"`
	MaxDelay   time.Duration `toml:"max_delay"`

	// Root is the directory relative file identifiers resolve against
	Root string `toml:"root"`
}

func DefaultConfig() Config {
	return Config{
		WikiBase:   parameter.WikiBase,
		UserAgent:  parameter.WikiUserAgent,
		Timeout:    parameter.WikiTimeout,
		Subtitle:   parameter.WikiSubtitle,
		MaxRetries: parameter.FetchMaxRetries,
		BaseDelay:  parameter.FetchBaseDelay,
		MaxDelay:   parameter.FetchMaxDelay,
	}
}

func (c Config) Validate() error {
	var errs []error
	if u, err := url.Parse(c.WikiBase); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("wiki base %q is not an absolute URL", c.WikiBase))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %v", c.Timeout))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries))
	}
	if c.BaseDelay <= 0 || c.MaxDelay < c.BaseDelay {
		errs = append(errs, fmt.Errorf("retry delays must satisfy 0 < base <= max, got %v and %v", c.BaseDelay, c.MaxDelay))
	}
	return errors.Join(errs...)
}
