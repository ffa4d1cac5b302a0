package layout

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/wikijump/parameter"
)

// Friction holds the platform friction coefficients
type Friction struct {
	Default  float64 `toml:"default"`
	Sticky   float64 `toml:"sticky"`
	Slippery float64 `toml:"slippery"`
	Link     float64 `toml:"link"`
}

// Config controls page geometry, spacing and platform classification
type Config struct {
	PageWidth      float64 `toml:"page_width"`
	ViewportHeight float64 `toml:"viewport_height"`

	HSpace      float64 `toml:"hspace"`
	VSpace      float64 `toml:"vspace"`
	ParSpace    float64 `toml:"parspace"`
	Indent      float64 `toml:"indent"`
	LinePadding float64 `toml:"line_padding"`

	TitleRuleThickness float64 `toml:"title_rule_thickness"`
	RuleThickness      float64 `toml:"rule_thickness"`
	Bullet             string  `toml:"bullet"`

	TerminalHeadings []string `toml:"terminal_headings"`

	Friction      Friction `toml:"friction"`
	StickyWords   []string `toml:"sticky_words"`
	SlipperyWords []string `toml:"slippery_words"`

	TextColor     uint32 `toml:"text_color"`
	LinkColor     uint32 `toml:"link_color"`
	SubtitleColor uint32 `toml:"subtitle_color"`
}

// DefaultConfig returns the stock page geometry
func DefaultConfig() Config {
	return Config{
		PageWidth:          parameter.PageWidth,
		ViewportHeight:     parameter.ViewportHeight,
		HSpace:             parameter.HSpace,
		VSpace:             parameter.VSpace,
		ParSpace:           parameter.ParSpace,
		Indent:             parameter.Indent,
		LinePadding:        parameter.LinePadding,
		TitleRuleThickness: parameter.TitleRuleThickness,
		RuleThickness:      parameter.RuleThickness,
		Bullet:             parameter.Bullet,
		TerminalHeadings:   append([]string(nil), parameter.TerminalHeadings...),
		Friction: Friction{
			Default:  parameter.FrictionDefault,
			Sticky:   parameter.FrictionSticky,
			Slippery: parameter.FrictionSlippery,
			Link:     parameter.FrictionLink,
		},
		StickyWords:   append([]string(nil), parameter.StickyWords...),
		SlipperyWords: append([]string(nil), parameter.SlipperyWords...),
		TextColor:     parameter.ColorText,
		LinkColor:     parameter.ColorLink,
		SubtitleColor: parameter.ColorSubtitle,
	}
}

// Validate rejects geometry that cannot produce a page
func (c Config) Validate() error {
	var errs []error
	if c.PageWidth <= 0 {
		errs = append(errs, fmt.Errorf("page_width must be positive, got %v", c.PageWidth))
	}
	if c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport_height must be positive, got %v", c.ViewportHeight))
	}
	if c.HSpace < 0 || c.VSpace < 0 || c.ParSpace < 0 || c.Indent < 0 {
		errs = append(errs, errors.New("spacing values must not be negative"))
	}
	if c.Indent >= c.PageWidth {
		errs = append(errs, fmt.Errorf("indent %v must be narrower than the page", c.Indent))
	}
	for name, f := range map[string]float64{
		"default":  c.Friction.Default,
		"sticky":   c.Friction.Sticky,
		"slippery": c.Friction.Slippery,
		"link":     c.Friction.Link,
	} {
		if f < 0 || f > 1 {
			errs = append(errs, fmt.Errorf("friction.%s must be within [0,1], got %v", name, f))
		}
	}
	return errors.Join(errs...)
}
