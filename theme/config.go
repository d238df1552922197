package theme

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the site-wide presentation configuration. It is loaded once at startup and never mutated afterwards.
type Config struct {
	Logo               string `mapstructure:"logo"                 validate:"required"`
	Project            Link   `mapstructure:"project"`
	Chat               Link   `mapstructure:"chat"`
	DocsRepositoryBase string `mapstructure:"docs_repository_base" validate:"omitempty,http_url"`
	Footer             Footer `mapstructure:"footer"`
	Head               Head   `mapstructure:"head"`
}

type Link struct {
	Link string `mapstructure:"link" validate:"omitempty,http_url"`
}

type Footer struct {
	Text           string     `mapstructure:"text"`
	TranslatedFrom Attributed `mapstructure:"translated_from"`
}

type Attributed struct {
	Title string `mapstructure:"title" validate:"required_with=Link"`
	Link  string `mapstructure:"link"  validate:"omitempty,http_url"`
}

type Head struct {
	SiteURL      string `mapstructure:"site_url"      validate:"required,http_url"`
	TwitterSite  string `mapstructure:"twitter_site"  validate:"omitempty,startswith=@"`
	DefaultTitle string `mapstructure:"default_title" validate:"required"`
	AppTitle     string `mapstructure:"app_title"`
	ImagePath    string `mapstructure:"image_path"    validate:"omitempty,startswith=/"`
}

// Default is the configuration of the Reading React site.
func Default() Config {
	return Config{
		Logo:               "Reading React",
		Project:            Link{Link: "https://github.com/zmzlois/reading-react"},
		Chat:               Link{Link: "https://discord.gg/CPWTVStGZQ"},
		DocsRepositoryBase: "https://github.com/zmzlois/reading-react",
		Footer: Footer{
			Text: "Reading React - zmzlois",
			TranslatedFrom: Attributed{
				Title: "Analysing React Source Code",
				Link:  "https://react-book-new.vercel.app/",
			},
		},
		Head: Head{
			SiteURL:      "https://reading-react.vercel.app",
			TwitterSite:  "@zmzlois",
			DefaultTitle: "Reading React",
			AppTitle:     "Reading React",
			ImagePath:    "/api/og-image",
		},
	}
}

// Load reads the "theme" section of v over the defaults and validates the result.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()

	if v != nil && v.IsSet("theme") {
		if err := v.UnmarshalKey("theme", &cfg); err != nil {
			return Config{}, fmt.Errorf("could not decode theme config: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
