package theme

import (
	"strings"

	"github.com/zmzlois/readingreact/model"
)

// MetaTag is one <meta> element. Exactly one of Property and Name is set.
type MetaTag struct {
	Property string
	Name     string
	Content  string
}

// Env looks up deployment environment values, e.g. os.Getenv.
type Env func(key string) string

// PageURL is the canonical URL of a page; non-default locales are prefixed to the path.
func PageURL(cfg Config, page model.PageContext) string {
	base := strings.TrimRight(cfg.Head.SiteURL, "/")

	if page.Locale == "" || page.Locale == page.DefaultLocale {
		return base + page.Path
	}

	return base + "/" + page.Locale + page.Path
}

// ImageURL points at the social preview image, on the deployment host when VERCEL_URL is known.
func ImageURL(cfg Config, env Env) string {
	host := ""
	if env != nil {
		host = env("VERCEL_URL")
	}

	if host == "" {
		return cfg.Head.ImagePath
	}

	return "https://" + host + cfg.Head.ImagePath
}

// HeadMeta returns the link-preview tags for a page, each property once.
func HeadMeta(cfg Config, page model.PageContext, env Env) []MetaTag {
	title := page.Title
	if title == "" {
		title = cfg.Head.DefaultTitle
	}

	tags := []MetaTag{
		{Property: "og:url", Content: PageURL(cfg, page)},
	}

	if cfg.Head.TwitterSite != "" {
		tags = append(tags, MetaTag{Name: "twitter:site", Content: cfg.Head.TwitterSite})
	}

	tags = append(tags,
		MetaTag{Property: "og:title", Content: title},
		MetaTag{Property: "og:description", Content: title},
	)

	if cfg.Head.ImagePath != "" {
		tags = append(tags, MetaTag{Property: "og:image", Content: ImageURL(cfg, env)})
	}

	if cfg.Head.AppTitle != "" {
		tags = append(tags, MetaTag{Name: "apple-mobile-web-app-title", Content: cfg.Head.AppTitle})
	}

	return tags
}

// EditLink is the repository URL for a page source, or "" without a repository base.
func EditLink(cfg Config, sourcePath string) string {
	if cfg.DocsRepositoryBase == "" {
		return ""
	}

	return strings.TrimRight(cfg.DocsRepositoryBase, "/") + "/blob/main/" + strings.TrimLeft(sourcePath, "/")
}
