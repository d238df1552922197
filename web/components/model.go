package components

import (
	"github.com/zmzlois/readingreact/model"
	"github.com/zmzlois/readingreact/theme"
)

type PageType int

const (
	PageTypeIndex PageType = iota
	PageTypeGrid
	PageTypeGuides
)

// RenderContext is everything the page chrome needs besides the body.
type RenderContext struct {
	Theme    theme.Config
	Page     model.PageContext
	Meta     []theme.MetaTag
	EditLink string
	Type     PageType
}
