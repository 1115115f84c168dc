// Package destination turns a query that matched nothing into something the
// caller can navigate to: the address itself when the query looks like a URL,
// otherwise a web search for it.
package destination

import (
	"net/url"
	"strings"

	"github.com/gcbaptista/go-tab-search/config"
)

// Builder builds navigation destinations using a search URL template.
type Builder struct {
	template string
}

// NewBuilder creates a builder. An empty template uses config.DefaultSearchURLTemplate.
func NewBuilder(template string) *Builder {
	if template == "" {
		template = config.DefaultSearchURLTemplate
	}
	return &Builder{template: template}
}

// IsURL reports whether text looks like an address rather than search words.
// Text without a scheme is tried with http:// in front; it must then parse
// with a host, and the text must contain a dot or already start with http.
func IsURL(text string) bool {
	candidate := text
	if !strings.HasPrefix(text, "http") {
		candidate = "http://" + text
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	return strings.Contains(text, ".") || strings.HasPrefix(text, "http")
}

// Build returns the destination for query.
func (b *Builder) Build(query string) string {
	query = strings.TrimSpace(query)
	if IsURL(query) {
		if strings.HasPrefix(query, "http") {
			return query
		}
		return "https://" + query
	}
	return strings.Replace(b.template, "%s", encodeQueryComponent(query), 1)
}

// encodeQueryComponent percent-encodes s, spaces included, so it can sit
// anywhere inside a query string.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

var defaultBuilder = NewBuilder(config.DefaultSearchURLTemplate)

// BuildSearchDestination builds a destination with the default search template.
func BuildSearchDestination(query string) string {
	return defaultBuilder.Build(query)
}
