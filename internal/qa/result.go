package qa

import (
	"net/url"
	"strings"

	"github.com/at-ishikawa/samarth/internal/inference"
)

// Source is a cited web page. Description holds the page URI.
type Source struct {
	SourceName  string `json:"sourceName" yaml:"sourceName"`
	Description string `json:"description" yaml:"description"`
}

type Result struct {
	Analysis      string   `json:"analysis" yaml:"analysis"`
	SummaryPoints []string `json:"summaryPoints" yaml:"summaryPoints"`
	Sources       []Source `json:"sources" yaml:"sources"`
}

// sourceIndex keeps sources unique by URI in first-seen order
type sourceIndex struct {
	order []string
	byURI map[string]Source
}

func newSourceIndex() *sourceIndex {
	return &sourceIndex{byURI: make(map[string]Source)}
}

// add keeps the first source registered for a URI
func (index *sourceIndex) add(s Source) {
	if _, ok := index.byURI[s.Description]; ok {
		return
	}
	index.byURI[s.Description] = s
	index.order = append(index.order, s.Description)
}

func (index *sourceIndex) sources() []Source {
	sources := make([]Source, 0, len(index.order))
	for _, uri := range index.order {
		sources = append(sources, index.byURI[uri])
	}
	return sources
}

// extractSources maps web grounding chunks into sources, deduplicated by URI
func extractSources(chunks []inference.GroundingChunk) []Source {
	index := newSourceIndex()
	for _, chunk := range chunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		index.add(Source{
			SourceName:  sourceName(chunk.Web),
			Description: chunk.Web.URI,
		})
	}
	return index.sources()
}

func sourceName(web *inference.WebChunk) string {
	if title := strings.TrimSpace(web.Title); title != "" {
		return title
	}
	if parsed, err := url.Parse(web.URI); err == nil && parsed.Hostname() != "" {
		return parsed.Hostname()
	}
	return web.URI
}
