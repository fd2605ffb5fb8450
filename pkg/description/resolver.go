package description

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/beevik/etree"
	"github.com/elnormous/contenttype"

	"github.com/sirosfoundation/go-opensearch/internal/xmltree"
	"github.com/sirosfoundation/go-opensearch/pkg/transport"
	"github.com/sirosfoundation/go-opensearch/pkg/urltemplate"
)

// Resolution errors
var (
	// ErrUnexpectedStatus is returned when a fetch yields a non-200 status
	ErrUnexpectedStatus = errors.New("endpoint returned unexpected status")
	// ErrNotOpenSearch is returned when an endpoint does not advertise an
	// OpenSearch description document
	ErrNotOpenSearch = errors.New("endpoint does not advertise an OpenSearch description")
	// ErrNoTemplate is returned when no usable URL template can be selected
	// from a description document
	ErrNoTemplate = errors.New("description document has no usable URL template")
)

// Media types used by description resolution
const (
	MediaTypeAtom        = "application/atom+xml"
	MediaTypeRSS         = "application/rss+xml"
	MediaTypeHTML        = "text/html"
	MediaTypeDescription = "application/opensearchdescription+xml"
)

// Protocol namespaces
const (
	nsAtom       = "http://www.w3.org/2005/Atom"
	nsOpenSearch = "http://a9.com/-/spec/opensearch/1.1/"
	nsParameters = "http://a9.com/-/spec/opensearch/extensions/parameters/1.0/"
)

var atomMediaType = contenttype.NewMediaType(MediaTypeAtom)
var descriptionMediaType = contenttype.NewMediaType(MediaTypeDescription)

// Config contains configuration for the resolver
type Config struct {
	// Transport is the GET transport to use (optional)
	Transport *transport.Client

	// Logger receives resolution diagnostics (optional)
	Logger *slog.Logger
}

// Resolver fetches and interprets OpenSearch description documents.
type Resolver struct {
	transport *transport.Client
	logger    *slog.Logger
}

// NewResolver creates a resolver with default transport and logging.
func NewResolver() *Resolver {
	return NewResolverWithConfig(Config{})
}

// NewResolverWithConfig creates a resolver with custom configuration.
func NewResolverWithConfig(config Config) *Resolver {
	tr := config.Transport
	if tr == nil {
		tr = transport.NewClient(nil)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{transport: tr, logger: logger}
}

// Template is a resolved search URL template together with the parameter
// metadata declared under the chosen Url element.
type Template struct {
	URLTemplate string
	Parameters  []urltemplate.TemplateParameter
}

// DiscoverDescriptionURL fetches the search endpoint and returns the
// description-document URL it advertises via the Atom autodiscovery link.
// Returns ErrNotOpenSearch when the endpoint responds but advertises none.
func (r *Resolver) DiscoverDescriptionURL(ctx context.Context, endpoint string) (string, error) {
	resp, err := r.transport.Get(ctx, endpoint, transport.WithHeader("Accept", MediaTypeAtom))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, resp.StatusCode, resp.Reason())
	}

	root, err := xmltree.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse endpoint response: %w", err)
	}

	link := xmltree.FindChild(root, nsAtom, "link", map[string]string{
		"rel":  "search",
		"type": MediaTypeDescription,
	})
	if link == nil {
		return "", ErrNotOpenSearch
	}
	href := link.SelectAttrValue("href", "")
	if href == "" {
		return "", ErrNotOpenSearch
	}

	r.logger.Debug("discovered description document", "endpoint", endpoint, "descriptionUrl", href)
	return href, nil
}

// ResolveTemplate fetches the description document and selects the search
// URL template for the given result type ("collection" or "results"). When
// the content-negotiated fetch fails with a non-200 status, one plain GET is
// retried before giving up.
func (r *Resolver) ResolveTemplate(ctx context.Context, descriptionURL, resultType string) (*Template, error) {
	resp, err := r.transport.Get(ctx, descriptionURL, transport.WithHeader("Accept", MediaTypeAtom))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp, err = r.transport.Get(ctx, descriptionURL)
		if err != nil {
			return nil, err
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d - %s", ErrUnexpectedStatus, resp.StatusCode, resp.Reason())
	}

	if mt := resp.MediaType(); !mt.Matches(atomMediaType) && !mt.Matches(descriptionMediaType) {
		r.logger.Debug("description served with unexpected media type",
			"descriptionUrl", descriptionURL, "contentType", mt.Type+"/"+mt.Subtype)
	}

	root, err := xmltree.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description document: %w", err)
	}

	urlEl := selectURLElement(root, resultType)
	if urlEl == nil {
		return nil, ErrNoTemplate
	}
	tmpl := urlEl.SelectAttrValue("template", "")
	if tmpl == "" {
		return nil, fmt.Errorf("%w: missing template attribute", ErrNoTemplate)
	}

	return &Template{
		URLTemplate: tmpl,
		Parameters:  parseParameters(urlEl),
	}, nil
}

// selectURLElement picks the Url element to use via an ordered fallback:
// rel+Atom, any Atom, RSS, HTML. A candidate without parameter children
// falls through to the next, except the final HTML one, which is accepted
// bare (some catalogs only declare parameters on their HTML search form).
func selectURLElement(root *etree.Element, resultType string) *etree.Element {
	find := func(attrs map[string]string) *etree.Element {
		return xmltree.FindChild(root, nsOpenSearch, "Url", attrs)
	}

	el := find(map[string]string{"rel": resultType, "type": MediaTypeAtom})
	if el == nil || len(el.ChildElements()) == 0 {
		el = find(map[string]string{"type": MediaTypeAtom})
	}
	if el == nil || len(el.ChildElements()) == 0 {
		el = find(map[string]string{"type": MediaTypeRSS})
	}
	if el == nil || len(el.ChildElements()) == 0 {
		el = find(map[string]string{"type": MediaTypeHTML})
	}
	return el
}

// parseParameters converts the Url element's children into neutral parameter
// metadata, including Option children from the parameters extension.
func parseParameters(urlEl *etree.Element) []urltemplate.TemplateParameter {
	children := urlEl.ChildElements()
	if len(children) == 0 {
		return nil
	}
	params := make([]urltemplate.TemplateParameter, 0, len(children))
	for _, node := range children {
		p := urltemplate.TemplateParameter{
			Name:         node.SelectAttrValue("name", ""),
			Value:        node.SelectAttrValue("value", ""),
			Title:        node.SelectAttrValue("title", ""),
			Pattern:      node.SelectAttrValue("pattern", ""),
			Minimum:      node.SelectAttrValue("minimum", ""),
			MinInclusive: node.SelectAttrValue("minInclusive", ""),
			MaxInclusive: node.SelectAttrValue("maxInclusive", ""),
		}
		for _, opt := range xmltree.FindChildren(node, nsParameters, "Option") {
			p.Options = append(p.Options, urltemplate.Option{
				Label: opt.SelectAttrValue("label", ""),
				Value: opt.SelectAttrValue("value", ""),
			})
		}
		params = append(params, p)
	}
	return params
}
