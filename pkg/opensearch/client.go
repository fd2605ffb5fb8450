package opensearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-opensearch/pkg/description"
	"github.com/sirosfoundation/go-opensearch/pkg/feed"
	"github.com/sirosfoundation/go-opensearch/pkg/transport"
	"github.com/sirosfoundation/go-opensearch/pkg/urltemplate"
)

// ResultType selects which search flavour of a description document the
// client binds to.
type ResultType string

// Result types
const (
	ResultTypeCollection ResultType = "collection"
	ResultTypeResults    ResultType = "results"
)

// Configuration errors
var (
	// ErrNoEndpoint is returned when neither a search endpoint nor a
	// description URL is configured
	ErrNoEndpoint = errors.New(`neither "searchEndpoint" nor "descriptionUrl" specified`)
	// ErrInvalidResultType is returned for a result type outside
	// {collection, results}
	ErrInvalidResultType = errors.New(`neither "collection" nor "results" result type specified`)
)

// Config holds configuration for the client
type Config struct {
	// DescriptionURL is the URL of the OpenSearch description document.
	DescriptionURL string

	// SearchEndpoint is the search endpoint to autodiscover the
	// description document from, when DescriptionURL is not known.
	SearchEndpoint string

	// ResultType selects the search flavour. Defaults to collection.
	ResultType ResultType

	// Transport is the GET transport to use (optional)
	Transport *transport.Client

	// Logger receives client diagnostics (optional)
	Logger *slog.Logger
}

// Client inquires one OpenSearch endpoint. The endpoint configuration,
// template, and parameter catalog are immutable after construction; the
// search URL, decoded entries, pagination, and error list are rebuilt or
// grown per call. Not safe for concurrent use.
type Client struct {
	transport *transport.Client
	resolver  *description.Resolver
	logger    *slog.Logger

	searchEndpoint string
	descriptionURL string
	resultType     ResultType

	template string
	catalog  *urltemplate.Catalog

	searchURL       string
	pagination      feed.Pagination
	rawEntries      []feed.Entry
	filteredEntries [][]feed.Node
	errors          []string
}

// New validates the configuration and binds a client to its endpoint,
// resolving the description document and building the parameter catalog.
//
// Only configuration mistakes are fatal. Discovery and resolution failures
// are logged and leave the client with an empty template, so a later Search
// records a transport error instead of construction aborting.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SearchEndpoint == "" && cfg.DescriptionURL == "" {
		return nil, ErrNoEndpoint
	}
	resultType := cfg.ResultType
	if resultType == "" {
		resultType = ResultTypeCollection
	}
	if resultType != ResultTypeCollection && resultType != ResultTypeResults {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResultType, string(cfg.ResultType))
	}

	tr := cfg.Transport
	if tr == nil {
		tr = transport.NewClient(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		transport:      tr,
		resolver:       description.NewResolverWithConfig(description.Config{Transport: tr, Logger: logger}),
		logger:         logger,
		searchEndpoint: cfg.SearchEndpoint,
		descriptionURL: cfg.DescriptionURL,
		resultType:     resultType,
	}

	if c.searchEndpoint != "" && c.descriptionURL == "" {
		url, err := c.resolver.DiscoverDescriptionURL(ctx, c.searchEndpoint)
		switch {
		case errors.Is(err, description.ErrNotOpenSearch):
			logger.Warn("not a valid OpenSearch endpoint", "endpoint", c.searchEndpoint)
		case err != nil:
			logger.Error("description autodiscovery failed",
				"endpoint", c.searchEndpoint, "error", err)
		default:
			c.descriptionURL = url
		}
	}

	tmpl, err := c.resolver.ResolveTemplate(ctx, c.descriptionURL, string(c.resultType))
	if err != nil {
		logger.Error("search template resolution failed",
			"descriptionUrl", c.descriptionURL, "error", err)
		c.catalog = urltemplate.BuildCatalog("", nil)
	} else {
		c.template = tmpl.URLTemplate
		c.searchURL = tmpl.URLTemplate
		c.catalog = urltemplate.BuildCatalog(tmpl.URLTemplate, tmpl.Parameters)
	}

	logger.Debug("OpenSearch client ready",
		"searchEndpoint", c.searchEndpoint,
		"descriptionUrl", c.descriptionURL,
		"template", c.template,
		"paramNames", c.catalog.ParamNames(),
	)

	return c, nil
}

// Search substitutes the supplied parameter values into the URL template,
// executes the query, and decodes the result feed. On success the raw
// entries and pagination are replaced; on any failure they are left
// untouched and diagnostics accumulate in Errors. The current raw entries
// are returned either way.
func (c *Client) Search(ctx context.Context, opts ...SearchOption) []feed.Entry {
	o := searchOptions{forceHTTPS: true}
	for _, opt := range opts {
		opt(&o)
	}

	searchID := uuid.NewString()

	values := make(map[string]string, len(o.params))
	for tag, pv := range o.params {
		values[tag] = pv.Value
	}
	c.searchURL = urltemplate.BuildURL(c.template, c.catalog, values, o.forceHTTPS)
	c.logger.Debug("searching", "searchId", searchID, "url", c.searchURL)

	var reqOpts []transport.RequestOption
	if o.hasAuth {
		reqOpts = append(reqOpts, transport.WithBasicAuth(o.username, o.password))
	}

	resp, err := c.transport.Get(ctx, c.searchURL, reqOpts...)
	if err != nil {
		msg := fmt.Sprintf("search request failed: %v", err)
		c.errors = append(c.errors, msg)
		c.logger.Error("search request failed", "searchId", searchID, "error", err)
		return c.rawEntries
	}

	result := feed.Decode(resp.StatusCode, resp.Reason(), resp.Body)
	c.errors = append(c.errors, result.Diagnostics...)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("search returned error status",
			"searchId", searchID, "status", resp.StatusCode)
		return c.rawEntries
	}

	c.pagination = result.Pagination
	c.rawEntries = result.Entries
	c.logger.Debug("search complete",
		"searchId", searchID,
		"entries", len(result.Entries),
		"totalResults", result.Pagination.TotalResults,
	)

	return c.rawEntries
}

// AvailableFields lists the fields available on each entry, derived from the
// first entry of the last successful search.
func (c *Client) AvailableFields() []feed.Field {
	return feed.AvailableFields(c.rawEntries)
}

// FilterEntries projects the raw entries down to the given fields and
// appends one filtered list per entry to the accumulated collection, which
// is returned in full. Note that repeated calls keep appending: filtering
// twice yields every entry twice. Callers wanting a fresh projection should
// use feed.Filter directly.
func (c *Client) FilterEntries(fields []feed.Field) [][]feed.Node {
	c.filteredEntries = append(c.filteredEntries, feed.Filter(c.rawEntries, fields)...)
	return c.filteredEntries
}

// RawEntries returns the entries decoded by the last successful search.
func (c *Client) RawEntries() []feed.Entry {
	return c.rawEntries
}

// FilteredEntries returns the accumulated FilterEntries results.
func (c *Client) FilteredEntries() [][]feed.Node {
	return c.filteredEntries
}

// Pagination returns the pagination metadata of the last successful search.
func (c *Client) Pagination() feed.Pagination {
	return c.pagination
}

// Errors returns the accumulated error messages of all calls so far.
func (c *Client) Errors() []string {
	return c.errors
}

// SearchURL returns the concrete query URL built by the last Search call,
// or the raw template before the first call.
func (c *Client) SearchURL() string {
	return c.searchURL
}

// Template returns the raw search URL template, "" when resolution failed.
func (c *Client) Template() string {
	return c.template
}

// DescriptionURL returns the description-document URL the client resolved
// or was configured with.
func (c *Client) DescriptionURL() string {
	return c.descriptionURL
}

// Catalog returns the parameter catalog built from the template.
func (c *Client) Catalog() *urltemplate.Catalog {
	return c.catalog
}

// ParamNames returns the mapping from protocol parameter name to internal
// catalog key.
func (c *Client) ParamNames() map[string]string {
	return c.catalog.ParamNames()
}
