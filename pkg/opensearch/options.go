package opensearch

// ParamValue is a caller-supplied value for one template placeholder.
type ParamValue struct {
	Value string
}

type searchOptions struct {
	forceHTTPS bool
	params     map[string]ParamValue
	username   string
	password   string
	hasAuth    bool
}

// SearchOption customizes a single Search call.
type SearchOption func(*searchOptions)

// WithParams supplies values for template placeholders, keyed by the
// placeholder's full tag (e.g. "{eop:instrument?}"). Placeholders without a
// value, or with an empty one, are stripped from the query URL.
func WithParams(params map[string]ParamValue) SearchOption {
	return func(o *searchOptions) {
		if o.params == nil {
			o.params = make(map[string]ParamValue, len(params))
		}
		for tag, v := range params {
			o.params[tag] = v
		}
	}
}

// WithParam supplies a value for one template placeholder by full tag.
func WithParam(fullTag, value string) SearchOption {
	return func(o *searchOptions) {
		if o.params == nil {
			o.params = make(map[string]ParamValue, 1)
		}
		o.params[fullTag] = ParamValue{Value: value}
	}
}

// WithBasicAuth sends the credential pair with the search request.
func WithBasicAuth(username, password string) SearchOption {
	return func(o *searchOptions) {
		o.username = username
		o.password = password
		o.hasAuth = true
	}
}

// WithoutHTTPSUpgrade disables the default rewrite of http:// templates to
// https://.
func WithoutHTTPSUpgrade() SearchOption {
	return func(o *searchOptions) {
		o.forceHTTPS = false
	}
}
