package urltemplate

import (
	"regexp"
	"strings"
)

var (
	// residualPlaceholderPattern sweeps bracketed placeholders that survived
	// the targeted per-descriptor removal, together with a preceding
	// separator and query key ("?key={ns:key?}", "&key={ns:key}").
	residualPlaceholderPattern = regexp.MustCompile(`[?&/]\w*=*\{\w+:*\w+\?*\}*`)

	// ogcFilterPattern sweeps AND-joined OGC filter fragments whose
	// right-hand side is an unreplaced placeholder, a placeholder range
	// ("key:[{a} TO {b}]"), or a quoted function call containing a
	// placeholder. Query servers reject stray filter fragments, so these
	// must not survive in the final URL.
	ogcFilterPattern = regexp.MustCompile(`((\s?AND\s)\w*:*\{\w+:*\w+\??\}*)|((\s?AND\s)\w+:\[\{\w+:\w+\??\}\sTO\s\{\w+:\w+\??\}\])|((\s?AND\s)?\w+:(%22|")\w+\(\{\w+:*\w+\??\}*\)(%22|"))`)
)

// BuildURL substitutes the supplied values into the template and strips every
// unset placeholder, returning a concrete query URL. values is keyed by the
// placeholder's FullTag; an absent or empty value removes the placeholder and
// its query separator instead of substituting.
//
// BuildURL never fails: a malformed template yields a URL that the transport
// step will reject.
func BuildURL(template string, catalog *Catalog, values map[string]string, forceHTTPS bool) string {
	u := template
	if forceHTTPS && strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}

	if catalog != nil {
		for _, d := range catalog.descriptors {
			if v := values[d.FullTag]; v != "" {
				u = strings.ReplaceAll(u, d.FullTag, v)
			} else {
				removal := regexp.MustCompile(`[?&]\w+=` + regexp.QuoteMeta(d.FullTag))
				u = removal.ReplaceAllString(u, "")
			}
		}
	}

	return cleanupURL(u)
}

// cleanupURL is the syntactic cleanup pass: it repairs the query-string
// separator when the first parameter was removed, then sweeps residual
// placeholder forms and dangling OGC filter fragments.
func cleanupURL(u string) string {
	ampIdx := strings.Index(u, "&")
	qmIdx := strings.Index(u, "?")
	if qmIdx == -1 || qmIdx > ampIdx {
		u = strings.Replace(u, "&", "?", 1)
	}

	u = residualPlaceholderPattern.ReplaceAllString(u, "")
	u = ogcFilterPattern.ReplaceAllString(u, "")
	return u
}
