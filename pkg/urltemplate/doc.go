// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package urltemplate implements the OpenSearch URL template engine: parsing the
bracketed placeholders of a search URL template into a parameter catalog, and
substituting caller-supplied values to produce a concrete query URL.

A template looks like:

	https://catalog.example.com/search?q={searchTerms}&start={startIndex?}&instrument={eop:instrument?}

Each {name} or {ns:name?} token is a placeholder; the trailing ? marks it
optional. BuildCatalog pairs every placeholder with the Parameter metadata
declared in the description document (type, constraints, enumerated options).
BuildURL replaces placeholders with supplied values and strips unset optional
placeholders together with their query separators, so the result is a
syntactically valid URL with no residual placeholder syntax.

See https://github.com/dewitt/opensearch/blob/master/opensearch-1-1-draft-6.md
for the template syntax and the parameters extension.
*/
package urltemplate
