// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package opensearch provides the high-level OpenSearch client. A client is
bound to one endpoint at construction: it resolves the description document,
extracts the search URL template, and builds the parameter catalog once.
Every Search call then substitutes caller-supplied values into the pristine
template, executes the query, and decodes the result feed.

# Usage

	client, err := opensearch.New(ctx, opensearch.Config{
	    SearchEndpoint: "https://catalog.example.com/search",
	})
	if err != nil {
	    return err
	}

	entries := client.Search(ctx,
	    opensearch.WithParam("{searchTerms}", "sentinel1"),
	)
	for _, msg := range client.Errors() {
	    log.Println(msg)
	}

Search never returns an error: transport and decoding failures degrade to an
unchanged entry list, with diagnostics accumulating in Errors. Only
construction can fail, and only for configuration mistakes.

A Client is not safe for concurrent use: the search URL and the accumulated
entry and error collections are mutated in place, so callers must serialize
calls to the same instance.
*/
package opensearch
