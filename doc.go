// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package goopensearch implements a client for the OpenSearch 1.1 description
and search protocol: discovery of a provider's description document, URL
template parsing and substitution, query execution, and decoding of Atom/RSS
result feeds into a generic node tree with pagination metadata.

# Overview

go-opensearch targets the federated search catalogs common in the
earth-observation world: a provider publishes a description document
enumerating one or more search URL templates with named placeholders
({searchTerms}, {eop:instrument?}, ...), and clients substitute values into
a template to query. This library resolves the template once at client
construction and then builds, executes, and decodes searches against it.

# Specifications Implemented

  - OpenSearch 1.1 Draft 6 (description documents, URL template syntax,
    autodiscovery): https://github.com/dewitt/opensearch
  - OpenSearch Parameter extension 1.0 (typed parameters, options)
  - OGC OpenSearch extensions as found in earth-observation catalogs
    (filter fragments, OWS exception reports)

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-opensearch/pkg/opensearch  - High-level client API
	github.com/sirosfoundation/go-opensearch/pkg/description - Description document resolution
	github.com/sirosfoundation/go-opensearch/pkg/urltemplate - Template parsing and substitution
	github.com/sirosfoundation/go-opensearch/pkg/feed        - Result feed decoding and projection
	github.com/sirosfoundation/go-opensearch/pkg/transport   - HTTPS GET transport

# Quick Start

To query an endpoint:

	import (
	    "github.com/sirosfoundation/go-opensearch/pkg/feed"
	    "github.com/sirosfoundation/go-opensearch/pkg/opensearch"
	)

	client, err := opensearch.New(ctx, opensearch.Config{
	    DescriptionURL: "https://catalog.example.com/description.xml",
	    ResultType:     opensearch.ResultTypeResults,
	})
	if err != nil {
	    log.Fatal(err)
	}

	entries := client.Search(ctx,
	    opensearch.WithParam("{searchTerms}", "sentinel1"),
	)

	filtered := client.FilterEntries([]feed.Field{
	    {Tag: "{http://www.w3.org/2005/Atom}id", Name: "id"},
	    {Tag: "{http://www.w3.org/2005/Atom}link", Name: "link", Rel: "enclosure"},
	})

Search degrades rather than failing: transport errors and protocol faults
accumulate as messages in client.Errors() while the entry list stays valid.
*/
package goopensearch
