// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package description resolves OpenSearch description documents: discovering
the description URL a search endpoint advertises, fetching the document, and
selecting the search URL template plus its declared parameter metadata.

Resolution follows the OpenSearch 1.1 autodiscovery and description-element
rules. Template selection falls back across result media types (Atom, then
RSS, then HTML) when the requested flavour is absent or carries no parameter
declarations, which is what real-world earth-observation catalogs require.
*/
package description
