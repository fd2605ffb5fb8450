// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package feed decodes OpenSearch result feeds (Atom, with an RSS fallback)
into a generic node tree plus pagination metadata, and provides the entry
projection helpers used to list and filter the fields of decoded entries.

Decode never returns an error: transport-level failures are classified by
status code before the body reaches this package, and anything unexpected in
the body itself (protocol faults, unparseable XML) is recorded in
Result.Diagnostics so a search call can degrade instead of aborting.
*/
package feed
