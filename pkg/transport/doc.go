// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport implements the blocking HTTP(S) transport used by the
OpenSearch client, with TLS 1.2/1.3 support.

# TLS Configuration

The package recommends TLS 1.3 with fallback to TLS 1.2:

	config := transport.DefaultConfig()
	// MinTLSVersion: TLS 1.2
	// MaxTLSVersion: TLS 1.3

For TLS 1.2, the following cipher suites are recommended:
  - TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384
  - TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256
  - TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384
  - TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256

# Client Usage

Create a client and issue a GET:

	client := transport.NewClient(nil)
	resp, err := client.Get(ctx, "https://catalog.example.com/search",
	    transport.WithHeader("Accept", "application/atom+xml"),
	    transport.WithBasicAuth("user", "secret"),
	)

Get returns the response for every status code; callers classify success and
failure from resp.StatusCode. The OpenSearch decoder needs error bodies to
extract protocol faults, so a non-200 status is not an error at this layer.

# References

  - TLS 1.3 RFC 8446: https://datatracker.ietf.org/doc/html/rfc8446
  - TLS 1.2 RFC 5246: https://datatracker.ietf.org/doc/html/rfc5246
*/
package transport
