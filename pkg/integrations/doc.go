// Package integrations provides HTTP clients for remote genome databases.
//
// # Overview
//
// This package contains low-level API clients for fetching genome data
// from public providers. Each provider has its own subpackage:
//
//   - [ucsc]: UCSC Genome Browser downloads (chromosome sizes, cytobands)
//
// # Client Pattern
//
// Provider clients follow a consistent pattern:
//
//	client := ucsc.NewClient(backend, 7*24*time.Hour)  // cache backend + TTL
//	g, err := client.FetchGenome(ctx, "hg38", false)   // false = use cache
//
// Clients handle:
//   - HTTP requests with retry
//   - Response caching (pluggable backend, configurable TTL)
//   - Provider-specific parsing and normalization
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all
// provider clients, including response caching via [cache.Cache].
//
// # Adding a New Provider
//
// To add support for a new genome data provider:
//
//  1. Create a subpackage: pkg/integrations/<provider>/
//  2. Define response parsing for the provider's formats
//  3. Implement a Client with Fetch methods
//  4. Use [NewClient] for HTTP with caching
//
// [ucsc]: github.com/bio-traven/karyoploteR/pkg/integrations/ucsc
// [cache.Cache]: github.com/bio-traven/karyoploteR/pkg/cache.Cache
package integrations
