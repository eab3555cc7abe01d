// Package ucsc provides a client for UCSC Genome Browser downloads.
//
// The client fetches two artifacts per assembly:
//
//   - chrom.sizes: chromosome names and lengths, used to build a
//     [genome.Genome]
//   - cytoBand.txt.gz: Giemsa banding, used to paint ideograms
//
// Responses are cached through a [cache.Cache] backend so repeated plots
// of the same assembly don't hit the network.
//
// Usage:
//
//	client := ucsc.NewClient(backend, 7*24*time.Hour)
//	g, err := client.FetchGenome(ctx, "danRer11", false)
//	bands, err := client.FetchCytobands(ctx, "danRer11", false)
package ucsc
