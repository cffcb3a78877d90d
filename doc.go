// Package fundfx computes the return of a single fund expressed in a
// reference currency, relative to its most recent available valuation.
//
// The core is a linear pipeline of pure transformations:
//   - Window planning: a long historical range is split into bounded
//     fetch windows, because the native fund-price source limits how
//     much history a single request may span.
//   - Join: native-currency fund prices are left-joined with the
//     reference-currency FX closes by date.
//   - Derivation: reference-currency price, return relative to the
//     latest valid price, and (when the holding period is long enough)
//     an annualized version of that return.
//
// The two data sources (the TEFAS fund-price platform and the FX quote
// feed) are external collaborators behind the PriceFetcher and
// RateFetcher interfaces; the pipeline assumes both result sets are
// materialized in memory before the join runs. This package is the
// foundation of the `ffx` command-line tool.
package fundfx
