// Package model defines shared data types used across the Zora dashboard.
//
// Conventions:
//   - USD amounts: float64; pointer where the upstream API may omit the value
//   - Timestamps: RFC 3339 strings as delivered by the API for coin/creation
//     times, int64 Unix seconds for whale trade events
//   - IDs: hex addresses for coins, handles or profile ids for people,
//     transaction hashes for trades
package model
