// Package api provides a read-only client for the Zora SDK HTTP API.
//
// Each dashboard view corresponds to exactly one logical query; FetchQuery
// dispatches a view.Query to the one endpoint that serves it. The client
// performs no retries and no caching: a failed call fails the current fetch
// outright, and a re-fetch is always driven by the caller.
package api
