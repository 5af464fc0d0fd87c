// Package connection maintains the persistent WebSocket connection to the
// whale-alert channel.
//
// The channel is push-only: events arrive as they occur, with no
// request/response framing. The client surfaces raw messages and errors on
// channels and is explicitly closed when the whales view is exited. There
// is no automatic reconnection; a failed connection degrades the view to
// snapshot-only for the session.
package connection
