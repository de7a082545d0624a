// Package delivery defines the contract every transport-facing server
// implements, letting the application start them uniformly.
package delivery

import "context"

// Delivery is a long-running server (HTTP, background worker). Serve
// blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
