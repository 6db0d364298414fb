// Package delivery defines the contract every transport implementation
// satisfies so the application entrypoint can serve them uniformly.
package delivery

import "context"

// Delivery is a running transport, such as an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
