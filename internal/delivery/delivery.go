// Package delivery defines the contract every transport entry point
// implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop). The
// application root starts every registered delivery and shuts them down
// together.
type Delivery interface {
	Serve(ctx context.Context) error
}
