// Package delivery defines the contract every transport entry point
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown happens through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
