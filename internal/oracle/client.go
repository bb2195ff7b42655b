package oracle

import "context"

// Client sends a single prompt to the completion endpoint and returns the
// raw completion text. One call is one network round trip; there are no
// retries and no timeout beyond the transport's own.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
