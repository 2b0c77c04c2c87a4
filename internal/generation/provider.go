package generation

import "context"

// Role identifies the author of a prompt message.
type Role string

// Message roles understood by every provider.
const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
)

// Message is one prompt message.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion request.
type Request struct {
	Model       string
	Temperature float64
	Messages    []Message
	// JSONResponse asks providers that support a JSON output mode to use it.
	JSONResponse bool
}

// Provider sends a request to a language model and returns its raw text
// output. Implementations must honor ctx cancellation where the underlying
// client allows it.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f ProviderFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
