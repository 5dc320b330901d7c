package providers

import (
	"context"
	"fmt"
)

// Options carries everything any of the provider kinds may need. Only the
// fields for the selected kind are consulted.
type Options struct {
	Bedrock         BedrockOptions
	AnthropicAPIKey string
	ProxyBaseURL    string
	ProxyAPIKey     string
}

// New builds the provider for the given kind: "bedrock", "anthropic" or
// "proxy".
func New(ctx context.Context, kind string, opts Options) (Provider, error) {
	switch kind {
	case "bedrock":
		return NewBedrockProvider(ctx, opts.Bedrock)
	case "anthropic":
		if opts.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("provider anthropic requires ANTHROPIC_API_KEY")
		}
		return NewClaudeProvider(opts.AnthropicAPIKey), nil
	case "proxy":
		if opts.ProxyBaseURL == "" {
			return nil, fmt.Errorf("provider proxy requires a base URL")
		}
		return NewProxyProvider(opts.ProxyBaseURL, opts.ProxyAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want bedrock, anthropic or proxy)", kind)
	}
}
