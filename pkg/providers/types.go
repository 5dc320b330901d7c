package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bedrockclaw/bedrockclaw/pkg/media"
)

var (
	// ErrInvocation means the model call failed for transport or server
	// reasons after a well-formed request was built.
	ErrInvocation = errors.New("model invocation failed")

	// ErrAccessDenied means the backend rejected our credentials.
	ErrAccessDenied = errors.New("access denied")
)

// Request is a single model invocation: prompt text plus attachments in
// command-line order. Immutable after construction.
type Request struct {
	Prompt      string
	Attachments []*media.Attachment
	Model       string // alias or full backend model ID
	MaxTokens   int
	Temperature float64
}

// Usage reports token counts for one invocation.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is the plain text the model returned, with stop reason and usage.
type Response struct {
	Text       string
	StopReason string
	Usage      Usage
}

// Provider performs exactly one blocking model call per Invoke. No retries,
// no timeout beyond the underlying client defaults.
type Provider interface {
	Name() string
	Invoke(ctx context.Context, req Request) (*Response, error)
}

// bedrockModelIDs maps the user-facing aliases (the same names the proxy
// mapping exposes) to Bedrock model identifiers.
// https://docs.aws.amazon.com/bedrock/latest/userguide/model-ids.html
var bedrockModelIDs = map[string]string{
	"claude-opus-4-5":   "global.anthropic.claude-opus-4-5-20251101-v1:0",
	"claude-sonnet-4-5": "global.anthropic.claude-sonnet-4-5-20250929-v1:0",
	"claude-3-7-sonnet": "us.anthropic.claude-3-7-sonnet-20250219-v1:0",
	"claude-3-5-sonnet": "anthropic.claude-3-5-sonnet-20241022-v2:0",
	"claude-3-5-haiku":  "anthropic.claude-3-5-haiku-20241022-v1:0",
	"claude-3-opus":     "anthropic.claude-3-opus-20240229-v1:0",
}

// ResolveBedrockModelID maps an alias to its Bedrock model ID. Anything
// containing a dot is assumed to already be a full model ID and passes
// through untouched.
func ResolveBedrockModelID(model string) (string, error) {
	if strings.Contains(model, ".") {
		return model, nil
	}
	if id, ok := bedrockModelIDs[model]; ok {
		return id, nil
	}
	return "", fmt.Errorf("unknown model alias %q", model)
}

// inlineTextBlock frames a textual attachment so the model can tell where
// file content starts and ends.
func inlineTextBlock(att *media.Attachment) string {
	return fmt.Sprintf("--- Content of %s ---\n%s\n--- End of %s ---", att.Name, string(att.Data), att.Name)
}

// placeholderBlock stands in for binary attachments the target API cannot
// carry natively (office documents outside Bedrock's document support).
func placeholderBlock(att *media.Attachment) string {
	return fmt.Sprintf("[Attached file %s (%s, %d bytes) could not be inlined for this provider]", att.Name, att.MediaType, len(att.Data))
}
