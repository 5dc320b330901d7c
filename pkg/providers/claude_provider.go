package providers

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bedrockclaw/bedrockclaw/pkg/media"
)

// anthropicModels maps the shared aliases to Anthropic API model names.
var anthropicModels = map[string]string{
	"claude-opus-4-5":   "claude-opus-4-5-20251101",
	"claude-sonnet-4-5": "claude-sonnet-4-5-20250929",
	"claude-3-7-sonnet": "claude-3-7-sonnet-20250219",
	"claude-3-5-sonnet": "claude-3-5-sonnet-20241022",
	"claude-3-5-haiku":  "claude-3-5-haiku-20241022",
	"claude-3-opus":     "claude-3-opus-20240229",
}

// ClaudeProvider talks to the Anthropic API directly with an API key,
// bypassing Bedrock. Useful when the same invocation should run against
// api.anthropic.com instead of an AWS account.
type ClaudeProvider struct {
	client *anthropic.Client
}

func NewClaudeProvider(apiKey string) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL("https://api.anthropic.com"),
	)
	return &ClaudeProvider{client: &client}
}

func (p *ClaudeProvider) Name() string { return "anthropic" }

func (p *ClaudeProvider) Invoke(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if resolved, ok := anthropicModels[model]; ok {
		model = resolved
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(buildClaudeBlocks(req)...),
		},
	}

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvocation, err)
	}

	return parseClaudeResponse(resp), nil
}

func buildClaudeBlocks(req Request) []anthropic.ContentBlockParamUnion {
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(req.Attachments)+1)
	for _, att := range req.Attachments {
		switch {
		case att.Kind == media.KindImage:
			blocks = append(blocks, anthropic.NewImageBlockBase64(att.MediaType, att.Base64()))
		case att.MediaType == "application/pdf":
			blocks = append(blocks, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
				Data: att.Base64(),
			}))
		case att.Textual():
			blocks = append(blocks, anthropic.NewTextBlock(inlineTextBlock(att)))
		default:
			blocks = append(blocks, anthropic.NewTextBlock(placeholderBlock(att)))
		}
	}
	return append(blocks, anthropic.NewTextBlock(req.Prompt))
}

func parseClaudeResponse(resp *anthropic.Message) *Response {
	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			tb := block.AsText()
			text += tb.Text
		}
	}

	return &Response{
		Text:       text,
		StopReason: string(resp.StopReason),
		Usage: Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}
}
