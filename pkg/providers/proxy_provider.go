package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/bedrockclaw/bedrockclaw/pkg/media"
)

// ProxyProvider sends the invocation through an OpenAI-compatible proxy
// (LiteLLM or similar) fronting Bedrock. Model names are passed through
// verbatim: the proxy owns the alias-to-backend mapping.
type ProxyProvider struct {
	client *openai.Client
}

func NewProxyProvider(baseURL, apiKey string) *ProxyProvider {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)
	return &ProxyProvider{client: &client}
}

func (p *ProxyProvider) Name() string { return "proxy" }

func (p *ProxyProvider) Invoke(ctx context.Context, req Request) (*Response, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildProxyParts(req)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvocation, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty choices in proxy response", ErrInvocation)
	}

	choice := resp.Choices[0]
	return &Response{
		Text:       choice.Message.Content,
		StopReason: string(choice.FinishReason),
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

// buildProxyParts maps attachments onto OpenAI content parts. Images become
// data-URI image parts; everything the chat-completions shape cannot carry
// as binary is inlined or replaced with a placeholder.
func buildProxyParts(req Request) []openai.ChatCompletionContentPartUnionParam {
	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(req.Attachments)+1)
	for _, att := range req.Attachments {
		switch {
		case att.Kind == media.KindImage:
			dataURI := fmt.Sprintf("data:%s;base64,%s", att.MediaType, att.Base64())
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: dataURI,
			}))
		case att.Textual():
			parts = append(parts, openai.TextContentPart(inlineTextBlock(att)))
		default:
			parts = append(parts, openai.TextContentPart(placeholderBlock(att)))
		}
	}
	return append(parts, openai.TextContentPart(req.Prompt))
}
