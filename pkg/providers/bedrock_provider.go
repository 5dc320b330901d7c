package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"

	"github.com/bedrockclaw/bedrockclaw/pkg/media"
)

// anthropicVersion is the fixed version tag Bedrock expects in native Claude
// Messages payloads.
const anthropicVersion = "bedrock-2023-05-31"

// BedrockOptions selects region and credentials for the Bedrock client.
// When AccessKey/SecretKey are both set they win over the shared-config
// profile; otherwise the SDK default chain applies.
type BedrockOptions struct {
	Region    string
	Profile   string
	AccessKey string
	SecretKey string
}

// BedrockProvider invokes Claude models through the Bedrock runtime using
// the native Anthropic Messages body over InvokeModel.
type BedrockProvider struct {
	client *bedrockruntime.Client
}

func NewBedrockProvider(ctx context.Context, opts BedrockOptions) (*BedrockProvider, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	} else if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &BedrockProvider{client: bedrockruntime.NewFromConfig(awsCfg)}, nil
}

func (p *BedrockProvider) Name() string { return "bedrock" }

func (p *BedrockProvider) Invoke(ctx context.Context, req Request) (*Response, error) {
	modelID, err := ResolveBedrockModelID(req.Model)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(buildClaudeBody(req))
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	out, err := p.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, wrapBedrockError(err)
	}

	var resp claudeWireResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrInvocation, err)
	}

	return resp.toResponse(), nil
}

// claudeWireRequest is the native Anthropic Messages body Bedrock accepts.
type claudeWireRequest struct {
	AnthropicVersion string              `json:"anthropic_version"`
	MaxTokens        int                 `json:"max_tokens"`
	Temperature      float64             `json:"temperature"`
	Messages         []claudeWireMessage `json:"messages"`
}

type claudeWireMessage struct {
	Role    string            `json:"role"`
	Content []claudeWireBlock `json:"content"`
}

type claudeWireBlock struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *claudeWireBytes `json:"source,omitempty"`
}

type claudeWireBytes struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type claudeWireResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (r *claudeWireResponse) toResponse() *Response {
	var text string
	for _, block := range r.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return &Response{
		Text:       text,
		StopReason: r.StopReason,
		Usage: Usage{
			InputTokens:  r.Usage.InputTokens,
			OutputTokens: r.Usage.OutputTokens,
		},
	}
}

// buildClaudeBody assembles one user message: attachments first, in the
// order given on the command line, then the prompt text.
func buildClaudeBody(req Request) claudeWireRequest {
	blocks := make([]claudeWireBlock, 0, len(req.Attachments)+1)
	for _, att := range req.Attachments {
		switch {
		case att.Kind == media.KindImage:
			blocks = append(blocks, claudeWireBlock{
				Type: "image",
				Source: &claudeWireBytes{
					Type:      "base64",
					MediaType: att.MediaType,
					Data:      att.Base64(),
				},
			})
		case att.MediaType == "application/pdf":
			blocks = append(blocks, claudeWireBlock{
				Type: "document",
				Source: &claudeWireBytes{
					Type:      "base64",
					MediaType: att.MediaType,
					Data:      att.Base64(),
				},
			})
		case att.Textual():
			blocks = append(blocks, claudeWireBlock{Type: "text", Text: inlineTextBlock(att)})
		default:
			blocks = append(blocks, claudeWireBlock{Type: "text", Text: placeholderBlock(att)})
		}
	}
	blocks = append(blocks, claudeWireBlock{Type: "text", Text: req.Prompt})

	return claudeWireRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		Messages: []claudeWireMessage{
			{Role: "user", Content: blocks},
		},
	}
}

// wrapBedrockError maps SDK failures onto the two terminal error kinds.
func wrapBedrockError(err error) error {
	var denied *types.AccessDeniedException
	if errors.As(err, &denied) {
		return fmt.Errorf("%w: %s", ErrAccessDenied, denied.ErrorMessage())
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException", "UnrecognizedClientException", "ExpiredTokenException", "InvalidSignatureException":
			return fmt.Errorf("%w: %s", ErrAccessDenied, apiErr.ErrorMessage())
		}
		return fmt.Errorf("%w: %s: %s", ErrInvocation, apiErr.ErrorCode(), apiErr.ErrorMessage())
	}

	return fmt.Errorf("%w: %v", ErrInvocation, err)
}
