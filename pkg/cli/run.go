package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/bedrockclaw/bedrockclaw/pkg/logger"
	"github.com/bedrockclaw/bedrockclaw/pkg/media"
	"github.com/bedrockclaw/bedrockclaw/pkg/metrics"
	"github.com/bedrockclaw/bedrockclaw/pkg/output"
	"github.com/bedrockclaw/bedrockclaw/pkg/providers"
)

// Invocation is one fully-resolved run: flags merged over env defaults.
type Invocation struct {
	PromptFile  string
	Files       []string
	OutputDir   string
	Model       string
	MaxTokens   int
	Temperature float64
	Save        bool
	MetricsDir  string // defaults to the global config dir
}

// BuildRequest reads the prompt and attachments from disk. Any file error
// is terminal and happens before a network client exists.
func BuildRequest(inv Invocation) (providers.Request, error) {
	prompt, err := media.ReadPrompt(inv.PromptFile)
	if err != nil {
		return providers.Request{}, err
	}
	if strings.TrimSpace(prompt) == "" {
		return providers.Request{}, fmt.Errorf("%w: %s", ErrEmptyPrompt, inv.PromptFile)
	}
	logger.InfoCF("cli", "Loaded prompt", map[string]interface{}{
		"path":  inv.PromptFile,
		"bytes": len(prompt),
	})

	attachments := make([]*media.Attachment, 0, len(inv.Files))
	for _, path := range inv.Files {
		att, err := media.ProcessFile(path)
		if err != nil {
			return providers.Request{}, err
		}
		logger.InfoCF("cli", "Added attachment", map[string]interface{}{
			"path": path,
			"kind": string(att.Kind),
			"mime": att.MediaType,
		})
		attachments = append(attachments, att)
	}

	return providers.Request{
		Prompt:      prompt,
		Attachments: attachments,
		Model:       inv.Model,
		MaxTokens:   inv.MaxTokens,
		Temperature: inv.Temperature,
	}, nil
}

// Run performs the single model call, echoes the response text to stdout,
// applies the output decision and records usage. Strictly linear; the one
// network call blocks until the provider returns.
func Run(ctx context.Context, inv Invocation, req providers.Request, provider providers.Provider, stdout io.Writer) error {
	invocationID := uuid.NewString()
	logger.InfoCF("cli", "Invoking model", map[string]interface{}{
		"invocation": invocationID,
		"provider":   provider.Name(),
		"model":      req.Model,
	})

	resp, err := provider.Invoke(ctx, req)
	if err != nil {
		return err
	}

	logger.DebugCF("cli", "Model response", map[string]interface{}{
		"stop_reason": resp.StopReason,
		"preview":     previewText(resp.Text, 120),
	})

	// Response text always goes to stdout, saved or not.
	fmt.Fprintln(stdout, resp.Text)

	// With saving disabled nothing touches the output directory: a no-save
	// run leaves zero files there.
	if inv.Save {
		decision := output.Classify(resp.Text)
		writer := output.NewWriter(inv.OutputDir)
		if _, err := writer.Apply(decision); err != nil {
			return err
		}
	}

	// Usage events live under the global config dir, never the output dir.
	metricsDir := inv.MetricsDir
	if metricsDir == "" {
		metricsDir = metrics.DefaultDir()
	}
	tracker := metrics.NewTracker(metricsDir)
	tracker.Record(metrics.InvocationEvent{
		InvocationID: invocationID,
		Provider:     provider.Name(),
		Model:        req.Model,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
		Attachments:  len(req.Attachments),
		StopReason:   resp.StopReason,
	})

	logger.InfoCF("cli", "Token usage", map[string]interface{}{
		"input":  resp.Usage.InputTokens,
		"output": resp.Usage.OutputTokens,
	})
	return nil
}
