// Package cli wires the command surface: one root command that performs a
// single model invocation, plus a proxy-config subcommand for the mapping
// file the external proxy consumes.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bedrockclaw/bedrockclaw/pkg/config"
	"github.com/bedrockclaw/bedrockclaw/pkg/logger"
	"github.com/bedrockclaw/bedrockclaw/pkg/providers"
)

var (
	// ErrUsage marks bad command-line input; main maps it to exit code 2.
	ErrUsage = errors.New("usage error")

	// ErrEmptyPrompt means the prompt file holds only whitespace.
	ErrEmptyPrompt = errors.New("prompt file is empty")
)

// NewRootCommand builds the root command. Flag defaults come from the
// environment-backed config, so flags > env > built-in defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	var (
		promptFile   string
		files        []string
		outputDir    string
		region       string
		profile      string
		maxTokens    int
		temperature  float64
		model        string
		providerKind string
		saveOutput   bool
		noSaveOutput bool
		verbose      bool
	)

	root := &cobra.Command{
		Use:   "bedrockclaw",
		Short: "Send a prompt and file attachments to Claude on Amazon Bedrock",
		Long: `bedrockclaw reads a prompt file plus optional image and document
attachments, performs exactly one model invocation, and either prints the
response or saves it under the output directory depending on what the
response looks like (code blocks, JSON, XML, long text).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetVerbose(verbose)

			if promptFile == "" {
				return fmt.Errorf("%w: --prompt-file is required", ErrUsage)
			}

			save := saveOutput
			if noSaveOutput {
				save = false
			}

			inv := Invocation{
				PromptFile:  promptFile,
				Files:       files,
				OutputDir:   outputDir,
				Model:       model,
				MaxTokens:   maxTokens,
				Temperature: temperature,
				Save:        save,
			}

			// Build the request first: file errors must fail the run
			// before any client is constructed or network touched.
			req, err := BuildRequest(inv)
			if err != nil {
				return err
			}

			provider, err := providers.New(cmd.Context(), providerKind, providers.Options{
				Bedrock: providers.BedrockOptions{
					Region:    region,
					Profile:   profile,
					AccessKey: cfg.AccessKey,
					SecretKey: cfg.SecretKey,
				},
				AnthropicAPIKey: cfg.AnthropicAPIKey,
				ProxyBaseURL:    cfg.ProxyBaseURL,
				ProxyAPIKey:     cfg.ProxyAPIKey,
			})
			if err != nil {
				return err
			}

			return Run(cmd.Context(), inv, req, provider, cmd.OutOrStdout())
		},
	}

	flags := root.Flags()
	flags.StringVarP(&promptFile, "prompt-file", "p", "", "file containing the prompt text (required)")
	flags.StringArrayVarP(&files, "file", "f", nil, "attachment path, repeatable (images, PDFs, documents)")
	flags.StringVarP(&outputDir, "output-dir", "o", cfg.OutputDir, "directory for saved output files")
	flags.StringVarP(&region, "region", "r", cfg.Region, "AWS region")
	flags.StringVar(&profile, "profile", cfg.Profile, "AWS credential profile name")
	flags.IntVar(&maxTokens, "max-tokens", cfg.MaxTokens, "response length cap in tokens")
	flags.Float64Var(&temperature, "temperature", cfg.Temperature, "sampling temperature")
	flags.StringVar(&model, "model", cfg.Model, "model alias or full backend model ID")
	flags.StringVar(&providerKind, "provider", cfg.Provider, "backend to invoke: bedrock, anthropic or proxy")
	flags.BoolVar(&saveOutput, "save-output", true, "save output to files when it looks like generated content")
	flags.BoolVar(&noSaveOutput, "no-save-output", false, "always print to console, never write files")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.AddCommand(newProxyConfigCommand())
	return root
}

func previewText(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
