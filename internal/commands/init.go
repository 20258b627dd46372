// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/config"
	"github.com/dacolabs/dcgen/internal/llm"
	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/session"
)

type initOptions struct {
	provider       string
	model          string
	apiKeyEnv      string
	redisURLEnv    string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new dcgen project",
		Long: `Initialize a new dcgen project with a dcgen.yaml configuration file.
The file names the completion provider used for plans and the environment
variables holding its API key and the Redis URL. Secrets are never written.`,
		Example: `  # Interactive mode
  dcgen init

  # Non-interactive
  dcgen init --provider anthropic --api-key-env ANTHROPIC_API_KEY --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.provider, "provider", "p", config.DefaultProvider, fmt.Sprintf("Completion provider (%s)", strings.Join(llm.Providers(), ", ")))
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Model name (defaults to the provider's default)")
	cmd.Flags().StringVar(&opts.apiKeyEnv, "api-key-env", "", "Environment variable holding the API key")
	cmd.Flags().StringVar(&opts.redisURLEnv, "redis-url-env", config.DefaultRedisURLEnv, "Environment variable holding the Redis URL")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("dcgen.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive {
		if opts.apiKeyEnv == "" {
			opts.apiKeyEnv = defaultAPIKeyEnv(opts.provider)
		}
		if err := prompts.RunInitForm(&opts.provider, &opts.apiKeyEnv, &opts.redisURLEnv, llm.Providers()); err != nil {
			return err
		}
	}

	cfg, err := buildInitConfig(opts)
	if err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Provider", Value: cfg.LLM.Provider},
		{Label: "API key variable", Value: cfg.LLM.APIKeyEnv},
	}, "Initialization completed")

	if os.Getenv(cfg.LLM.APIKeyEnv) == "" {
		prompts.Warn("%s is not set; plans will be built heuristically", cfg.LLM.APIKeyEnv)
	}
	return nil
}

func buildInitConfig(opts *initOptions) (*config.Config, error) {
	cfg := config.Default()
	cfg.LLM.Provider = opts.provider
	cfg.LLM.Model = opts.model
	cfg.LLM.APIKeyEnv = opts.apiKeyEnv
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = defaultAPIKeyEnv(opts.provider)
	}
	cfg.Store.RedisURLEnv = opts.redisURLEnv

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// defaultAPIKeyEnv returns the conventional key variable for a provider.
func defaultAPIKeyEnv(provider string) string {
	switch llm.Provider(provider) {
	case llm.ProviderPerplexity:
		return "PERPLEXITY_API_KEY"
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return config.DefaultAPIKeyEnv
	}
}
