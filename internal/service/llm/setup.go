package llm

import (
	"fmt"
	"log/slog"

	"elevatehub/internal/config"
	"elevatehub/internal/domain/services"
	"elevatehub/internal/service/llm/providers/anthropic"
	"elevatehub/internal/service/llm/providers/lorem"
)

// Generator names accepted by RESPONSE_GENERATOR
const (
	GeneratorTemplate  = "template"
	GeneratorAnthropic = "anthropic"
	GeneratorLorem     = "lorem"
)

// SetupGenerator picks the response generator named by cfg.ResponseGenerator.
// An empty name is inferred from cfg.DefaultModel when an API key is set.
// When the named provider cannot be built, templates is returned instead.
func SetupGenerator(cfg *config.Config, templates services.ResponseGenerator, logger *slog.Logger) (services.ResponseGenerator, error) {
	name := cfg.ResponseGenerator
	model := cfg.DefaultModel

	if info, err := ParseModel(model); err == nil {
		model = info.Model
		if name == "" && (info.Provider != GeneratorAnthropic || cfg.AnthropicAPIKey != "") {
			name = info.Provider
		}
	}
	if name == "" {
		name = GeneratorTemplate
	}

	switch name {
	case GeneratorTemplate:
		logger.Info("response generator initialized", "name", GeneratorTemplate)
		return templates, nil

	case GeneratorLorem:
		logger.Info("response generator initialized", "name", GeneratorLorem)
		return lorem.NewGenerator(), nil

	case GeneratorAnthropic:
		if cfg.AnthropicAPIKey == "" {
			logger.Warn("ANTHROPIC_API_KEY not set - falling back to template responses")
			return templates, nil
		}
		g, err := anthropic.NewGenerator(cfg.AnthropicAPIKey, model, cfg.ResponseMaxTokens, cfg.ResponseTemperature)
		if err != nil {
			return nil, fmt.Errorf("anthropic generator: %w", err)
		}
		logger.Info("response generator initialized", "name", GeneratorAnthropic, "model", model)
		return g, nil

	default:
		return nil, fmt.Errorf("unknown response generator %q", name)
	}
}
