// Command centuria runs persona surveys from the command line: estimate the
// cost of a survey, execute it against a set of personas, list available
// models, or generate a fresh persona.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/dig"
	"go.uber.org/zap"

	rediscache "github.com/ribenamaplesyrup/artificial-centuria/internal/cache/redis"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/catalog"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/config"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/domain"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/observability"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/persona"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/anthropic"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/echo"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/gemini"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/openai"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/provider/registry"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/survey"
	"github.com/ribenamaplesyrup/artificial-centuria/internal/tokens"
)

type cliOptions struct {
	command      string
	personasPath string
	surveyPath   string
	model        string
	numAgents    int
}

func main() {
	opts := parseFlags()
	container := buildContainer()

	err := container.Invoke(func(
		logger *zap.Logger,
		executor *survey.Executor,
		projector *survey.CostProjector,
		generator *persona.Generator,
	) error {
		defer func() { _ = logger.Sync() }()
		return run(opts, executor, projector, generator)
	})
	if err != nil {
		log.Fatalf("centuria failed: %v", err)
	}
}

func parseFlags() cliOptions {
	opts := cliOptions{} //nolint:exhaustruct // populated by flags below

	flag.StringVar(&opts.personasPath, "personas", "", "path to personas JSON file")
	flag.StringVar(&opts.surveyPath, "survey", "", "path to survey JSON file")
	flag.StringVar(&opts.model, "model", "", "model identifier (defaults to DEFAULT_MODEL)")
	flag.IntVar(&opts.numAgents, "agents", 1, "number of agents for cost estimation")
	flag.Parse()

	opts.command = flag.Arg(0)
	if opts.command == "" {
		opts.command = "models"
	}

	return opts
}

func buildContainer() *dig.Container {
	container := dig.New()

	providers := []interface{}{
		config.Load,
		config.ParseDependenciesConfig,
		observability.InitLogger,
		func() domain.ProviderRegistry { return registry.NewRegistry() },
		func() domain.PricingRegistry { return domain.NewInMemoryPricingRegistry() },
		func(r domain.PricingRegistry) domain.CostCalculator {
			return domain.NewStandardCostCalculator(r)
		},
		func() domain.TokenCounter { return tokens.NewCounter() },
		func(cfg *config.LLMConfig) domain.GatewayConfig {
			return domain.GatewayConfig{DefaultModel: cfg.DefaultModel}
		},
		func(cfg *rediscache.Config) domain.CompletionCache {
			if !cfg.Enabled() {
				return nil
			}
			return rediscache.New(*cfg)
		},
		func(logger *zap.Logger) domain.EventPublisher {
			return observability.NewEventBus(logger)
		},
		domain.NewGatewayService,
		domain.NewCostEstimator,
		func(g *domain.GatewayService) survey.Gateway { return g },
		func(e *domain.CostEstimator) survey.Estimator { return e },
		func(g *domain.GatewayService) persona.Gateway { return g },
		survey.NewExecutor,
		survey.NewCostProjector,
		persona.NewGenerator,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			log.Fatalf("Failed to build container: %v", err)
		}
	}

	if err := container.Invoke(registerProviders); err != nil {
		log.Fatalf("Failed to register providers: %v", err)
	}

	return container
}

// registerProviders wires every provider with a configured credential, plus
// the echo provider for offline dry-runs, and their pricing tables.
func registerProviders(
	cfg *config.Config,
	reg domain.ProviderRegistry,
	pricing domain.PricingRegistry,
	logger *zap.Logger,
) error {
	ctx := context.Background()

	if cfg.OpenAI.APIKey != "" {
		provider, err := openai.NewProvider(cfg.OpenAI)
		if err != nil {
			return fmt.Errorf("failed to create OpenAI provider: %w", err)
		}
		if err := reg.Register(ctx, provider); err != nil {
			return fmt.Errorf("failed to register OpenAI provider: %w", err)
		}
	}
	if err := openai.RegisterPricing(ctx, pricing); err != nil {
		return err
	}

	if cfg.Anthropic.APIKey != "" {
		provider, err := anthropic.NewProvider(cfg.Anthropic)
		if err != nil {
			return fmt.Errorf("failed to create Anthropic provider: %w", err)
		}
		if err := reg.Register(ctx, provider); err != nil {
			return fmt.Errorf("failed to register Anthropic provider: %w", err)
		}
	}
	if err := anthropic.RegisterPricing(ctx, pricing); err != nil {
		return err
	}

	if cfg.Gemini.APIKey != "" {
		provider, err := gemini.NewProvider(cfg.Gemini)
		if err != nil {
			return fmt.Errorf("failed to create Gemini provider: %w", err)
		}
		if err := reg.Register(ctx, provider); err != nil {
			return fmt.Errorf("failed to register Gemini provider: %w", err)
		}
	}
	if err := gemini.RegisterPricing(ctx, pricing); err != nil {
		return err
	}

	if err := reg.Register(ctx, echo.NewProvider()); err != nil {
		return fmt.Errorf("failed to register echo provider: %w", err)
	}
	if err := echo.RegisterPricing(ctx, pricing); err != nil {
		return err
	}

	ids, _ := reg.List(ctx)
	logger.Info("providers registered", zap.Int("count", len(ids)))

	return nil
}

func run(
	opts cliOptions,
	executor *survey.Executor,
	projector *survey.CostProjector,
	generator *persona.Generator,
) error {
	ctx := observability.WithRequestID(context.Background(), observability.GenerateRequestID())
	if opts.model != "" {
		ctx = observability.WithModel(ctx, opts.model)
	}

	switch opts.command {
	case "models":
		return printJSON(catalog.Available(nil))
	case "generate":
		generated, err := generator.Generate(ctx, opts.model, nil)
		if err != nil {
			return err
		}
		return printJSON(generated)
	case "estimate":
		return runEstimate(ctx, opts, projector)
	case "run":
		return runSurveys(ctx, opts, executor)
	default:
		return fmt.Errorf("unknown command %q (want models, generate, estimate or run)", opts.command)
	}
}

func runEstimate(ctx context.Context, opts cliOptions, projector *survey.CostProjector) error {
	personas, err := loadPersonas(opts.personasPath)
	if err != nil {
		return err
	}
	surv, err := loadSurvey(opts.surveyPath)
	if err != nil {
		return err
	}

	// The first persona stands in for the whole batch.
	estimate, err := projector.EstimateSurveyCost(ctx, personas[0], *surv, opts.numAgents, opts.model)
	if err != nil {
		return err
	}

	return printJSON(struct {
		domain.SurveyEstimate
		TotalCost float64 `json:"total_cost"`
	}{estimate, estimate.TotalCost()})
}

func runSurveys(ctx context.Context, opts cliOptions, executor *survey.Executor) error {
	personas, err := loadPersonas(opts.personasPath)
	if err != nil {
		return err
	}
	surv, err := loadSurvey(opts.surveyPath)
	if err != nil {
		return err
	}

	execOpts := survey.Options{Model: opts.model, Credentials: nil}

	// A one-question survey across many personas is the batch fast path.
	if len(surv.Questions) == 1 && len(personas) > 1 {
		result, batchErr := executor.RunBatch(ctx, personas, surv.Questions[0], execOpts)
		if batchErr != nil {
			return batchErr
		}
		return printJSON(result)
	}

	results := make([]*domain.SurveyResponse, 0, len(personas))
	for _, p := range personas {
		response, runErr := executor.RunSurvey(ctx, p, *surv, execOpts)
		if runErr != nil {
			return runErr
		}
		results = append(results, response)
	}

	return printJSON(results)
}

func loadPersonas(path string) ([]domain.Persona, error) {
	if path == "" {
		return nil, errors.New("-personas is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read personas file: %w", err)
	}

	var personas []domain.Persona
	if err := json.Unmarshal(data, &personas); err != nil {
		return nil, fmt.Errorf("failed to parse personas file: %w", err)
	}
	if len(personas) == 0 {
		return nil, errors.New("personas file contains no personas")
	}

	return personas, nil
}

func loadSurvey(path string) (*domain.Survey, error) {
	if path == "" {
		return nil, errors.New("-survey is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read survey file: %w", err)
	}

	var surv domain.Survey
	if err := json.Unmarshal(data, &surv); err != nil {
		return nil, fmt.Errorf("failed to parse survey file: %w", err)
	}
	if len(surv.Questions) == 0 {
		return nil, errors.New("survey contains no questions")
	}

	return &surv, nil
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
