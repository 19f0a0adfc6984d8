package main

import (
	"context"
	"errors"
	"fmt"

	wiki2md "github.com/alnah/go-wiki2md"
	"github.com/alnah/go-wiki2md/internal/config"
	"github.com/alnah/go-wiki2md/internal/hints"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	start := env.Now()

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), env.Logger)

	cfg, err := loadConfig(flags.common.config, envCfg, env)
	if err != nil {
		return err
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputs, err := resolveInputPaths(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputs, resolveOutputDir(flags.output, cfg), cfg.Preview.Enabled)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no wikitext files found in %v%s", ErrNoInput, inputs,
			hints.ForUnsupportedExtension(supportedExtensions))
	}

	conv, err := newConverter(cfg)
	if err != nil {
		return err
	}

	params := batchParams{
		workers:       wiki2md.ResolvePoolSize(cfg.Workers),
		skipRedirects: flags.routing.skipRedirects,
	}
	env.Logger.BatchStarted(len(files), params.workers)

	results := convertBatch(ctx, conv, files, params, env.Logger)

	summary := printResults(results, flags.common.quiet, flags.common.verbose, flags.routing.route, env)
	env.Logger.BatchCompleted(summary.Succeeded, summary.Failed, summary.Skipped, env.Now().Sub(start))

	if err := ctx.Err(); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, summary.Failed, len(results))
	}
	return nil
}

// loadConfig loads the config named by the flag or WIKI2MD_CONFIG.
// Without either, the defaults apply.
func loadConfig(flagConfig string, envCfg *envConfig, env *Environment) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, path, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		if errors.Is(err, config.ErrInvalidTemplate) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForTemplateName())
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	env.Logger.ConfigLoaded(path)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if len(flags.templates) > 0 {
		cfg.Templates.Infobox = flags.templates
	}

	if flags.outputMode.frontMatter {
		cfg.Output.FrontMatter = true
	}
	if flags.outputMode.html {
		cfg.Preview.Enabled = true
	}

	if flags.assets.style != "" {
		cfg.Preview.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	// Disable flags win over enable flags and config
	if flags.outputMode.noFrontMatter {
		cfg.Output.FrontMatter = false
	}
}

// resolveInputPaths determines the inputs from args or config.
func resolveInputPaths(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir determines the output path from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// newConverter builds the library converter from the merged config.
func newConverter(cfg *config.Config) (*wiki2md.Converter, error) {
	opts := []wiki2md.Option{
		wiki2md.WithInfoboxTemplates(cfg.Templates.Infobox...),
		wiki2md.WithNormalization(cfg.Input.Normalize),
		wiki2md.WithFrontMatter(cfg.Output.FrontMatter),
		wiki2md.WithPreview(cfg.Preview.Enabled),
		wiki2md.WithStyle(cfg.Preview.Style),
		wiki2md.WithClassifier(wiki2md.Classifier{
			Buckets: cfg.Categories.Buckets,
			Default: cfg.Categories.Default,
		}),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, wiki2md.WithAssetPath(cfg.Assets.BasePath))
	}

	conv, err := wiki2md.NewConverter(opts...)
	if err != nil {
		switch {
		case errors.Is(err, wiki2md.ErrStyleNotFound):
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(wiki2md.EmbeddedStyles()))
		case errors.Is(err, wiki2md.ErrInvalidTemplateName):
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateName())
		default:
			return nil, err
		}
	}
	return conv, nil
}
