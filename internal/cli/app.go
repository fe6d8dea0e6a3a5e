package cli

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/veda-tools/samhita/internal/cache"
	"github.com/veda-tools/samhita/internal/corpus"
	"github.com/veda-tools/samhita/internal/model"
	"github.com/veda-tools/samhita/internal/userdata"
	"github.com/veda-tools/samhita/internal/worker"
)

// app bundles the wired components every data-touching command needs.
type app struct {
	cfg    *model.Config
	logger *zap.Logger
	store  *corpus.Store
	loader *corpus.Loader
	state  *userdata.Store
}

// newApp builds the component graph from configuration.
func newApp() *app {
	cfg := buildConfig()
	logger := newLogger(cfg.Output.Verbose)

	limiter := worker.NewLimiter(cfg.HTTP.RequestsPerSecond, cfg.HTTP.Burst)
	fetcher := corpus.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, limiter)

	var session cache.Cache
	if cfg.Cache.Enabled {
		session = cache.NewSessionCache(cfg.Cache.Dir, cfg.Cache.SessionTTL)
	}

	store := corpus.NewStore(cfg.Data.BaseURL, fetcher, session, cfg.Cache.MemoryTTL, logger)
	loader := corpus.NewLoader(store, fetcher,
		cfg.Data.Mandalas, cfg.Concurrency.FetchWorkers,
		corpus.LegacyURL(cfg.Data.BaseURL, cfg.Data.LegacyFile), logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		loader: loader,
		state:  userdata.NewStore(cfg.State.Dir),
	}
}

// loadCorpus loads the full merged verse list. An empty result with a
// nil error means the corpus is unavailable, which callers report as a
// "no data" state, never a crash.
func (a *app) loadCorpus(ctx context.Context) []model.Verse {
	return a.loader.LoadAll(ctx)
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// buildConfig layers the config file and environment over the
// defaults. Only keys actually set override the defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	setString := func(key string, dst *string) {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	setInt := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	setBool := func(key string, dst *bool) {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if viper.IsSet(key) {
			*dst = viper.GetDuration(key)
		}
	}
	setFloat := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}

	setString("data.base_url", &cfg.Data.BaseURL)
	setInt("data.mandalas", &cfg.Data.Mandalas)
	setString("data.legacy_file", &cfg.Data.LegacyFile)

	setDuration("http.timeout", &cfg.HTTP.Timeout)
	setString("http.user_agent", &cfg.HTTP.UserAgent)
	if viper.IsSet("http.max_body_bytes") {
		cfg.HTTP.MaxBodyBytes = viper.GetInt64("http.max_body_bytes")
	}
	setFloat("http.requests_per_second", &cfg.HTTP.RequestsPerSecond)
	setInt("http.burst", &cfg.HTTP.Burst)

	setBool("cache.enabled", &cfg.Cache.Enabled)
	setString("cache.dir", &cfg.Cache.Dir)
	setDuration("cache.memory_ttl", &cfg.Cache.MemoryTTL)
	setDuration("cache.session_ttl", &cfg.Cache.SessionTTL)

	setFloat("search.threshold", &cfg.Search.Threshold)
	setInt("search.history_size", &cfg.Search.HistorySize)

	setString("state.dir", &cfg.State.Dir)
	setInt("concurrency.fetch_workers", &cfg.Concurrency.FetchWorkers)

	cfg.Output.Verbose = verbose || viper.GetBool("output.verbose")
	cfg.Output.JSON = jsonOut || viper.GetBool("output.json")

	return cfg
}

// newLogger builds the diagnostic logger. Warnings and above always
// reach stderr; verbose mode lowers the floor to debug.
func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
