package scorematch

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/scorematch/scorematch/directory"
	"github.com/scorematch/scorematch/session"
	"github.com/scorematch/scorematch/storage"
	"github.com/scorematch/scorematch/validate"
)

// Builder defines a public type used by ScoreMatch APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  *redis.Client

	volatile  storage.Store
	presenter Presenter
	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithVolatileStore overrides the per-context scratch store. The
// default is an in-process [storage.Memory], the moral equivalent of a
// browser tab's sessionStorage.
func (b *Builder) WithVolatileStore(store storage.Store) *Builder {
	b.volatile = store
	return b
}

// WithPresenter describes the withpresenter operation and its observable behavior.
//
// WithPresenter may return an error when input validation, dependency calls, or security checks fail.
// WithPresenter does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithPresenter(p Presenter) *Builder {
	b.presenter = p
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Build seeds the demo directory when configured, restores any
// persisted session, and reveals the matching initial view through the
// presenter.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.redis == nil {
		return nil, errors.New("redis client required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	durable := storage.NewRedis(b.redis, cfg.Directory.RedisPrefix)
	volatile := b.volatile
	if volatile == nil {
		volatile = storage.NewMemory()
	}
	presenter := b.presenter
	if presenter == nil {
		presenter = NoOpPresenter{}
	}

	engine := &Engine{
		config:    cfg,
		policy:    validate.Policy{AllowedDomainSuffix: cfg.Validation.AllowedDomain, MinPasswordLength: cfg.Validation.MinPasswordLength},
		directory: directory.New(durable),
		sessions:  session.NewStore(durable, volatile),
		presenter: presenter,
	}
	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	ctx := context.Background()

	if cfg.Directory.SeedDemoAccounts {
		if err := engine.directory.Seed(ctx); err != nil {
			return nil, err
		}
	}

	sess, err := engine.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		engine.state = StateAuthenticated
		engine.metricInc(MetricSessionRestored)
		engine.emitAudit(ctx, auditEventSessionRestored, true, sess.Email, "", nil, nil)
		presenter.RevealAuthenticated(*sess)
	} else {
		engine.state = StateAnonymous
		presenter.RevealAnonymous()
	}

	b.built = true

	return engine, nil
}
