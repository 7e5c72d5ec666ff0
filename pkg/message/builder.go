package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domain "github.com/donaldgifford/rental-upsell/pkg/types"
)

// Config controls the optional refinement step.
type Config struct {
	RefineEnabled bool
	Timeout       time.Duration
}

// DefaultConfig returns refinement disabled with a 5s timeout.
func DefaultConfig() Config {
	return Config{Timeout: 5 * time.Second}
}

// RefineObserver is notified after every refinement attempt.
type RefineObserver func(kind domain.MessageType, elapsed time.Duration, err error)

// Builder assembles complete UpsellMessages.
type Builder struct {
	cfg      Config
	refiner  Refiner
	log      *slog.Logger
	observer RefineObserver
}

// BuilderOption configures Builder.
type BuilderOption func(*Builder)

// WithRefiner sets the prose refiner.
func WithRefiner(r Refiner) BuilderOption {
	return func(b *Builder) {
		b.refiner = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.log = l
	}
}

// WithRefineObserver registers a callback for refinement attempts.
func WithRefineObserver(o RefineObserver) BuilderOption {
	return func(b *Builder) {
		b.observer = o
	}
}

// NewBuilder creates a Builder. Without a refiner, LLMExplanation always
// equals FormalExplanation.
func NewBuilder(cfg Config, opts ...BuilderOption) *Builder {
	b := &Builder{
		cfg: cfg,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CarUpgrade builds the message for a car upgrade.
func (b *Builder) CarUpgrade(ctx context.Context, u *CarUpgrade) domain.UpsellMessage {
	formal := CarUpgradeExplanationFormal(u)
	rc := RefineContext{Type: domain.MessageCarUpgrade, Car: u}
	return domain.UpsellMessage{
		Type:              domain.MessageCarUpgrade,
		Headline:          CarUpgradeHeadline(u),
		Bullets:           CarUpgradeBullets(u.ToTags),
		Stat:              CarUpgradeStat(&u.Persona),
		FormalExplanation: formal,
		LLMExplanation:    b.refine(ctx, rc, formal),
	}
}

// Protection builds the message for a protection offer.
func (b *Builder) Protection(ctx context.Context, u *ProtectionUpgrade) domain.UpsellMessage {
	formal := ProtectionExplanationFormal(u)
	rc := RefineContext{Type: domain.MessageProtection, Protection: u}
	return domain.UpsellMessage{
		Type:              domain.MessageProtection,
		Headline:          ProtectionHeadline(u),
		Bullets:           ProtectionBullets(u),
		Stat:              ProtectionStat(&u.Persona),
		FormalExplanation: formal,
		LLMExplanation:    b.refine(ctx, rc, formal),
	}
}

// refine returns the refined text, or formal on any failure.
func (b *Builder) refine(ctx context.Context, rc RefineContext, formal string) string {
	if !b.cfg.RefineEnabled || b.refiner == nil {
		return formal
	}

	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := b.callRefiner(ctx, rc, formal)
	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = ErrEmptyRefinement
	}
	if b.observer != nil {
		b.observer(rc.Type, time.Since(start), err)
	}

	if err != nil {
		b.log.Warn("refinement failed, using formal explanation",
			"message_type", rc.Type,
			"error", err,
		)
		return formal
	}
	return text
}

// callRefiner converts a refiner panic into ErrRefinerPanic.
func (b *Builder) callRefiner(ctx context.Context, rc RefineContext, formal string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrRefinerPanic, r)
		}
	}()
	return b.refiner.Refine(ctx, rc, formal)
}
