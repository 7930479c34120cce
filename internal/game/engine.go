package game

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"

	"pokecasino/server/internal/achievements"
	"pokecasino/server/internal/dex"
	"pokecasino/server/internal/state"
	"pokecasino/server/internal/transitions"
	"pokecasino/server/logging"
	economylog "pokecasino/server/logging/economy"
)

// SaveStore persists committed player state. Persistence is best-effort:
// a failed write never rolls back the in-memory commit.
type SaveStore interface {
	Save(ctx context.Context, slot string, player state.PlayerState) error
}

// Config wires an engine's collaborators.
type Config struct {
	Provider  dex.Provider
	Resolver  *transitions.Resolver
	RNG       *rand.Rand
	Publisher logging.Publisher
	Store     SaveStore
	SaveSlot  string
}

// Engine owns the player profile and is the only code allowed to mutate
// it. Every operation validates under the lock, releases it across provider
// lookups, then re-validates before committing. Identity-changing
// operations additionally hold a per-instance in-flight mark so two
// overlapping transitions on the same creature cannot double-charge.
type Engine struct {
	mu       sync.Mutex
	player   state.PlayerState
	inflight map[string]struct{}
	rounds   map[string]*rocketRound

	provider  dex.Provider
	resolver  *transitions.Resolver
	rng       *rand.Rand
	publisher logging.Publisher
	store     SaveStore
	saveSlot  string

	seq atomic.Uint64
}

// NewEngine builds an engine around an initial profile.
func NewEngine(player state.PlayerState, cfg Config) *Engine {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	rng := cfg.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{
		player:    player,
		inflight:  make(map[string]struct{}),
		rounds:    make(map[string]*rocketRound),
		provider:  cfg.Provider,
		resolver:  cfg.Resolver,
		rng:       rng,
		publisher: publisher,
		store:     cfg.Store,
		saveSlot:  cfg.SaveSlot,
	}
}

// Snapshot returns a deep copy of the current profile.
func (e *Engine) Snapshot() state.PlayerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.player.Clone()
}

func (e *Engine) nextSeq() uint64 {
	return e.seq.Add(1)
}

func (e *Engine) playerRef() logging.EntityRef {
	return logging.EntityRef{ID: e.saveSlot, Kind: logging.EntityKindPlayer}
}

// markInflight reserves an instance for a transition. Caller holds the lock.
func (e *Engine) markInflight(uid string) error {
	if _, busy := e.inflight[uid]; busy {
		return deny(ReasonBusy, uid)
	}
	e.inflight[uid] = struct{}{}
	return nil
}

func (e *Engine) clearInflight(uid string) {
	e.mu.Lock()
	delete(e.inflight, uid)
	e.mu.Unlock()
}

// creditDelta applies a signed balance change, maintains the peak counter,
// and settles any newly earned achievements. Rewards can chain further
// wealth milestones, so evaluation loops to a fixed point. Caller holds the
// lock.
func (e *Engine) creditDelta(ctx context.Context, delta float64) {
	e.player.Credits += delta
	if e.player.Credits > e.player.Stats.PeakBalance {
		e.player.Stats.PeakBalance = e.player.Credits
	}
	e.settleAchievements(ctx)
}

// settleAchievements credits every newly qualified milestone. Caller holds
// the lock.
func (e *Engine) settleAchievements(ctx context.Context) {
	for {
		earned := achievements.Evaluate(&e.player)
		if len(earned) == 0 {
			return
		}
		for _, a := range earned {
			e.player.CompletedAchievements = append(e.player.CompletedAchievements, a.ID)
			e.player.Credits += a.Reward
			if e.player.Credits > e.player.Stats.PeakBalance {
				e.player.Stats.PeakBalance = e.player.Credits
			}
			economylog.AchievementUnlocked(ctx, e.publisher, e.nextSeq(), e.playerRef(),
				economylog.AchievementPayload{AchievementID: a.ID, Reward: a.Reward}, nil)
		}
	}
}

// persist writes the committed profile. Called outside the lock with a
// cloned snapshot; failures are logged by the store's caller-side sink and
// never surfaced to the player.
func (e *Engine) persist(ctx context.Context, snapshot state.PlayerState) {
	if e.store == nil {
		return
	}
	if err := e.store.Save(ctx, e.saveSlot, snapshot); err != nil {
		e.publisher.Publish(ctx, logging.Event{
			Type:     "system.save_failed",
			Seq:      e.nextSeq(),
			Actor:    e.playerRef(),
			Severity: logging.SeverityError,
			Category: logging.CategorySystem,
			Payload:  map[string]any{"error": err.Error()},
		})
	}
}

// finish releases the lock and persists the committed snapshot taken under
// it. Every mutating operation ends through here.
func (e *Engine) finish(ctx context.Context) {
	snapshot := e.player.Clone()
	e.mu.Unlock()
	e.persist(ctx, snapshot)
}
