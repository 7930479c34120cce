package hub

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"pokecasino/server/internal/game"
	"pokecasino/server/internal/market"
	"pokecasino/server/internal/state"
	"pokecasino/server/logging"
	marketlog "pokecasino/server/logging/market"
)

// writeWait bounds how long a broadcast may block on a single subscriber.
const writeWait = 10 * time.Second

// Config wires a hub's collaborators. BatchSize zero means the default
// batch size.
type Config struct {
	Engine    *game.Engine
	Generator *market.Generator
	Interval  time.Duration
	BatchSize int
	Publisher logging.Publisher
}

// Hub owns the live market batch and every connected session. The engine
// owns the profile; the hub owns what is for sale and who is listening.
type Hub struct {
	mu        sync.Mutex
	engine    *game.Engine
	generator *market.Generator
	filter    market.Filter
	batch     []state.CreatureInstance
	refreshAt time.Time

	subscribers map[uint64]*subscriber
	nextSub     atomic.Uint64
	seq         atomic.Uint64

	interval  time.Duration
	batchSize int
	publisher logging.Publisher
}

type subscriber struct {
	id   uint64
	conn *websocket.Conn
	mu   sync.Mutex
}

// New creates a hub with an empty batch. Run populates the first one.
func New(cfg Config) *Hub {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = market.BatchSize
	}
	return &Hub{
		engine:      cfg.Engine,
		generator:   cfg.Generator,
		subscribers: make(map[uint64]*subscriber),
		interval:    interval,
		batchSize:   batchSize,
		publisher:   publisher,
	}
}

// Engine exposes the profile engine for command dispatch.
func (h *Hub) Engine() *game.Engine {
	return h.engine
}

// Run regenerates the batch on the countdown until the context ends. The
// first batch is generated immediately.
func (h *Hub) Run(ctx context.Context) {
	h.rollBatch(ctx, h.Filter(), false)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.rollBatch(ctx, h.Filter(), false)
		}
	}
}

// Listings returns a copy of the current batch and the next natural
// refresh time.
func (h *Hub) Listings() ([]state.CreatureInstance, time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	batch := make([]state.CreatureInstance, len(h.batch))
	for i, listing := range h.batch {
		batch[i] = listing.Clone()
	}
	return batch, h.refreshAt
}

// Filter returns the active market filter.
func (h *Hub) Filter() market.Filter {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.filter
}

// ForceRefresh charges the filter-dependent refresh cost and rolls a new
// batch with the given filter immediately. The countdown is not reset; the
// natural refresh stays free.
func (h *Hub) ForceRefresh(ctx context.Context, filter market.Filter) error {
	cost := market.RefreshCost(filter)
	if err := h.engine.Charge(ctx, cost, "market_refresh"); err != nil {
		marketlog.RefreshDenied(ctx, h.publisher, h.seq.Add(1), h.systemRef(),
			marketlog.DeniedPayload{Cost: cost, Reason: string(game.DenialReason(err))}, nil)
		return err
	}
	marketlog.RefreshCharged(ctx, h.publisher, h.seq.Add(1), h.systemRef(),
		marketlog.RefreshPayload{Cost: cost, Balance: h.engine.Snapshot().Credits}, nil)
	h.rollBatch(ctx, filter, true)
	return nil
}

// Buy purchases a listing out of the current batch by UID. The listing
// leaves the batch only when the engine accepts the purchase.
func (h *Hub) Buy(ctx context.Context, uid string) (state.CreatureInstance, error) {
	h.mu.Lock()
	index := -1
	for i := range h.batch {
		if h.batch[i].UID == uid {
			index = i
			break
		}
	}
	if index < 0 {
		h.mu.Unlock()
		return state.CreatureInstance{}, &game.Denial{Reason: game.ReasonNotFound, Subject: uid}
	}
	listing := h.batch[index].Clone()
	h.mu.Unlock()

	if err := h.engine.BuyListing(ctx, listing); err != nil {
		return state.CreatureInstance{}, err
	}

	h.mu.Lock()
	for i := range h.batch {
		if h.batch[i].UID == uid {
			h.batch = append(h.batch[:i], h.batch[i+1:]...)
			break
		}
	}
	h.mu.Unlock()

	h.Broadcast(ctx)
	return listing, nil
}

func (h *Hub) rollBatch(ctx context.Context, filter market.Filter, forced bool) {
	batch, err := h.generator.Generate(ctx, h.batchSize, filter)
	if err != nil {
		log.Printf("market generation degraded: %v", err)
	}

	h.mu.Lock()
	h.filter = filter
	h.batch = batch
	h.refreshAt = time.Now().Add(h.interval)
	h.mu.Unlock()

	payload := marketlog.BatchPayload{Requested: h.batchSize, Produced: len(batch), Forced: forced}
	if len(batch) < h.batchSize {
		marketlog.BatchShort(ctx, h.publisher, h.seq.Add(1), h.systemRef(), payload, nil)
	} else {
		marketlog.BatchGenerated(ctx, h.publisher, h.seq.Add(1), h.systemRef(), payload, nil)
	}

	h.Broadcast(ctx)
}

func (h *Hub) systemRef() logging.EntityRef {
	return logging.EntityRef{ID: "market", Kind: logging.EntityKindSystem}
}

// Subscribe registers a connection for state pushes and immediately sends
// it the current snapshot.
func (h *Hub) Subscribe(conn *websocket.Conn) uint64 {
	sub := &subscriber{id: h.nextSub.Add(1), conn: conn}
	h.mu.Lock()
	h.subscribers[sub.id] = sub
	h.mu.Unlock()

	if data, err := json.Marshal(h.stateMessage()); err == nil {
		sub.write(data)
	}
	return sub.id
}

// Send writes a payload to a single subscriber, serialized against
// broadcasts on the same connection.
func (h *Hub) Send(id uint64, data []byte) error {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	h.mu.Unlock()
	if !ok {
		return errors.New("unknown session")
	}
	return sub.write(data)
}

// Unsubscribe drops a connection. The caller closes it.
func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	delete(h.subscribers, id)
	h.mu.Unlock()
}

// Broadcast pushes the latest profile and market snapshot to every
// subscriber. Write failures drop the subscriber.
func (h *Hub) Broadcast(_ context.Context) {
	data, err := json.Marshal(h.stateMessage())
	if err != nil {
		log.Printf("failed to marshal state message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		if err := sub.write(data); err != nil {
			log.Printf("failed to push state to session %d: %v", sub.id, err)
			h.Unsubscribe(sub.id)
			sub.conn.Close()
		}
	}
}

func (h *Hub) stateMessage() StateMessage {
	listings, refreshAt := h.Listings()
	return StateMessage{
		Type:       "state",
		Player:     h.engine.Snapshot(),
		Listings:   listings,
		RefreshAt:  refreshAt.UnixMilli(),
		ServerTime: time.Now().UnixMilli(),
	}
}

func (s *subscriber) write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}
