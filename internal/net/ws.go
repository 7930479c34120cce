package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	nethttp "net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"pokecasino/server/internal/catalog"
	"pokecasino/server/internal/game"
	"pokecasino/server/internal/hub"
	"pokecasino/server/internal/market"
	"pokecasino/server/internal/minigames"
	"pokecasino/server/logging"
	networklog "pokecasino/server/logging/network"
)

var errUnknownCommand = errors.New("unknown command")

// WSHandler upgrades connections and runs the per-session command loop.
type WSHandler struct {
	hub       *hub.Hub
	logger    *log.Logger
	publisher logging.Publisher
	upgrader  websocket.Upgrader
	seq       atomic.Uint64
}

type WSHandlerConfig struct {
	Logger    *log.Logger
	Publisher logging.Publisher
}

func NewWSHandler(h *hub.Hub, cfg WSHandlerConfig) *WSHandler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	return &WSHandler{
		hub:       h,
		logger:    logger,
		publisher: publisher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

func (h *WSHandler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}

	ctx := r.Context()
	remote := r.RemoteAddr
	subID := h.hub.Subscribe(conn)
	networklog.SessionOpened(ctx, h.publisher, h.seq.Add(1), h.sessionRef(subID),
		networklog.SessionPayload{RemoteAddr: remote}, nil)

	session := &session{handler: h, id: subID}
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			h.hub.Unsubscribe(subID)
			conn.Close()
			networklog.SessionClosed(ctx, h.publisher, h.seq.Add(1), h.sessionRef(subID),
				networklog.SessionPayload{RemoteAddr: remote, Reason: err.Error()}, nil)
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed message: %v", err)
			networklog.CommandRejected(ctx, h.publisher, h.seq.Add(1), h.sessionRef(subID),
				networklog.CommandRejectedPayload{Command: "?", Reason: "malformed"}, nil)
			continue
		}

		result, err := h.dispatch(ctx, msg)
		if err != nil {
			reason := string(game.DenialReason(err))
			if reason == "" {
				reason = err.Error()
			}
			if errors.Is(err, errUnknownCommand) {
				networklog.CommandRejected(ctx, h.publisher, h.seq.Add(1), h.sessionRef(subID),
					networklog.CommandRejectedPayload{Command: msg.Type, Reason: reason}, nil)
			}
			session.send(rejectMessage{Type: "reject", Seq: msg.Seq, Cmd: msg.Type, Reason: reason})
			continue
		}

		session.send(ackMessage{Type: "ack", Seq: msg.Seq, Cmd: msg.Type, Result: result})
	}
}

func (h *WSHandler) sessionRef(id uint64) logging.EntityRef {
	return logging.EntityRef{ID: fmt.Sprintf("session-%d", id), Kind: logging.EntityKindSystem}
}

// dispatch maps a command envelope onto an engine or hub operation. The
// returned result, if any, rides back on the ack.
func (h *WSHandler) dispatch(ctx context.Context, msg clientMessage) (any, error) {
	engine := h.hub.Engine()

	switch msg.Type {
	case "pick_starter":
		creature, err := engine.PickStarter(ctx, msg.Starter)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return creature, nil

	case "buy_listing":
		return h.hub.Buy(ctx, msg.UID)

	case "sell_creature":
		proceeds, err := engine.SellCreature(ctx, msg.UID)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return sellResult{Proceeds: proceeds}, nil

	case "buy_item":
		if err := engine.BuyItem(ctx, catalog.ItemID(msg.Item)); err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return nil, nil

	case "sell_item":
		proceeds, err := engine.SellItem(ctx, catalog.ItemID(msg.Item))
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return sellResult{Proceeds: proceeds}, nil

	case "toggle_equip":
		equipped, err := engine.ToggleEquip(ctx, msg.UID)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return equipResult{Equipped: equipped}, nil

	case "give_item":
		if err := engine.GiveItem(ctx, msg.UID, catalog.ItemID(msg.Item)); err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return nil, nil

	case "take_item":
		item, err := engine.TakeItem(ctx, msg.UID)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return takeItemResult{Item: string(item)}, nil

	case "transition_info":
		return engine.AvailableTransition(ctx, msg.UID)

	case "evolve":
		if err := engine.Evolve(ctx, msg.UID); err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return nil, nil

	case "mega_evolve":
		if err := engine.MegaEvolve(ctx, msg.UID); err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return nil, nil

	case "change_form":
		if err := engine.ChangeForm(ctx, msg.UID, catalog.SpeciesID(msg.Target)); err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return nil, nil

	case "fuse":
		if err := engine.Fuse(ctx, msg.UID, msg.Partner); err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return nil, nil

	case "market_refresh":
		filter, err := parseFilter(msg.Filter)
		if err != nil {
			return nil, err
		}
		return nil, h.hub.ForceRefresh(ctx, filter)

	case "roulette":
		pick, ok := minigames.ParseRouletteColor(msg.Pick)
		if !ok {
			return nil, &game.Denial{Reason: game.ReasonInvalidWager, Subject: msg.Pick}
		}
		result, err := engine.PlayRoulette(ctx, msg.Wager, pick)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return result, nil

	case "slots":
		result, err := engine.PlaySlots(ctx, msg.Wager)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return result, nil

	case "rocket_start":
		round, err := engine.StartRocket(ctx, msg.Wager)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return rocketStakeResult{Round: round}, nil

	case "rocket_cashout":
		multiplier, won, err := engine.CashOutRocket(ctx, msg.Round, msg.Elapsed)
		if err != nil {
			return nil, err
		}
		h.hub.Broadcast(ctx)
		return rocketCashOutResult{Multiplier: multiplier, Won: won}, nil

	case "rocket_abandon":
		engine.AbandonRocket(msg.Round)
		return nil, nil

	default:
		return nil, errUnknownCommand
	}
}

func parseFilter(payload *filterPayload) (market.Filter, error) {
	var filter market.Filter
	if payload == nil {
		return filter, nil
	}
	if payload.Class != "" {
		class, ok := catalog.ParseClass(payload.Class)
		if !ok {
			return filter, &game.Denial{Reason: game.ReasonNotFound, Subject: payload.Class}
		}
		filter.Class = class
	}
	if payload.Bonus != "" {
		bonus, ok := catalog.ParseBonusCategory(payload.Bonus)
		if !ok {
			return filter, &game.Denial{Reason: game.ReasonNotFound, Subject: payload.Bonus}
		}
		filter.Bonus = bonus
	}
	filter.Generation = payload.Generation
	for _, raw := range payload.Types {
		elem, ok := catalog.ParseElementType(raw)
		if !ok {
			return filter, &game.Denial{Reason: game.ReasonNotFound, Subject: raw}
		}
		filter.Types = append(filter.Types, elem)
	}
	if payload.Group != "" {
		group, ok := catalog.ParseGroup(payload.Group)
		if !ok {
			return filter, &game.Denial{Reason: game.ReasonNotFound, Subject: payload.Group}
		}
		filter.Group = group
	}
	return filter, nil
}

// session routes ack/reject replies through the hub's per-connection
// write lock so they never interleave with a broadcast frame.
type session struct {
	handler *WSHandler
	id      uint64
}

func (s *session) send(message any) {
	data, err := json.Marshal(message)
	if err != nil {
		s.handler.logger.Printf("failed to marshal reply: %v", err)
		return
	}
	if err := s.handler.hub.Send(s.id, data); err != nil {
		s.handler.logger.Printf("failed to send reply: %v", err)
	}
}
