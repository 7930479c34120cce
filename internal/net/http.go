package net

import (
	"encoding/json"
	"log"
	nethttp "net/http"
	"time"

	"pokecasino/server/internal/hub"
)

// HTTPHandlerConfig wires the HTTP surface.
type HTTPHandlerConfig struct {
	ClientDir string
	Logger    *log.Logger
	WS        *WSHandler
}

// NewHTTPHandler builds the full route table: health, a polling state
// endpoint, the websocket upgrade, and the static client.
func NewHTTPHandler(h *hub.Hub, cfg HTTPHandlerConfig) nethttp.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/state", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodGet {
			nethttp.Error(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}

		listings, refreshAt := h.Listings()
		payload := struct {
			Status     string `json:"status"`
			ServerTime int64  `json:"serverTime"`
			Player     any    `json:"player"`
			Listings   any    `json:"listings"`
			RefreshAt  int64  `json:"refreshAt"`
		}{
			Status:     "ok",
			ServerTime: time.Now().UnixMilli(),
			Player:     h.Engine().Snapshot(),
			Listings:   listings,
			RefreshAt:  refreshAt.UnixMilli(),
		}

		data, err := json.Marshal(payload)
		if err != nil {
			logger.Printf("state endpoint: encode failed: %v", err)
			nethttp.Error(w, "failed to encode", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	if cfg.WS != nil {
		mux.HandleFunc("/ws", cfg.WS.Handle)
	}

	if cfg.ClientDir != "" {
		mux.Handle("/", nethttp.FileServer(nethttp.Dir(cfg.ClientDir)))
	}

	return mux
}
