package socket

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"swipe_server/models"
	"swipe_server/services"

	"github.com/google/uuid"
	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"
)

const (
	namespace  = "/"
	eventJoin  = "join"
	eventMatch = "match"
)

// MatchEvent is pushed to each participant when a match is created.
type MatchEvent struct {
	MatchID   string `json:"match_id"`
	UserID    string `json:"user_id"`   // The other participant
	Timestamp string `json:"timestamp"` // RFC3339
}

// MatchHub is a Socket.IO server that delivers match notifications.
// Clients emit "join" with their profile id and receive "match" events.
type MatchHub struct {
	server   *socketio.Server
	profiles services.ProfileChecker
	logger   *zap.Logger
}

// NewMatchHub initializes the Socket.IO server and its handlers
func NewMatchHub(profiles services.ProfileChecker, logger *zap.Logger) *MatchHub {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &MatchHub{
		server:   socketio.NewServer(nil),
		profiles: profiles,
		logger:   logger.Named("socket"),
	}

	h.server.OnConnect(namespace, func(c socketio.Conn) error {
		h.logger.Debug("socket connected", zap.String("conn", c.ID()))
		return nil
	})

	h.server.OnEvent(namespace, eventJoin, func(c socketio.Conn, userID string) string {
		room, err := h.roomFor(userID)
		if err != nil {
			h.logger.Info("join rejected", zap.String("conn", c.ID()), zap.Error(err))
			return err.Error()
		}
		c.Join(room)
		h.logger.Debug("socket joined", zap.String("conn", c.ID()), zap.String("room", room))
		return "ok"
	})

	h.server.OnError(namespace, func(c socketio.Conn, err error) {
		h.logger.Warn("socket error", zap.Error(err))
	})

	h.server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		h.logger.Debug("socket disconnected", zap.String("conn", c.ID()), zap.String("reason", reason))
	})

	return h
}

// roomFor validates a join request and returns the room for that profile.
func (h *MatchHub) roomFor(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid user id %q", raw)
	}
	if h.profiles != nil && !h.profiles.Exists(id) {
		return "", fmt.Errorf("user %s not found", id)
	}
	return userRoom(id), nil
}

func userRoom(id uuid.UUID) string {
	return "user:" + id.String()
}

// NotifyMatch pushes the match to both participants' rooms.
func (h *MatchHub) NotifyMatch(_ context.Context, match models.Match) {
	for _, id := range []uuid.UUID{match.User1ID, match.User2ID} {
		other, _ := match.OtherUser(id)
		event := MatchEvent{
			MatchID:   match.MatchID.String(),
			UserID:    other.String(),
			Timestamp: match.Timestamp.Format(time.RFC3339),
		}
		if !h.server.BroadcastToRoom(namespace, userRoom(id), eventMatch, event) {
			h.logger.Warn("match broadcast failed", zap.Stringer("user", id))
		}
	}
}

// Handler serves the Socket.IO transport.
func (h *MatchHub) Handler() http.Handler {
	return h.server
}

// Serve accepts connections until Close is called.
func (h *MatchHub) Serve() error {
	return h.server.Serve()
}

// Close stops the server.
func (h *MatchHub) Close() error {
	return h.server.Close()
}
