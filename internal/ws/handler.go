package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/jacobaustin123/othello/internal/models"
	"github.com/jacobaustin123/othello/internal/othello"
	"github.com/jacobaustin123/othello/internal/repository"
	"github.com/jacobaustin123/othello/internal/services"
)

const requestTimeout = 2 * time.Second

// Handler plays games over a single websocket connection.
type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "move_request":
		return h.handleMoveRequest(req)
	case "state_request":
		return h.handleStateRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection. Game-level errors are reported
// to the client; only transport errors end the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			respData = &Outgoing{ID: req.ID, Error: err.Error()}
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleMoveRequest(req *Incoming) (*Outgoing, error) {
	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	action, err := models.MoveRequest{Move: reqData.Move}.Action()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	game, err := repo.Get(ctx, reqData.GameID)
	if err != nil {
		return nil, err
	}

	state, err := game.State()
	if err != nil {
		return nil, err
	}

	// The engine trusts its caller on passes, so screen client actions
	// against the offered action set before applying.
	if !state.IsActionLegal(action) {
		return nil, fmt.Errorf("%w: %s", othello.ErrInvalidMove, reqData.Move)
	}

	if err = state.ApplyAction(action); err != nil {
		return nil, err
	}

	game.Moves = append(game.Moves, action)

	if state.IsTerminal() {
		archive := repository.NewArchiveRepositoryFromServices(h.services)
		if err = archive.SaveGame(ctx, models.NewArchivedGame(game, state)); err != nil {
			return nil, err
		}

		if err = repo.Delete(ctx, game.ID); err != nil {
			slog.Warn("Failed to delete archived live game", "id", game.ID, "error", err)
		}
	} else if err = repo.Save(ctx, game); err != nil {
		return nil, err
	}

	outgoing := &Outgoing{
		ID:   req.ID,
		Data: StateResponse{Game: models.NewGameResponse(game.ID, game.Moves, state)},
	}

	return outgoing, nil
}

func (h *Handler) handleStateRequest(req *Incoming) (*Outgoing, error) {
	var reqData StateRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws state request unmarshal error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	repo := repository.NewGameRepositoryFromServices(h.services)

	game, err := repo.Get(ctx, reqData.GameID)
	if err != nil {
		return nil, err
	}

	resp, err := game.Response()
	if err != nil {
		return nil, err
	}

	outgoing := &Outgoing{
		ID:   req.ID,
		Data: StateResponse{Game: resp},
	}

	return outgoing, nil
}
