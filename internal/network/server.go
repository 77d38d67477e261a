package network

import (
	"encoding/json"
	"errors"
	"net/http"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/types"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Controller is the part of the engine the transport drives.
type Controller interface {
	PlaceTower(defID string, pos component.Position) (component.PlacedTower, error)
	PlaceTowerAtPixel(defID string, x, y float64) (component.PlacedTower, error)
	RemoveTower(id types.InstanceID) bool
	MoveTower(id types.InstanceID, pos component.Position) error
	SelectDefinition(id string) error
	Deselect()
	Start()
	Stop()
	Toggle()
	ReportArenaDimensions(width, height float64)
	Snapshot() app.Snapshot
	SessionID() string
}

type Server struct {
	Game    Controller
	Catalog *defs.Catalog
	Hub     *Hub
}

func NewServer(game Controller, catalog *defs.Catalog, hub *Hub) *Server {
	return &Server{
		Game:    game,
		Catalog: catalog,
		Hub:     hub,
	}
}

// Routes регистрирует эндпоинты
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	return mux
}

// BroadcastSnapshot pushes an UPDATE to every connected client. It is meant
// to be registered with Game.OnTick.
func (s *Server) BroadcastSnapshot(snap app.Snapshot) {
	s.Hub.Broadcast(ServerMessage{Type: MsgUpdate, Payload: snap})
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := NewClient(s, conn)
	client.Send = s.Hub.Register(client.ID)
	logger.Log.WithFields(logrus.Fields{
		"client_id": client.ID,
		"remote":    r.RemoteAddr,
	}).Info("client connected")

	s.Hub.SendTo(client.ID, catalogMessage(s.Catalog))
	s.Hub.SendTo(client.ID, ServerMessage{Type: MsgUpdate, Payload: s.Game.Snapshot()})

	go client.writePump()
	go client.readPump()
}

type health struct {
	Status  string          `json:"status"`
	Session string          `json:"session"`
	Phase   component.Phase `json:"phase"`
	Clients int             `json:"clients"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health{
		Status:  "ok",
		Session: snap.SessionID,
		Phase:   snap.Phase,
		Clients: s.Hub.Count(),
	}); err != nil {
		logger.Log.WithError(err).Warn("write health response")
	}
}

// Handle executes one command. Replies meant only for the sender are
// returned; state changes are broadcast to everyone.
func (s *Server) Handle(cmd ClientCommand) (reply *ServerMessage) {
	switch cmd.Action {
	case ActionPlaceTower:
		var p placePayload
		if err := decode(cmd.Payload, &p); err != nil {
			return badRequest(err)
		}
		if _, err := s.Game.PlaceTower(p.TowerID, p.position()); err != nil {
			return failure(err)
		}
	case ActionPlaceTowerPx:
		var p placePayload
		if err := decode(cmd.Payload, &p); err != nil {
			return badRequest(err)
		}
		if _, err := s.Game.PlaceTowerAtPixel(p.TowerID, p.X, p.Y); err != nil {
			return failure(err)
		}
	case ActionRemoveTower:
		var p instancePayload
		if err := decode(cmd.Payload, &p); err != nil {
			return badRequest(err)
		}
		if !s.Game.RemoveTower(p.InstanceID) {
			msg := errorMessage(CodeUnknownInstance, app.ErrUnknownInstance.Error())
			return &msg
		}
	case ActionMoveTower:
		var p instancePayload
		if err := decode(cmd.Payload, &p); err != nil {
			return badRequest(err)
		}
		if err := s.Game.MoveTower(p.InstanceID, component.Position{X: p.X, Y: p.Y}); err != nil {
			return failure(err)
		}
	case ActionSelect:
		var p selectPayload
		if err := decode(cmd.Payload, &p); err != nil {
			return badRequest(err)
		}
		if err := s.Game.SelectDefinition(p.TowerID); err != nil {
			return failure(err)
		}
	case ActionDeselect:
		s.Game.Deselect()
	case ActionStart:
		s.Game.Start()
	case ActionStop:
		s.Game.Stop()
	case ActionToggle:
		s.Game.Toggle()
	case ActionArena:
		var a component.Arena
		if err := decode(cmd.Payload, &a); err != nil {
			return badRequest(err)
		}
		s.Game.ReportArenaDimensions(a.Width, a.Height)
	case ActionSnapshot:
		return &ServerMessage{Type: MsgUpdate, Payload: s.Game.Snapshot()}
	case ActionCatalog:
		msg := catalogMessage(s.Catalog)
		return &msg
	default:
		msg := errorMessage(CodeUnknownAction, "unknown action "+cmd.Action)
		return &msg
	}

	s.BroadcastSnapshot(s.Game.Snapshot())
	return nil
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("missing payload")
	}
	return json.Unmarshal(raw, v)
}

func badRequest(err error) *ServerMessage {
	msg := errorMessage(CodeBadRequest, err.Error())
	return &msg
}

func failure(err error) *ServerMessage {
	code := CodeInternal
	switch {
	case errors.Is(err, defs.ErrUnknownTower):
		code = CodeUnknownTower
	case errors.Is(err, app.ErrInsufficientBudget):
		code = CodeInsufficientBudget
	case errors.Is(err, app.ErrInvalidPosition):
		code = CodeInvalidPosition
	case errors.Is(err, app.ErrArenaUnknown):
		code = CodeArenaUnknown
	case errors.Is(err, app.ErrUnknownInstance):
		code = CodeUnknownInstance
	}
	msg := errorMessage(code, err.Error())
	return &msg
}
