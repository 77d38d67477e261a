package network

import (
	"encoding/json"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/types"
)

// Client → server actions.
const (
	ActionPlaceTower   = "PLACE_TOWER"
	ActionPlaceTowerPx = "PLACE_TOWER_PX"
	ActionRemoveTower  = "REMOVE_TOWER"
	ActionMoveTower    = "MOVE_TOWER"
	ActionSelect       = "SELECT"
	ActionDeselect     = "DESELECT"
	ActionStart        = "START"
	ActionStop         = "STOP"
	ActionToggle       = "TOGGLE"
	ActionArena        = "ARENA"
	ActionSnapshot     = "SNAPSHOT"
	ActionCatalog      = "CATALOG"
)

// Server → client message types.
const (
	MsgUpdate  = "UPDATE"
	MsgCatalog = "CATALOG"
	MsgError   = "ERROR"
)

// Error codes carried by ERROR messages.
const (
	CodeBadRequest         = "bad_request"
	CodeUnknownAction      = "unknown_action"
	CodeUnknownTower       = "unknown_tower"
	CodeUnknownInstance    = "unknown_instance"
	CodeInsufficientBudget = "insufficient_budget"
	CodeInvalidPosition    = "invalid_position"
	CodeArenaUnknown       = "arena_unknown"
	CodeInternal           = "internal"
)

// ClientCommand — команда от клиента
type ClientCommand struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage — ответ сервера
type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type placePayload struct {
	TowerID string  `json:"towerId"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type instancePayload struct {
	InstanceID types.InstanceID `json:"instanceId"`
	X          float64          `json:"x"`
	Y          float64          `json:"y"`
}

type selectPayload struct {
	TowerID string `json:"towerId"`
}

// ErrorPayload is the body of an ERROR message.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CatalogPayload is the body of a CATALOG message.
type CatalogPayload struct {
	Towers  []defs.TowerDefinition `json:"towers"`
	Enemies []defs.EnemyDefinition `json:"enemies"`
}

func errorMessage(code, message string) ServerMessage {
	return ServerMessage{Type: MsgError, Payload: ErrorPayload{Code: code, Message: message}}
}

func catalogMessage(c *defs.Catalog) ServerMessage {
	return ServerMessage{Type: MsgCatalog, Payload: CatalogPayload{Towers: c.Towers(), Enemies: c.Enemies()}}
}

func (p placePayload) position() component.Position {
	return component.Position{X: p.X, Y: p.Y}
}
