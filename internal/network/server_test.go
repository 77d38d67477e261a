package network

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/clock"
	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/defs"

	"github.com/gorilla/websocket"
)

type rawMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestServer(t *testing.T) (*Server, *app.Game) {
	t.Helper()
	catalog := defs.MustDefaultCatalog()
	g, err := app.NewGame(app.Options{
		Catalog:       catalog,
		Clock:         clock.NewManual(time.Unix(1_700_000_000, 0)),
		Seed:          7,
		InitialBudget: 1_000_000,
		Arena:         component.Arena{Width: 1000, Height: 800},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(g, catalog, NewHub()), g
}

func command(action string, payload any) ClientCommand {
	cmd := ClientCommand{Action: action}
	if payload != nil {
		cmd.Payload, _ = json.Marshal(payload)
	}
	return cmd
}

func errorCode(t *testing.T, msg *ServerMessage) string {
	t.Helper()
	if msg == nil || msg.Type != MsgError {
		t.Fatalf("reply = %+v, want an error", msg)
	}
	return msg.Payload.(ErrorPayload).Code
}

func TestHandleCommands(t *testing.T) {
	s, g := newTestServer(t)
	updates := s.Hub.Register("watcher")

	if reply := s.Handle(command(ActionPlaceTower, map[string]any{"towerId": "firewall", "x": 50, "y": 50})); reply != nil {
		t.Fatalf("place reply = %+v", reply)
	}
	msg := <-updates
	snap := msg.Payload.(app.Snapshot)
	if msg.Type != MsgUpdate || len(snap.Towers) != 1 || snap.Budget != 750_000 {
		t.Fatalf("broadcast = %s with %d towers, budget %d", msg.Type, len(snap.Towers), snap.Budget)
	}

	id := snap.Towers[0].InstanceID
	if reply := s.Handle(command(ActionMoveTower, map[string]any{"instanceId": id, "x": 20, "y": 30})); reply != nil {
		t.Fatalf("move reply = %+v", reply)
	}
	<-updates
	if reply := s.Handle(command(ActionRemoveTower, map[string]any{"instanceId": id})); reply != nil {
		t.Fatalf("remove reply = %+v", reply)
	}
	if snap := (<-updates).Payload.(app.Snapshot); snap.Budget != 1_000_000 {
		t.Errorf("budget after removal = %d", snap.Budget)
	}

	s.Handle(command(ActionStart, nil))
	if g.Phase() != component.Running {
		t.Errorf("phase after START = %s", g.Phase())
	}
	s.Handle(command(ActionToggle, nil))
	if g.Phase() != component.Idle {
		t.Errorf("phase after TOGGLE = %s", g.Phase())
	}

	if reply := s.Handle(command(ActionSnapshot, nil)); reply == nil || reply.Type != MsgUpdate {
		t.Errorf("SNAPSHOT reply = %+v", reply)
	}
	reply := s.Handle(command(ActionCatalog, nil))
	if reply == nil || len(reply.Payload.(CatalogPayload).Towers) == 0 {
		t.Errorf("CATALOG reply = %+v", reply)
	}
}

func TestHandleErrors(t *testing.T) {
	s, g := newTestServer(t)

	cases := []struct {
		name string
		cmd  ClientCommand
		code string
	}{
		{"unknown action", command("LAUNCH", nil), CodeUnknownAction},
		{"missing payload", command(ActionPlaceTower, nil), CodeBadRequest},
		{"malformed payload", ClientCommand{Action: ActionSelect, Payload: json.RawMessage(`[1]`)}, CodeBadRequest},
		{"unknown tower", command(ActionPlaceTower, map[string]any{"towerId": "quantum", "x": 1, "y": 1}), CodeUnknownTower},
		{"affordable", command(ActionPlaceTower, map[string]any{"towerId": "ids", "x": 1, "y": 1}), ""},
		{"outside arena", command(ActionPlaceTower, map[string]any{"towerId": "mfa", "x": -1, "y": 1}), CodeInvalidPosition},
		{"unknown instance", command(ActionRemoveTower, map[string]any{"instanceId": 99}), CodeUnknownInstance},
		{"unknown selection", command(ActionSelect, map[string]any{"towerId": "quantum"}), CodeUnknownTower},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reply := s.Handle(tc.cmd)
			if tc.code == "" {
				if reply != nil {
					t.Fatalf("reply = %+v", reply)
				}
				return
			}
			if got := errorCode(t, reply); got != tc.code {
				t.Errorf("code = %q, want %q", got, tc.code)
			}
		})
	}

	for i := 0; i < 2; i++ {
		s.Handle(command(ActionPlaceTower, map[string]any{"towerId": "ids", "x": 10 + i*30, "y": 10}))
	}
	reply := s.Handle(command(ActionPlaceTower, map[string]any{"towerId": "ids", "x": 90, "y": 10}))
	if got := errorCode(t, reply); got != CodeInsufficientBudget {
		t.Errorf("code = %q, want insufficient_budget", got)
	}
	if n := len(g.Snapshot().Towers); n != 2 {
		t.Errorf("towers = %d, want 2", n)
	}

	s.Handle(command(ActionArena, map[string]any{"width": 0, "height": 0}))
	reply = s.Handle(command(ActionPlaceTowerPx, map[string]any{"towerId": "mfa", "x": 5, "y": 5}))
	if got := errorCode(t, reply); got != CodeArenaUnknown {
		t.Errorf("code = %q, want arena_unknown", got)
	}
}

func TestWebsocketSession(t *testing.T) {
	s, _ := newTestServer(t)
	srv := httptest.NewServer(s.Routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	read := func() rawMessage {
		t.Helper()
		var msg rawMessage
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		return msg
	}

	if msg := read(); msg.Type != MsgCatalog {
		t.Fatalf("first message = %s, want CATALOG", msg.Type)
	}
	if msg := read(); msg.Type != MsgUpdate {
		t.Fatalf("second message = %s, want UPDATE", msg.Type)
	}

	if err := conn.WriteJSON(command(ActionPlaceTowerPx, map[string]any{"towerId": "ssl", "x": 500, "y": 400})); err != nil {
		t.Fatal(err)
	}
	msg := read()
	var snap app.Snapshot
	if err := json.Unmarshal(msg.Payload, &snap); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MsgUpdate || len(snap.Towers) != 1 {
		t.Fatalf("got %s with %d towers", msg.Type, len(snap.Towers))
	}
	if p := snap.Towers[0].Position; p.X != 50 || p.Y != 50 {
		t.Errorf("position = %+v", p)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	msg = read()
	var e ErrorPayload
	_ = json.Unmarshal(msg.Payload, &e)
	if msg.Type != MsgError || e.Code != CodeBadRequest {
		t.Errorf("got %s %+v, want bad_request", msg.Type, e)
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var h health
	if err := json.Unmarshal(rec.Body.Bytes(), &h); err != nil {
		t.Fatal(err)
	}
	if h.Status != "ok" || h.Phase != component.Idle || h.Session == "" {
		t.Errorf("health = %+v", h)
	}
}
