package network

import (
	"encoding/json"
	"net/http"
	"time"

	"cyber-tower-defense/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и движком
type Client struct {
	ID     string
	Server *Server
	Conn   *websocket.Conn
	Send   <-chan ServerMessage
}

func NewClient(server *Server, conn *websocket.Conn) *Client {
	return &Client{
		ID:     uuid.NewString(),
		Server: server,
		Conn:   conn,
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	log := logger.Log.WithField("client_id", c.ID)
	defer func() {
		c.Server.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Debug("failed to close websocket connection")
		}
		log.Info("client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Warn("websocket read error")
			}
			return
		}

		var cmd ClientCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			c.Server.Hub.SendTo(c.ID, *badRequest(err))
			continue
		}
		log.WithField("action", cmd.Action).Debug("command received")
		if reply := c.Server.Handle(cmd); reply != nil {
			c.Server.Hub.SendTo(c.ID, *reply)
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	log := logger.Log.WithField("client_id", c.ID)
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
