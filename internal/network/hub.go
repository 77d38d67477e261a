package network

import (
	"sync"

	"cyber-tower-defense/pkg/logger"
)

const sendBuffer = 64

// Hub занимается только рассылкой сообщений подписчикам. A subscriber whose
// channel is full misses the message.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan ServerMessage
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan ServerMessage),
	}
}

// Register создает личный канал для клиента. A previous channel under the
// same id is closed.
func (h *Hub) Register(clientID string) <-chan ServerMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.subscribers[clientID]; ok {
		close(old)
	}
	ch := make(chan ServerMessage, sendBuffer)
	h.subscribers[clientID] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[clientID]; ok {
		close(ch)
		delete(h.subscribers, clientID)
	}
}

// SendTo delivers msg to one subscriber. It reports false when the client is
// unknown or its queue is full.
func (h *Hub) SendTo(clientID string, msg ServerMessage) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ch, ok := h.subscribers[clientID]
	if !ok {
		return false
	}
	select {
	case ch <- msg:
		return true
	default:
		logger.Log.WithField("client_id", clientID).Warn("send queue full, message dropped")
		return false
	}
}

// Broadcast отправляет всем, never blocking on a slow client.
func (h *Hub) Broadcast(msg ServerMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
			logger.Log.WithField("client_id", id).Debug("broadcast dropped for slow client")
		}
	}
}

// Count возвращает количество активных подписчиков.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
