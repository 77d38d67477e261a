package network

import (
	"testing"

	"cyber-tower-defense/pkg/logger"
)

func init() {
	logger.Silence()
}

func TestHubBroadcastAndSendTo(t *testing.T) {
	h := NewHub()
	a := h.Register("a")
	b := h.Register("b")

	h.Broadcast(ServerMessage{Type: MsgUpdate})
	if msg := <-a; msg.Type != MsgUpdate {
		t.Errorf("a got %q", msg.Type)
	}
	if msg := <-b; msg.Type != MsgUpdate {
		t.Errorf("b got %q", msg.Type)
	}

	if !h.SendTo("a", ServerMessage{Type: MsgError}) {
		t.Fatal("SendTo a failed")
	}
	if len(b) != 0 {
		t.Error("unicast leaked to b")
	}
	if h.SendTo("ghost", ServerMessage{Type: MsgError}) {
		t.Error("SendTo unknown client reported success")
	}
}

func TestHubDropsForFullQueue(t *testing.T) {
	h := NewHub()
	ch := h.Register("slow")
	for i := 0; i < sendBuffer+10; i++ {
		h.Broadcast(ServerMessage{Type: MsgUpdate})
	}
	if len(ch) != sendBuffer {
		t.Errorf("queue length = %d, want %d", len(ch), sendBuffer)
	}
	if h.SendTo("slow", ServerMessage{Type: MsgError}) {
		t.Error("SendTo into a full queue reported success")
	}
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	ch := h.Register("a")
	h.Unregister("a")
	if _, ok := <-ch; ok {
		t.Error("channel still open after Unregister")
	}
	if h.Count() != 0 {
		t.Errorf("Count = %d", h.Count())
	}
	h.Unregister("a")

	old := h.Register("b")
	h.Register("b")
	if _, ok := <-old; ok {
		t.Error("re-registering did not close the previous channel")
	}
	if h.Count() != 1 {
		t.Errorf("Count = %d", h.Count())
	}
}
