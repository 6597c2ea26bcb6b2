package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/canteen-app/models"
)

// Event types
const (
	EventNewOrder      = "new_order"
	EventStatusChanged = "status_changed"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Conn is the part of *websocket.Conn the hub writes to. Tests subscribe
// in-memory fakes through the same interface.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type client struct {
	role   string
	users  map[uint]struct{}
	orders map[uint]struct{}
}

// Hub fans events out to live connections. Delivery is best effort: a
// failed write is logged and skipped, nothing is buffered or replayed.
// Disconnected clients recover by re-fetching state over HTTP.
type Hub struct {
	mutex   sync.Mutex
	clients map[Conn]*client
}

func New() *Hub {
	return &Hub{
		clients: make(map[Conn]*client),
	}
}

// Register adds a connection. Staff connections receive every new-order
// event without joining anything.
func (h *Hub) Register(conn Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = &client{
		role:   role,
		users:  make(map[uint]struct{}),
		orders: make(map[uint]struct{}),
	}
}

func (h *Hub) Unregister(conn Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// JoinUser subscribes the connection to status changes for every order
// owned by userID. The id is taken on trust; the page serving the socket
// already gated access.
func (h *Hub) JoinUser(conn Conn, userID uint) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if cl, ok := h.clients[conn]; ok {
		cl.users[userID] = struct{}{}
	}
}

// JoinOrder subscribes the connection to a single order's status changes,
// used by the token tracking page.
func (h *Hub) JoinOrder(conn Conn, orderID uint) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if cl, ok := h.clients[conn]; ok {
		cl.orders[orderID] = struct{}{}
	}
}

// NewOrder announces a freshly placed order to all staff connections.
func (h *Hub) NewOrder(order models.Order) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(Message{Event: EventNewOrder, Data: order})
	if err != nil {
		log.Printf("Error marshaling new order event: %v", err)
		return
	}

	for conn, cl := range h.clients {
		if cl.role == models.RoleStaff {
			h.write(conn, data)
		}
	}
}

// StatusChanged notifies the owning user's group and the order's own
// group. A connection in both groups still receives a single message.
func (h *Hub) StatusChanged(order models.Order) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := json.Marshal(Message{Event: EventStatusChanged, Data: order})
	if err != nil {
		log.Printf("Error marshaling status change event: %v", err)
		return
	}

	for conn, cl := range h.clients {
		_, byUser := cl.users[order.UserID]
		_, byOrder := cl.orders[order.ID]
		if byUser || byOrder {
			h.write(conn, data)
		}
	}
}

func (h *Hub) write(conn Conn, data []byte) {
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("Error sending message to client: %v", err)
	}
}
