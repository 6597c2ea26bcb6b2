package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/canteen-app/hub"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSController struct {
	Hub *hub.Hub
}

func NewWSController(h *hub.Hub) *WSController {
	return &WSController{Hub: h}
}

// joinMessage declares interest in a group: either all of a user's orders
// or one specific order. The hub takes the supplied id on trust.
type joinMessage struct {
	Type    string `json:"type"`
	UserID  uint   `json:"user_id,omitempty"`
	OrderID uint   `json:"order_id,omitempty"`
}

// Handle upgrades the connection and keeps reading join messages until
// the client goes away. Staff connections are addressed by role and need
// no explicit join for new-order events.
func (wc *WSController) Handle(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := roleInterface.(string)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	wc.Hub.Register(ws, role)
	defer wc.Hub.Unregister(ws)

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var msg joinMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "join" {
			continue
		}

		if msg.OrderID != 0 {
			wc.Hub.JoinOrder(ws, msg.OrderID)
		} else if msg.UserID != 0 {
			wc.Hub.JoinUser(ws, msg.UserID)
		}
	}
}
