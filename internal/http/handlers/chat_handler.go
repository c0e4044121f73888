// README: Chat handlers: history, send, and the websocket room endpoint.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Harshdalal22/ssktrucker/internal/modules/chat"
	"github.com/Harshdalal22/ssktrucker/internal/types"
)

const pongWait = 60 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ChatHandler struct {
	chat   *chat.Service
	hub    *chat.Hub
	logger *zap.Logger
}

func NewChatHandler(svc *chat.Service, hub *chat.Hub, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{chat: svc, hub: hub, logger: logger}
}

func (h *ChatHandler) History(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}
	msgs, err := h.chat.History(c.Request.Context(), types.ID(id))
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"messages": msgs})
}

type sendMessageReq struct {
	SenderRole string `json:"sender_role"`
	Text       string `json:"text"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	id := c.Param("id")
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	msg, err := h.chat.Send(c.Request.Context(), types.ID(id), chat.Role(req.SenderRole), req.Text)
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, msg)
}

// ServeWS upgrades the connection and parks it in the booking's room until
// the peer goes away. Inbound frames are ignored; sending goes through the
// REST endpoint so history and delivery stay consistent.
func (h *ChatHandler) ServeWS(c *gin.Context) {
	id := types.ID(c.Param("id"))
	if id.IsZero() {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Subscribe(id, conn)
	defer func() {
		h.hub.Unsubscribe(id, conn)
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}
