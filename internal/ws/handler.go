package ws

import (
	"net/http"
	"time"

	"logiflow/internal/get_token"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	hub *Hub
}

func NewWsHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWs godoc
// @Summary Notificações em tempo real.
// @Description Abre um websocket que recebe os eventos da empresa (sincronização, rotas).
// @Tags Websocket
// @Param token query string true "Token de acesso"
// @Param company_id query string true "ID da empresa"
// @Success 101 {string} string "Switching Protocols"
// @Router /ws [get]
func (h *Handler) HandleWs(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.WithError(err).Warn("erro ao abrir websocket")
		return nil
	}

	cl := &Client{
		Conn:      conn,
		Message:   make(chan *OutgoingMessage, 16),
		UserID:    payload.UserID.String(),
		CompanyID: payload.CompanyID.String(),
	}

	cl.Message <- &OutgoingMessage{Type: EventConnected, CompanyID: cl.CompanyID, At: time.Now().UTC()}

	select {
	case h.hub.Register <- cl:
	case <-h.hub.Done():
		_ = conn.Close()
		return nil
	}

	go cl.writeMessage(h.hub)
	cl.readMessage(h.hub)

	return nil
}
