package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMessage = 512
)

type Client struct {
	Conn      *websocket.Conn
	Message   chan *OutgoingMessage
	UserID    string
	CompanyID string
}

func (c *Client) writeMessage(hub *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Message:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				return
			}

		case <-hub.Done():
			return

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) readMessage(hub *Hub) {
	defer func() {
		select {
		case hub.Unregister <- c:
		case <-hub.Done():
		}
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessage)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, m, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).WithField("user_id", c.UserID).Warn("conexão websocket encerrada")
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(m, &msg); err != nil {
			log.WithField("user_id", c.UserID).Debug("mensagem websocket inválida")
			continue
		}

		if msg.Type == "ping" {
			select {
			case c.Message <- &OutgoingMessage{Type: EventPong, CompanyID: c.CompanyID, At: time.Now()}:
			default:
			}
		}
	}
}
