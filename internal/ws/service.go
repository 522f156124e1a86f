package ws

import (
	"time"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	hub *Hub
	now func() time.Time
}

func NewWsService(hub *Hub) *Service {
	return &Service{hub: hub, now: time.Now}
}

// Broadcast queues a message for every client of the company. It never blocks
// the caller; a full queue drops the message.
func (s *Service) Broadcast(companyID string, eventType string, data any) {
	message := &OutgoingMessage{
		Type:      eventType,
		CompanyID: companyID,
		At:        s.now().UTC(),
		Payload:   data,
	}

	select {
	case s.hub.Broadcast <- message:
	default:
		log.WithFields(log.Fields{"company_id": companyID, "type": eventType}).Warn("fila de notificações cheia")
	}
}
