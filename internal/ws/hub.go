package ws

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Hub struct {
	Companies  map[string]map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *OutgoingMessage
	Mu         *sync.RWMutex
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Companies:  make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan *OutgoingMessage, 64),
		Mu:         &sync.RWMutex{},
		done:       make(chan struct{}),
	}
}

// Run owns client registration and fan-out until ctx is done.
// On exit every open connection is closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.Mu.Lock()
			for companyID, clients := range h.Companies {
				for cl := range clients {
					if cl.Conn != nil {
						_ = cl.Conn.Close()
					}
				}
				delete(h.Companies, companyID)
			}
			h.Mu.Unlock()
			return

		case cl := <-h.Register:
			h.Mu.Lock()
			if _, ok := h.Companies[cl.CompanyID]; !ok {
				h.Companies[cl.CompanyID] = make(map[*Client]bool)
			}
			h.Companies[cl.CompanyID][cl] = true
			h.Mu.Unlock()

		case cl := <-h.Unregister:
			h.Mu.Lock()
			if clients, ok := h.Companies[cl.CompanyID]; ok {
				if _, ok := clients[cl]; ok {
					delete(clients, cl)
					close(cl.Message)
				}
				if len(clients) == 0 {
					delete(h.Companies, cl.CompanyID)
				}
			}
			h.Mu.Unlock()

		case m := <-h.Broadcast:
			h.Mu.RLock()
			for cl := range h.Companies[m.CompanyID] {
				select {
				case cl.Message <- m:
				default:
					log.WithFields(log.Fields{"user_id": cl.UserID, "company_id": m.CompanyID}).
						Warn("cliente lento, mensagem descartada")
				}
			}
			h.Mu.RUnlock()
		}
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// ClientCount reports how many connections a company has.
func (h *Hub) ClientCount(companyID string) int {
	h.Mu.RLock()
	defer h.Mu.RUnlock()
	return len(h.Companies[companyID])
}
