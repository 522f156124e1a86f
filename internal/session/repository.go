package session

import "logiflow/internal/localstore"

type InterfaceRepository interface {
	SaveSessionData(key, value string) error
	GetSessionData(key string) (string, error)
	DeleteSessionData(key string) error
}

type Repository struct {
	Store *localstore.Store
}

func NewSessionRepository(store *localstore.Store) *Repository {
	return &Repository{Store: store}
}

func (r *Repository) SaveSessionData(key, value string) error {
	return r.Store.SaveSessionData(key, value)
}
func (r *Repository) GetSessionData(key string) (string, error) {
	return r.Store.GetSessionData(key)
}
func (r *Repository) DeleteSessionData(key string) error {
	return r.Store.DeleteSessionData(key)
}
