// Package storage provides the durable key/value slot the app state lives
// in. The store only ever needs one key, but the backend is an interface so
// tests can run against memory instead of sqlite.
package storage

type Slot interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
