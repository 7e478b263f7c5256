package handlers

import (
	"stocksense/analytics"
	"stocksense/assistant"
	"stocksense/store"
)

var (
	dataStore  store.Store
	engine     *analytics.Engine
	chatRouter *assistant.Router
)

// Setup wires the handlers to the ledger/inventory store. Must be called
// before routes are registered.
func Setup(st store.Store) {
	dataStore = st
	engine = analytics.NewEngine(st)
	chatRouter = assistant.NewRouter(st, engine)
}
