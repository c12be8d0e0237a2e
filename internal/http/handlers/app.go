package handlers

import (
	"sync"

	"railticket/internal/catalog"
	"railticket/internal/ledger"
	"railticket/internal/repositories"
)

// App bundles the stores the handlers work against.
type App struct {
	Catalog   *catalog.Catalog
	Ledger    *ledger.Ledger
	Users     *repositories.UserStore
	JWTSecret []byte
}

var (
	appMu sync.RWMutex
	app   App
)

// Configure stores the active app dependencies. Must be called before
// the router serves traffic; tests reconfigure freely.
func Configure(a App) {
	appMu.Lock()
	defer appMu.Unlock()
	app = a
}

func getApp() App {
	appMu.RLock()
	defer appMu.RUnlock()
	return app
}
