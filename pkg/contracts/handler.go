package contracts

import "github.com/julienschmidt/httprouter"

type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// AdminHandler exposes routes that are mounted behind admin
// authentication instead of the public middleware stack.
type AdminHandler interface {
	RegisterAdminRoutes(*httprouter.Router)
}
