package handlers

import (
	"github.com/dead-or-play/gate-go/services"
)

type Handlers struct {
	Gate  *GateHandler
	Admin *AdminHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Gate:  NewGateHandler(svc.Gate),
		Admin: NewAdminHandler(svc.Admin),
	}
}
