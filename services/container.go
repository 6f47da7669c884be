package services

import "github.com/dead-or-play/gate-go/repositories"

type Services struct {
	Gate  *GateService
	Admin *AdminService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Gate:  NewGateService(repos),
		Admin: NewAdminService(repos),
	}
}
