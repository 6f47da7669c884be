package services

import (
	"crypto/subtle"
	"time"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/middleware"
	"github.com/dead-or-play/gate-go/models"
	"github.com/dead-or-play/gate-go/repositories"
)

type AdminService struct {
	repos *repositories.Repos
}

func NewAdminService(repos *repositories.Repos) *AdminService {
	return &AdminService{repos: repos}
}

func (s *AdminService) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(config.AdminPassword)) != 1 {
		return "", ErrWrongCredentials
	}
	return middleware.GenerateToken(24 * time.Hour)
}

func (s *AdminService) ListTickets() ([]models.Ticket, error) {
	return s.repos.Ticket.FindAll()
}
