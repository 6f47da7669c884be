package services

import (
	"testing"
	"time"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/middleware"
	"github.com/dead-or-play/gate-go/models"
	"github.com/dead-or-play/gate-go/repositories"
	"github.com/dead-or-play/gate-go/repositories/mock_repositories"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func setupAdminServiceMocks(t *testing.T) (*AdminService, *mock_repositories.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.AdminPassword = "letmein"

	mockTicket := mock_repositories.NewMockTicketRepo(ctrl)
	repos := &repositories.Repos{
		Ticket: mockTicket,
	}
	return NewAdminService(repos), mockTicket
}

func TestAdminLogin_Success(t *testing.T) {
	svc, _ := setupAdminServiceMocks(t)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(expire time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	token, err := svc.Login("letmein")
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	svc, _ := setupAdminServiceMocks(t)

	token, err := svc.Login("guess")
	assert.Equal(t, ErrWrongCredentials, err)
	assert.Empty(t, token)
}

func TestListTickets(t *testing.T) {
	svc, mockTicket := setupAdminServiceMocks(t)

	tickets := []models.Ticket{{Nonce: "nonce-2"}, {Nonce: "nonce-1"}}
	mockTicket.EXPECT().FindAll().Return(tickets, nil)

	got, err := svc.ListTickets()
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
