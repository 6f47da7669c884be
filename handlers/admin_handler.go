package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/dead-or-play/gate-go/dto"
	"github.com/dead-or-play/gate-go/response"
	"github.com/dead-or-play/gate-go/services"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login issues an admin token.
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body dto.AdminLoginDTO true "Admin password"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var input dto.AdminLoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.service.Login(input.Password)
	if err != nil {
		if errors.Is(err, services.ErrWrongCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Wrong password"})
			return
		}
		log.Printf("Failed to issue admin token: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to login"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}

// ListTickets dumps the full ticket audit trail, newest first.
// @Summary List all tickets
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Ticket
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /admin/tickets [get]
func (h *AdminHandler) ListTickets(c *gin.Context) {
	tickets, err := h.service.ListTickets()
	if err != nil {
		log.Printf("Failed to list tickets: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list tickets"})
		return
	}

	c.JSON(http.StatusOK, tickets)
}
