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

type GateHandler struct {
	service *services.GateService
}

func NewGateHandler(service *services.GateService) *GateHandler {
	return &GateHandler{service: service}
}

// CreateTicket issues a new entry ticket and the affiliate redirect link.
// @Summary Create entry ticket
// @Description Creates a ticket and returns the outbound tracking link. Returning callers get their existing ticket back when IP dedup is enabled.
// @Tags gate
// @Produce json
// @Success 200 {object} response.CreateTicketResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /gate/create [post]
func (h *GateHandler) CreateTicket(c *gin.Context) {
	created, err := h.service.CreateTicket(c.ClientIP())
	if err != nil {
		log.Printf("Failed to create ticket: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create ticket"})
		return
	}

	msg := "Ticket created"
	if created.IsExisting {
		msg = "Welcome back"
	}
	c.JSON(http.StatusOK, response.CreateTicketResponse{
		Msg:         msg,
		TicketID:    created.Ticket.Nonce,
		LootlabsURL: created.LootlabsURL,
		IsExisting:  created.IsExisting,
	})
}

// Callback validates the ticket on return from the affiliate link.
// @Summary Verify ticket callback
// @Description Marks the ticket USED and returns the participant number. Safe to call repeatedly.
// @Tags gate
// @Produce json
// @Param click_id query string true "Ticket nonce"
// @Success 200 {object} response.CallbackResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /gate/callback [get]
func (h *GateHandler) Callback(c *gin.Context) {
	ticket, err := h.service.VerifyTicket(c.Query("click_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidClickID):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket reference"})
		case errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Ticket not found"})
		default:
			log.Printf("Failed to verify ticket: %v", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to verify ticket"})
		}
		return
	}

	c.JSON(http.StatusOK, response.CallbackResponse{
		Status:      response.StatusSuccess,
		PlayerNum:   ticket.PlayerNum(),
		HasPassword: ticket.HasPassword(),
		InstagramID: ticket.InstagramID,
		Message:     "Entering the game lobby",
	})
}

// Register binds a credential pair to a ticket.
// @Summary Register credentials
// @Description One-time binding of password and instagram handle to a verified ticket.
// @Tags gate
// @Accept json
// @Produce json
// @Param payload body dto.RegisterGateDTO true "Registration payload"
// @Success 200 {object} response.GateStatusResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /gate/register [post]
func (h *GateHandler) Register(c *gin.Context) {
	var input dto.RegisterGateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.RegisterCredentials(input); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidClickID):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ticket reference"})
		case errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Ticket not found"})
		case errors.Is(err, services.ErrAlreadyRegistered):
			c.JSON(http.StatusOK, response.GateStatusResponse{Status: response.StatusFail, Message: "Ticket is already registered"})
		case errors.Is(err, services.ErrHandleTaken):
			c.JSON(http.StatusOK, response.GateStatusResponse{Status: response.StatusFail, Message: "Instagram handle is already taken"})
		default:
			log.Printf("Failed to register credentials: %v", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to register credentials"})
		}
		return
	}

	c.JSON(http.StatusOK, response.GateStatusResponse{Status: response.StatusSuccess, Message: "Registration complete"})
}

// Login authenticates with a player number or instagram handle.
// @Summary Login with credentials
// @Description Returns the ticket nonce as a session token. Business rejections are soft FAIL payloads, not request errors.
// @Tags gate
// @Accept json
// @Produce json
// @Param payload body dto.LoginGateDTO true "Login payload"
// @Success 200 {object} response.LoginResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /gate/login [post]
func (h *GateHandler) Login(c *gin.Context) {
	var input dto.LoginGateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.service.Login(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPlayerNum):
			c.JSON(http.StatusOK, response.LoginResponse{Status: response.StatusFail, Message: "Invalid player number"})
		case errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusOK, response.LoginResponse{Status: response.StatusFail, Message: "Participant not found"})
		case errors.Is(err, services.ErrWrongCredentials):
			c.JSON(http.StatusOK, response.LoginResponse{Status: response.StatusFail, Message: "Wrong password"})
		default:
			log.Printf("Failed to login: %v", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to login"})
		}
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		Status:   response.StatusSuccess,
		TicketID: ticket.Nonce,
		Message:  "Login successful",
	})
}
