package services

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/dead-or-play/gate-go/config"
	"github.com/dead-or-play/gate-go/dto"
	"github.com/dead-or-play/gate-go/models"
	"github.com/dead-or-play/gate-go/repositories"
	"github.com/dead-or-play/gate-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidClickID      = errors.New("invalid ticket reference")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrAlreadyRegistered   = errors.New("ticket already registered")
	ErrHandleTaken         = errors.New("instagram handle already taken")
	ErrInvalidPlayerNum    = errors.New("invalid player number")
	ErrWrongCredentials    = errors.New("wrong credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type GateService struct {
	repos *repositories.Repos
}

func NewGateService(repos *repositories.Repos) *GateService {
	return &GateService{repos: repos}
}

// CreatedTicket is the outcome of the entry call: the ticket itself,
// the outbound affiliate link (nil for a returning participant) and
// whether the caller was deduplicated onto an earlier ticket.
type CreatedTicket struct {
	Ticket      models.Ticket
	LootlabsURL *string
	IsExisting  bool
}

func (s *GateService) CreateTicket(clientIP string) (CreatedTicket, error) {
	if config.GateIPDedup && clientIP != "" {
		existing, err := s.repos.Ticket.FindByIPAddress(clientIP)
		if err == nil {
			return CreatedTicket{Ticket: existing, IsExisting: true}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return CreatedTicket{}, err
		}
	}

	ticket := models.Ticket{}
	if config.GateIPDedup && clientIP != "" {
		ticket.IPAddress = &clientIP
	}
	if err := s.repos.Ticket.Create(&ticket); err != nil {
		return CreatedTicket{}, err
	}

	link := utils.BuildTrackingLink(config.LootlabsURL, ticket.Nonce)
	return CreatedTicket{Ticket: ticket, LootlabsURL: &link}, nil
}

// validateClickID rejects callbacks where the client never substituted
// its own token: empty values, the literal "undefined" a broken
// frontend sends, or an unreplaced {placeholder}.
func validateClickID(clickID string) error {
	if clickID == "" || clickID == "undefined" {
		return ErrInvalidClickID
	}
	if strings.HasPrefix(clickID, "{") && strings.HasSuffix(clickID, "}") {
		return ErrInvalidClickID
	}
	return nil
}

// VerifyTicket resolves the callback nonce and transitions the ticket
// to USED. Re-verifying a used ticket succeeds without side effects,
// and a failed status write is logged but does not fail verification.
func (s *GateService) VerifyTicket(clickID string) (models.Ticket, error) {
	if err := validateClickID(clickID); err != nil {
		return models.Ticket{}, err
	}

	ticket, err := s.repos.Ticket.FindByNonce(clickID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, ErrTicketNotFound
		}
		return models.Ticket{}, err
	}

	if ticket.Status != models.TicketStatusUsed {
		if _, err := s.repos.Ticket.MarkUsed(ticket.Nonce); err != nil {
			log.Printf("Failed to mark ticket %s as used: %v", ticket.Nonce, err)
		} else {
			ticket.Status = models.TicketStatusUsed
		}
	}

	return ticket, nil
}

// RegisterCredentials binds a password and instagram handle to a
// verified ticket. The binding is one-time: the conditional update in
// the repository only succeeds while the ticket has no password, and
// the unique index on instagram_id backs up the handle pre-check.
func (s *GateService) RegisterCredentials(input dto.RegisterGateDTO) error {
	if err := validateClickID(input.ClickID); err != nil {
		return err
	}

	ticket, err := s.repos.Ticket.FindByNonce(input.ClickID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	if ticket.HasPassword() {
		return ErrAlreadyRegistered
	}

	holder, err := s.repos.Ticket.FindByInstagramID(input.InstagramID)
	if err == nil && holder.Nonce != ticket.Nonce {
		return ErrHandleTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	rows, err := s.repos.Ticket.BindCredentials(ticket.Nonce, string(hashed), input.InstagramID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrHandleTaken
		}
		return err
	}
	if rows == 0 {
		// Lost the race to a concurrent registration.
		return ErrAlreadyRegistered
	}

	return nil
}

// Login resolves a ticket by instagram handle or player number and
// checks the bound password. Both lookup paths stay supported: tickets
// registered before handle login existed only have a number.
func (s *GateService) Login(input dto.LoginGateDTO) (models.Ticket, error) {
	var (
		ticket models.Ticket
		err    error
	)

	switch {
	case input.InstagramID != "":
		ticket, err = s.repos.Ticket.FindByInstagramID(input.InstagramID)
	case input.PlayerNum != "":
		id, perr := strconv.ParseUint(strings.TrimSpace(input.PlayerNum), 10, 64)
		if perr != nil {
			return models.Ticket{}, ErrInvalidPlayerNum
		}
		ticket, err = s.repos.Ticket.FindByID(uint(id))
	default:
		return models.Ticket{}, ErrInvalidPlayerNum
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, ErrTicketNotFound
		}
		return models.Ticket{}, err
	}

	if !ticket.HasPassword() {
		return models.Ticket{}, ErrWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*ticket.Password), []byte(input.Password)); err != nil {
		return models.Ticket{}, ErrWrongCredentials
	}

	return ticket, nil
}
