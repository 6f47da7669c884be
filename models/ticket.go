package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketStatusUnused TicketStatus = "UNUSED"
	TicketStatusUsed   TicketStatus = "USED"
)

// Ticket is one participant's entry pass through the gate flow.
// Rows are never deleted; they double as a permanent audit record.
type Ticket struct {
	gorm.Model
	Nonce       string       `json:"nonce" gorm:"type:uuid;uniqueIndex;not null"`
	Status      TicketStatus `json:"status" gorm:"type:ticket_status;default:'UNUSED'"`
	IPAddress   *string      `json:"ip_address,omitempty" gorm:"index"`
	Password    *string      `json:"-"`
	InstagramID *string      `json:"instagram_id,omitempty" gorm:"uniqueIndex"`
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.Nonce == "" {
		ticket.Nonce = uuid.NewString()
	}
	return
}

// PlayerNum renders the row id as the user-facing participant number,
// zero-padded to four digits (7 -> "0007"). Ids past 9999 keep their
// natural width.
func (ticket *Ticket) PlayerNum() string {
	return fmt.Sprintf("%04d", ticket.ID)
}

// HasPassword reports whether a credential pair has been bound.
func (ticket *Ticket) HasPassword() bool {
	return ticket.Password != nil && *ticket.Password != ""
}
