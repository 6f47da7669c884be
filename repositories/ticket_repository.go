package repositories

import (
	"github.com/dead-or-play/gate-go/db"
	"github.com/dead-or-play/gate-go/models"
)

type TicketRepo interface {
	Create(ticket *models.Ticket) error
	FindByNonce(nonce string) (models.Ticket, error)
	FindByID(id uint) (models.Ticket, error)
	FindByInstagramID(handle string) (models.Ticket, error)
	FindByIPAddress(ip string) (models.Ticket, error)
	MarkUsed(nonce string) (int64, error)
	BindCredentials(nonce, passwordHash, handle string) (int64, error)
	FindAll() ([]models.Ticket, error)
}

type DBTicketRepo struct{}

func (r *DBTicketRepo) Create(ticket *models.Ticket) error {
	return db.DB.Create(ticket).Error
}

func (r *DBTicketRepo) FindByNonce(nonce string) (models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.Where("nonce = ?", nonce).First(&ticket).Error
	return ticket, err
}

func (r *DBTicketRepo) FindByID(id uint) (models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.First(&ticket, id).Error
	return ticket, err
}

func (r *DBTicketRepo) FindByInstagramID(handle string) (models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.Where("instagram_id = ?", handle).First(&ticket).Error
	return ticket, err
}

func (r *DBTicketRepo) FindByIPAddress(ip string) (models.Ticket, error) {
	var ticket models.Ticket
	err := db.DB.Where("ip_address = ?", ip).Order("created_at asc").First(&ticket).Error
	return ticket, err
}

// MarkUsed flips an UNUSED ticket to USED. The status predicate makes
// repeat calls no-ops, so verification stays idempotent under
// concurrent callbacks.
func (r *DBTicketRepo) MarkUsed(nonce string) (int64, error) {
	res := db.DB.Model(&models.Ticket{}).
		Where("nonce = ? AND status = ?", nonce, models.TicketStatusUnused).
		Update("status", models.TicketStatusUsed)
	return res.RowsAffected, res.Error
}

// BindCredentials writes the credential pair onto a ticket that has no
// password yet. The predicate is the one-time-binding guard: of two
// concurrent registrations at most one sees RowsAffected == 1.
func (r *DBTicketRepo) BindCredentials(nonce, passwordHash, handle string) (int64, error) {
	res := db.DB.Model(&models.Ticket{}).
		Where("nonce = ? AND password IS NULL", nonce).
		Updates(map[string]interface{}{
			"password":     passwordHash,
			"instagram_id": handle,
		})
	return res.RowsAffected, res.Error
}

func (r *DBTicketRepo) FindAll() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := db.DB.Order("created_at desc").Find(&tickets).Error
	return tickets, err
}
