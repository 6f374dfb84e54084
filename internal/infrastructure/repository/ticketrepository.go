package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket"
	ticketvo "github.com/Hardik-Dharmik/shipping-b/internal/domain/ticket/valueobjects"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/mappers"
	"github.com/Hardik-Dharmik/shipping-b/internal/infrastructure/persistence/models"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/auth"
	apperrors "github.com/Hardik-Dharmik/shipping-b/internal/shared/errors"
	"github.com/Hardik-Dharmik/shipping-b/internal/shared/logger"
)

// ticketWithOwnerRow is the join row for ticket listings.
type ticketWithOwnerRow struct {
	models.TicketModel
	OwnerName    string `gorm:"column:owner_name"`
	OwnerEmail   string `gorm:"column:owner_email"`
	OwnerCompany string `gorm:"column:owner_company"`
}

// TicketRepository implements the ticket repository interface on top of GORM.
//
// Message appends and unread resets are single server-side UPDATE statements
// so concurrent writers cannot lose messages or counter increments.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

// Create inserts the ticket and writes the generated ID back to the entity.
func (r *TicketRepository) Create(ctx context.Context, entity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("A ticket already exists for this AWB number")
		}
		r.logger.Errorw("failed to create ticket in database", "awb_number", model.AWBNumber, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created", "id", model.ID, "awb_number", model.AWBNumber)
	return nil
}

// FindByID retrieves a ticket by ID.
func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found")
		}
		r.logger.Errorw("failed to get ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListByOwner returns the user's tickets newest first with owner info joined.
func (r *TicketRepository) ListByOwner(ctx context.Context, userID uint) ([]*ticket.WithOwner, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("tickets.user_id = ?", userID))
}

// ListAll returns every ticket newest first with owner info joined.
func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.WithOwner, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *TicketRepository) list(ctx context.Context, query *gorm.DB) ([]*ticket.WithOwner, error) {
	var rows []ticketWithOwnerRow

	err := query.Model(&models.TicketModel{}).
		Select("tickets.*, users.name AS owner_name, users.email AS owner_email, users.company_name AS owner_company").
		Joins("LEFT JOIN users ON users.id = tickets.user_id").
		Order("tickets.created_at DESC").
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	result := make([]*ticket.WithOwner, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i].TicketModel)
		if err != nil {
			return nil, err
		}
		result = append(result, &ticket.WithOwner{
			Ticket: entity,
			Owner: ticket.OwnerInfo{
				Name:        rows[i].OwnerName,
				Email:       rows[i].OwnerEmail,
				CompanyName: rows[i].OwnerCompany,
			},
		})
	}
	return result, nil
}

// AppendMessage appends msg to the ticket's message log and bumps the unread
// counter of the opposite role in one UPDATE guarded by status = open. MySQL
// evaluates JSON_ARRAY_APPEND against the stored column value inside the
// statement, so two concurrent appends both land.
func (r *TicketRepository) AppendMessage(ctx context.Context, ticketID uint, msg ticket.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	counterCol, err := unreadColumn(ticket.CounterToIncrement(msg.SenderRole))
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ? AND status = ?", ticketID, ticketvo.StatusOpen.String()).
		Updates(map[string]interface{}{
			"messages":   gorm.Expr("JSON_ARRAY_APPEND(messages, '$', CAST(? AS JSON))", string(raw)),
			counterCol:   gorm.Expr(counterCol + " + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to append message", "ticket_id", ticketID, "error", result.Error)
		return fmt.Errorf("failed to append message: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// The guard rejected the write: either the ticket is gone or it
		// closed since the caller's read. Re-check to tell the two apart.
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
			Where("id = ?", ticketID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check ticket existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("Ticket not found")
		}
		return ticket.ErrTicketClosed
	}

	r.logger.Infow("message appended", "ticket_id", ticketID, "sender_role", msg.SenderRole.String())
	return nil
}

// ResetUnread zeroes the unread counter of the given role in one UPDATE.
func (r *TicketRepository) ResetUnread(ctx context.Context, ticketID uint, role auth.UserRole) error {
	counterCol, err := unreadColumn(role)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		Update(counterCol, 0)
	if result.Error != nil {
		r.logger.Errorw("failed to reset unread counter", "ticket_id", ticketID, "role", role.String(), "error", result.Error)
		return fmt.Errorf("failed to reset unread counter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}
	return nil
}

func unreadColumn(role auth.UserRole) (string, error) {
	switch role {
	case auth.RoleAdmin:
		return "unread_admin_count", nil
	case auth.RoleUser:
		return "unread_user_count", nil
	default:
		return "", fmt.Errorf("unknown role %q", role)
	}
}
