package repositories

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"time"

	"ticketing-service/internal/module/ticketing/models/entity"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const (
	uniqueViolation = "23505"
	lockExpiry      = 30 * time.Second

	ticketColumns = `id, source, reference, payment_reference, transaction_id, ticket_code, event_id, ticket_tier_id,
		ticket_type, customer_name, customer_email, customer_phone, quantity, price_paid, status, purchased_at`
	eventColumns = `id, title, organizer_email, early_bird_enabled, early_bird_discount, early_bird_start_date,
		early_bird_end_date, multiple_buys_enabled, multiple_buys_discount, multiple_buys_min_tickets`
	tierColumns = `id, event_id, name, price, quantity_sold`
)

type repositories struct {
	db      *sqlx.DB
	log     log.Logger
	redsync *redsync.Redsync
}

type Repositories interface {
	// redis
	AcquireReferenceLock(ctx context.Context, reference string) (func(context.Context) error, error)
	// db
	FindEventByID(ctx context.Context, eventID string) (entity.Event, error)
	FindTiersByIDs(ctx context.Context, eventID string, tierIDs []string) ([]entity.TicketTier, error)
	FindTierByID(ctx context.Context, tierID string) (entity.TicketTier, error)
	FindFirstTierByEvent(ctx context.Context, eventID string) (entity.TicketTier, error)
	FindTicket(ctx context.Context, idOrReference string) (entity.Ticket, error)
	TicketExistsByReference(ctx context.Context, reference string) (bool, error)
	CreateTicket(ctx context.Context, ticket entity.Ticket) error
	CreatePaidTicket(ctx context.Context, ticket entity.Ticket, txn entity.Transaction) error
	RecordRefund(ctx context.Context, refund entity.Refund, ticketStatus string) error
	// rpc
	UpdateTicketInventory(ctx context.Context, tierID string, quantity int) error
	CreateNotification(ctx context.Context, notification entity.Notification) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client) Repositories {
	r := &repositories{
		db:  db,
		log: log,
	}
	if redisClient != nil {
		r.redsync = redsync.New(goredis.NewPool(redisClient))
	}
	return r
}

// AcquireReferenceLock serialises verification of one payment reference across replicas.
func (r *repositories) AcquireReferenceLock(ctx context.Context, reference string) (func(context.Context) error, error) {
	if r.redsync == nil {
		return func(context.Context) error { return nil }, nil
	}

	mutex := r.redsync.NewMutex("lock:payment-reference:"+reference,
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(16),
	)
	if err := mutex.LockContext(ctx); err != nil {
		r.log.Warn(ctx, "error acquire reference lock", err, reference)
		return nil, errors.Conflict("payment verification already in progress for this reference")
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}

// FindEventByID implements Repositories.
func (r *repositories) FindEventByID(ctx context.Context, eventID string) (entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, eventID)
	if err == sql.ErrNoRows {
		return entity.Event{}, errors.NotFound("event not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find event by id", err)
		return entity.Event{}, errors.PersistenceError("error find event by id")
	}
	return event, nil
}

// FindTiersByIDs implements Repositories.
func (r *repositories) FindTiersByIDs(ctx context.Context, eventID string, tierIDs []string) ([]entity.TicketTier, error) {
	query := `SELECT ` + tierColumns + ` FROM ticket_tiers WHERE event_id = $1 AND id::text = ANY($2)`
	var tiers []entity.TicketTier
	if err := r.db.SelectContext(ctx, &tiers, query, eventID, pq.Array(tierIDs)); err != nil {
		r.log.Error(ctx, "error find ticket tiers", err)
		return nil, errors.PersistenceError("error find ticket tiers")
	}
	return tiers, nil
}

// FindTierByID implements Repositories.
func (r *repositories) FindTierByID(ctx context.Context, tierID string) (entity.TicketTier, error) {
	query := `SELECT ` + tierColumns + ` FROM ticket_tiers WHERE id = $1`
	var tier entity.TicketTier
	err := r.db.GetContext(ctx, &tier, query, tierID)
	if err == sql.ErrNoRows {
		return entity.TicketTier{}, errors.NotFound("ticket tier not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find ticket tier by id", err)
		return entity.TicketTier{}, errors.PersistenceError("error find ticket tier by id")
	}
	return tier, nil
}

// FindFirstTierByEvent implements Repositories.
func (r *repositories) FindFirstTierByEvent(ctx context.Context, eventID string) (entity.TicketTier, error) {
	query := `SELECT ` + tierColumns + ` FROM ticket_tiers WHERE event_id = $1 ORDER BY created_at ASC LIMIT 1`
	var tier entity.TicketTier
	err := r.db.GetContext(ctx, &tier, query, eventID)
	if err == sql.ErrNoRows {
		return entity.TicketTier{}, errors.ErrNoTicketTier
	}
	if err != nil {
		r.log.Error(ctx, "error find first ticket tier", err)
		return entity.TicketTier{}, errors.PersistenceError("error find ticket tier")
	}
	return tier, nil
}

// FindTicket resolves a ticket by id or reference. When both a private and a
// public row match, the source order private, generic, paid, free decides.
func (r *repositories) FindTicket(ctx context.Context, idOrReference string) (entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets
		WHERE id::text = $1 OR reference = $1
		ORDER BY CASE source WHEN 'private' THEN 0 WHEN 'generic' THEN 1 WHEN 'paid' THEN 2 ELSE 3 END
		LIMIT 1`
	var ticket entity.Ticket
	err := r.db.GetContext(ctx, &ticket, query, idOrReference)
	if err == sql.ErrNoRows {
		return entity.Ticket{}, errors.ErrTicketNotFound
	}
	if err != nil {
		r.log.Error(ctx, "error find ticket", err)
		return entity.Ticket{}, errors.PersistenceError("error find ticket")
	}
	return ticket, nil
}

// TicketExistsByReference implements Repositories.
func (r *repositories) TicketExistsByReference(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tickets WHERE reference = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, reference); err != nil {
		r.log.Error(ctx, "error check ticket reference", err)
		return false, errors.PersistenceError("error check ticket reference")
	}
	return exists, nil
}

const insertTicket = `INSERT INTO tickets (id, source, reference, payment_reference, transaction_id, ticket_code, event_id,
		ticket_tier_id, ticket_type, customer_name, customer_email, customer_phone, quantity, price_paid, status, purchased_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

func ticketArgs(t entity.Ticket) []interface{} {
	return []interface{}{
		t.ID, t.Source, t.Reference, t.PaymentReference, t.TransactionID, t.TicketCode, t.EventID,
		t.TierID, t.TicketType, t.CustomerName, t.CustomerEmail, t.CustomerPhone, t.Quantity, t.PricePaid, t.Status, t.PurchasedAt,
	}
}

// CreateTicket implements Repositories.
func (r *repositories) CreateTicket(ctx context.Context, ticket entity.Ticket) error {
	if _, err := r.db.ExecContext(ctx, insertTicket, ticketArgs(ticket)...); err != nil {
		if isUniqueViolation(err) {
			return errors.ErrDuplicate
		}
		r.log.Error(ctx, "error insert ticket", err)
		return errors.PersistenceError("error insert ticket")
	}
	return nil
}

// CreatePaidTicket stores the ticket and its fee ledger row atomically.
func (r *repositories) CreatePaidTicket(ctx context.Context, ticket entity.Ticket, txn entity.Transaction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.PersistenceError("error starting transaction")
	}

	if _, err = tx.ExecContext(ctx, insertTicket, ticketArgs(ticket)...); err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return errors.ErrDuplicate
		}
		r.log.Error(ctx, "error insert paid ticket", err)
		return errors.PersistenceError("error insert ticket")
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO transactions (id, reference, ticket_id, event_id, original_amount, fee_percentage,
			fee_amount, amount_with_fee, customer_total, amount_charged, currency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		txn.ID, txn.Reference, txn.TicketID, txn.EventID, txn.OriginalAmount, txn.FeePercentage,
		txn.FeeAmount, txn.AmountWithFee, txn.CustomerTotal, txn.AmountCharged, txn.Currency, txn.Status, txn.CreatedAt)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert transaction", err)
		return errors.PersistenceError("error insert transaction")
	}

	if err = tx.Commit(); err != nil {
		return errors.PersistenceError("error committing transaction")
	}

	return nil
}

// RecordRefund appends the refund row and, when the refund belongs to a
// ticket, moves the ticket to ticketStatus in the same transaction.
func (r *repositories) RecordRefund(ctx context.Context, refund entity.Refund, ticketStatus string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.PersistenceError("error starting transaction")
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO refunds (id, ticket_id, ticket_reference, event_id, amount, payment_reference,
			provider_reference, reason, status, buyer_name, buyer_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		refund.ID, refund.TicketID, refund.TicketReference, refund.EventID, refund.Amount, refund.PaymentReference,
		refund.ProviderReference, refund.Reason, refund.Status, refund.BuyerName, refund.BuyerEmail, refund.CreatedAt)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert refund", err)
		return errors.PersistenceError("error insert refund")
	}

	if refund.TicketID.Valid && ticketStatus != "" {
		_, err = tx.ExecContext(ctx, `UPDATE tickets SET status = $1 WHERE id = $2`, ticketStatus, refund.TicketID.String)
		if err != nil {
			tx.Rollback()
			r.log.Error(ctx, "error update ticket status", err)
			return errors.PersistenceError("error update ticket status")
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.PersistenceError("error committing transaction")
	}

	return nil
}

// UpdateTicketInventory calls the update_ticket_inventory stored procedure.
func (r *repositories) UpdateTicketInventory(ctx context.Context, tierID string, quantity int) error {
	if _, err := r.db.ExecContext(ctx, `SELECT update_ticket_inventory($1, $2)`, tierID, quantity); err != nil {
		return errors.PersistenceError(fmt.Sprintf("error update ticket inventory: %v", err))
	}
	return nil
}

// CreateNotification calls the create_notification stored procedure.
func (r *repositories) CreateNotification(ctx context.Context, n entity.Notification) error {
	_, err := r.db.ExecContext(ctx, `SELECT create_notification($1, $2, $3, $4)`, n.UserEmail, n.Title, n.Message, n.Kind)
	if err != nil {
		r.log.Error(ctx, "error create notification", err)
		return errors.PersistenceError("error create notification")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return goerrors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
