package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"strconv"
	"time"

	"ticketing-service/internal/module/ticketing/models/entity"
	"ticketing-service/internal/module/ticketing/models/request"
	"ticketing-service/internal/module/ticketing/models/response"
	"ticketing-service/internal/module/ticketing/repositories"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/mailer"
	"ticketing-service/internal/pkg/messagestream"
	"ticketing-service/internal/pkg/paystack"
	"ticketing-service/internal/pkg/pricing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const (
	defaultRefundReason = "Customer requested refund"
	defaultTicketType   = "General Admission"
	transactionSuccess  = "success"
)

type usecase struct {
	repo        repositories.Repositories
	paystack    paystack.PaystackRepository
	log         log.Logger
	publisher   message.Publisher
	mailer      mailer.Mailer
	feePercent  decimal.Decimal
	currency    string
	callbackURL string
	now         func() time.Time
}

type Usecase interface {
	// http
	QuoteCheckout(ctx context.Context, payload *request.QuoteCheckout) (response.Quote, error)
	CalculateFee(ctx context.Context, payload *request.CalculateFee) (response.FeeBreakdown, error)
	InitializePayment(ctx context.Context, payload *request.InitializePayment) (response.InitializePayment, error)
	VerifyPayment(ctx context.Context, payload *request.VerifyPayment) (response.VerifyPayment, error)
	RegisterFreeTicket(ctx context.Context, payload *request.RegisterFreeTicket) (response.FreeTicket, error)
	RefundTicket(ctx context.Context, payload *request.RefundTicket, requestedBy string) (response.Refund, error)
	// queue
	ConsumeTicketEvent(ctx context.Context, payload *request.TicketEvent) error
}

type Options struct {
	FeePercent  decimal.Decimal
	Currency    string
	CallbackURL string
	Now         func() time.Time
}

func New(repo repositories.Repositories, gateway paystack.PaystackRepository, log log.Logger, publisher message.Publisher, mailer mailer.Mailer, opts Options) Usecase {
	if opts.FeePercent.IsZero() {
		opts.FeePercent = pricing.DefaultFeePercent
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &usecase{
		repo:        repo,
		paystack:    gateway,
		log:         log,
		publisher:   publisher,
		mailer:      mailer,
		feePercent:  opts.FeePercent,
		currency:    opts.Currency,
		callbackURL: opts.CallbackURL,
		now:         opts.Now,
	}
}

func (u *usecase) QuoteCheckout(ctx context.Context, payload *request.QuoteCheckout) (response.Quote, error) {
	span, ctx := apm.StartSpan(ctx, "QuoteCheckout", "usecase")
	defer span.End()

	quote, _, err := u.quote(ctx, payload.EventID, payload.Items)
	if err != nil {
		return response.Quote{}, err
	}

	return toQuoteResponse(payload.EventID, quote), nil
}

func (u *usecase) CalculateFee(ctx context.Context, payload *request.CalculateFee) (response.FeeBreakdown, error) {
	span, _ := apm.StartSpan(ctx, "CalculateFee", "usecase")
	defer span.End()

	amount, err := pricing.ParseAmount(string(payload.Amount))
	if err != nil {
		return response.FeeBreakdown{}, err
	}

	pct := u.feePercent
	if payload.FeePercentage != nil {
		pct = decimal.NewFromFloat(*payload.FeePercentage)
	}

	fee := pricing.CalculateFee(amount, &pct)
	return response.FeeBreakdown{
		OriginalAmount: fee.OriginalAmount.InexactFloat64(),
		FeePercentage:  fee.FeePercentage.InexactFloat64(),
		FeeAmount:      fee.FeeAmount.InexactFloat64(),
		AmountWithFee:  fee.AmountWithFee.InexactFloat64(),
		CustomerTotal:  fee.CustomerTotal.InexactFloat64(),
	}, nil
}

func (u *usecase) InitializePayment(ctx context.Context, payload *request.InitializePayment) (response.InitializePayment, error) {
	span, ctx := apm.StartSpan(ctx, "InitializePayment", "usecase")
	defer span.End()

	quote, tiers, err := u.quote(ctx, payload.EventID, payload.Items)
	if err != nil {
		return response.InitializePayment{}, err
	}

	if quote.IsFree {
		return response.InitializePayment{}, errors.BadRequest("order total is zero, register a free ticket instead")
	}

	first := payload.Items[0]
	reference := helpers.GeneratePaymentReference()
	metadata := map[string]interface{}{
		"event_id":       payload.EventID,
		"ticket_tier_id": first.TierID,
		"ticket_type":    tiers[first.TierID].Name,
		"quantity":       quote.Quantity,
		"customer_name":  payload.Name,
		"customer_phone": payload.Phone,
		"base_amount":    quote.DiscountedSubtotal.StringFixed(2),
		"service_fee":    quote.ServiceFee.StringFixed(2),
		"discount_type":  quote.Discount.Kind,
	}

	resp, err := u.paystack.InitializeTransaction(ctx, paystack.InitializeRequest{
		Email:       payload.Email,
		Amount:      pricing.ToSubunit(quote.Total),
		Reference:   reference,
		Currency:    u.currency,
		CallbackURL: u.callbackURL,
		Metadata:    metadata,
	})
	if err != nil {
		return response.InitializePayment{}, err
	}

	if resp.Reference != "" {
		reference = resp.Reference
	}

	return response.InitializePayment{
		AuthorizationURL: resp.AuthorizationURL,
		AccessCode:       resp.AccessCode,
		Reference:        reference,
		Amount:           quote.Total.InexactFloat64(),
		Quote:            toQuoteResponse(payload.EventID, quote),
	}, nil
}

// VerifyPayment confirms a charge with the provider and issues exactly one
// ticket per reference. Repeated calls for a processed reference succeed
// without side effects.
func (u *usecase) VerifyPayment(ctx context.Context, payload *request.VerifyPayment) (response.VerifyPayment, error) {
	span, ctx := apm.StartSpan(ctx, "VerifyPayment", "usecase")
	defer span.End()

	if len(payload.ProviderResponse) > 0 {
		u.log.Warn(ctx, "ignoring client supplied provider response", zap.String("reference", payload.Reference))
	}

	unlock, err := u.repo.AcquireReferenceLock(ctx, payload.Reference)
	if err != nil {
		return response.VerifyPayment{}, err
	}
	defer func() {
		if err := unlock(context.Background()); err != nil {
			u.log.Warn(ctx, "error release reference lock", err)
		}
	}()

	exists, err := u.repo.TicketExistsByReference(ctx, payload.Reference)
	if err != nil {
		return response.VerifyPayment{}, err
	}
	if exists {
		return response.VerifyPayment{Reference: payload.Reference, AlreadyProcessed: true}, nil
	}

	verified, err := u.paystack.VerifyTransaction(ctx, payload.Reference)
	if err != nil {
		return response.VerifyPayment{}, err
	}
	if !verified.Successful() {
		return response.VerifyPayment{}, errors.ExternalProviderError(fmt.Sprintf("payment was not successful, status: %s", verified.Data.Status))
	}

	meta := extractMetadata(verified.Data)
	if meta.EventID == "" {
		return response.VerifyPayment{}, errors.ErrMissingEventMetadata
	}

	event, err := u.repo.FindEventByID(ctx, meta.EventID)
	if err != nil {
		return response.VerifyPayment{}, err
	}

	var tier *entity.TicketTier
	if meta.TierID == "" {
		first, err := u.repo.FindFirstTierByEvent(ctx, meta.EventID)
		if err != nil {
			return response.VerifyPayment{}, err
		}
		tier = &first
		meta.TierID = first.ID
	}
	if !isTierID(meta.TierID) {
		return response.VerifyPayment{}, errors.ErrInvalidTierID
	}

	amountCharged := pricing.FromSubunit(verified.Data.Amount)
	pricePaid := amountCharged
	if meta.BaseAmount != nil {
		pricePaid = *meta.BaseAmount
	} else {
		if tier == nil {
			found, err := u.repo.FindTierByID(ctx, meta.TierID)
			if err != nil && errors.As(err).Kind != errors.KindNotFound {
				return response.VerifyPayment{}, err
			}
			if err == nil {
				if found.EventID != meta.EventID {
					return response.VerifyPayment{}, errors.ErrInvalidTierID
				}
				tier = &found
			}
		}
		if tier != nil && tier.Price.IsPositive() {
			pricePaid = tier.Price.Mul(decimal.NewFromInt(int64(meta.Quantity)))
		}
	}

	if meta.TicketType == "" {
		meta.TicketType = defaultTicketType
		if tier != nil && tier.Name != "" {
			meta.TicketType = tier.Name
		}
	}

	now := u.now()
	ticket := entity.Ticket{
		ID:               uuid.NewString(),
		Source:           entity.SourcePaid,
		Reference:        nullString(payload.Reference),
		PaymentReference: nullString(payload.Reference),
		TransactionID:    nullString(strconv.FormatInt(verified.Data.ID, 10)),
		TicketCode:       helpers.GenerateTicketCode(event.Title),
		EventID:          meta.EventID,
		TierID:           meta.TierID,
		TicketType:       meta.TicketType,
		CustomerName:     meta.CustomerName,
		CustomerEmail:    verified.Data.Customer.Email,
		CustomerPhone:    nullString(meta.Phone),
		Quantity:         meta.Quantity,
		PricePaid:        decimal.NewNullDecimal(pricePaid),
		Status:           entity.TicketStatusActive,
		PurchasedAt:      now,
	}

	fee := pricing.CalculateFee(pricePaid, &u.feePercent)
	txn := entity.Transaction{
		ID:             uuid.NewString(),
		Reference:      payload.Reference,
		TicketID:       ticket.ID,
		EventID:        ticket.EventID,
		OriginalAmount: fee.OriginalAmount,
		FeePercentage:  fee.FeePercentage,
		FeeAmount:      fee.FeeAmount,
		AmountWithFee:  fee.AmountWithFee,
		CustomerTotal:  fee.CustomerTotal,
		AmountCharged:  amountCharged,
		Currency:       verified.Data.Currency,
		Status:         transactionSuccess,
		CreatedAt:      now,
	}

	if err := u.repo.CreatePaidTicket(ctx, ticket, txn); err != nil {
		if err == errors.ErrDuplicate {
			u.log.Info(ctx, "payment reference already processed", zap.String("reference", payload.Reference))
			return response.VerifyPayment{Reference: payload.Reference, AlreadyProcessed: true}, nil
		}
		return response.VerifyPayment{}, err
	}

	u.afterIssue(ctx, ticket, event)

	return response.VerifyPayment{Reference: payload.Reference, Ticket: toTicketResponse(ticket)}, nil
}

func (u *usecase) RegisterFreeTicket(ctx context.Context, payload *request.RegisterFreeTicket) (response.FreeTicket, error) {
	span, ctx := apm.StartSpan(ctx, "RegisterFreeTicket", "usecase")
	defer span.End()

	reference := payload.Reference
	if reference != "" {
		exists, err := u.repo.TicketExistsByReference(ctx, reference)
		if err != nil {
			return response.FreeTicket{}, err
		}
		if exists {
			return response.FreeTicket{Reference: reference, AlreadyProcessed: true}, nil
		}
	} else {
		reference = helpers.GenerateFreeReference()
	}

	event, err := u.repo.FindEventByID(ctx, payload.EventID)
	if err != nil {
		return response.FreeTicket{}, err
	}

	var tier entity.TicketTier
	if payload.TierID == "" {
		tier, err = u.repo.FindFirstTierByEvent(ctx, payload.EventID)
		if err != nil {
			return response.FreeTicket{}, err
		}
	}
	if payload.TierID != "" {
		if !isTierID(payload.TierID) {
			return response.FreeTicket{}, errors.ErrInvalidTierID
		}
		tier, err = u.repo.FindTierByID(ctx, payload.TierID)
		if err != nil {
			return response.FreeTicket{}, err
		}
		if tier.EventID != payload.EventID {
			return response.FreeTicket{}, errors.ErrInvalidTierID
		}
	}
	if !isTierID(tier.ID) {
		return response.FreeTicket{}, errors.ErrInvalidTierID
	}

	// a paid tier discounted to zero takes this path too
	quote := pricing.QuoteOrder([]pricing.CartItem{{TierID: tier.ID, UnitPrice: tier.Price, Quantity: 1}}, event.DiscountConfig(), u.now())
	if !quote.IsFree {
		return response.FreeTicket{}, errors.BadRequest("ticket tier is not free")
	}

	ticketType := tier.Name
	if ticketType == "" {
		ticketType = defaultTicketType
	}

	ticket := entity.Ticket{
		ID:            uuid.NewString(),
		Source:        entity.SourceFree,
		Reference:     nullString(reference),
		TicketCode:    helpers.GenerateTicketCode(event.Title),
		EventID:       payload.EventID,
		TierID:        tier.ID,
		TicketType:    ticketType,
		CustomerName:  payload.Name,
		CustomerEmail: payload.Email,
		CustomerPhone: nullString(payload.Phone),
		Quantity:      1,
		PricePaid:     decimal.NewNullDecimal(decimal.Zero),
		Status:        entity.TicketStatusActive,
		PurchasedAt:   u.now(),
	}

	if err := u.repo.CreateTicket(ctx, ticket); err != nil {
		if err == errors.ErrDuplicate {
			return response.FreeTicket{Reference: reference, AlreadyProcessed: true}, nil
		}
		return response.FreeTicket{}, err
	}

	u.afterIssue(ctx, ticket, event)

	return response.FreeTicket{Reference: reference, Ticket: toTicketResponse(ticket)}, nil
}

// RefundTicket returns money for a ticket, or for a bare provider transaction
// when TransactionID is given. A processing fee is retained unless an explicit
// amount overrides it.
func (u *usecase) RefundTicket(ctx context.Context, payload *request.RefundTicket, requestedBy string) (response.Refund, error) {
	span, ctx := apm.StartSpan(ctx, "RefundTicket", "usecase")
	defer span.End()

	var override *decimal.Decimal
	if payload.Amount != nil {
		amount := decimal.NewFromFloat(*payload.Amount)
		override = &amount
	}

	reason := payload.Reason
	if reason == "" {
		reason = defaultRefundReason
	}

	u.log.Info(ctx, "refund requested",
		zap.String("requested_by", requestedBy),
		zap.String("ticket_id", payload.TicketID),
		zap.String("transaction_id", payload.TransactionID),
	)

	if payload.TransactionID != "" {
		return u.refundTransaction(ctx, payload.TransactionID, override, reason)
	}

	ticket, err := u.repo.FindTicket(ctx, payload.TicketID)
	if err != nil {
		return response.Refund{}, err
	}

	if ticket.Status == entity.TicketStatusRefunded {
		return response.Refund{}, errors.ErrAlreadyRefunded
	}

	amount, err := pricing.RefundAmount(ticket.Price(), override)
	if err != nil {
		return response.Refund{}, err
	}

	refund := entity.Refund{
		ID:              uuid.NewString(),
		TicketID:        nullString(ticket.ID),
		TicketReference: ticket.Reference,
		EventID:         nullString(ticket.EventID),
		Amount:          amount,
		Reason:          reason,
		BuyerName:       ticket.CustomerName,
		BuyerEmail:      ticket.CustomerEmail,
		CreatedAt:       u.now(),
	}

	paymentRef := ticket.PaymentRef()
	if paymentRef == "" {
		refund.Status = entity.RefundStatusManualRequired
		if err := u.repo.RecordRefund(ctx, refund, entity.TicketStatusManualRefundRequired); err != nil {
			return response.Refund{}, err
		}
		u.log.Warn(ctx, "ticket has no payment reference, manual refund required", zap.String("ticket_id", ticket.ID))
		return toRefundResponse(refund, true), nil
	}

	note := reason
	if ticket.Quantity > 1 {
		note = fmt.Sprintf("%s (%d tickets)", reason, ticket.Quantity)
	}

	resp, err := u.paystack.Refund(ctx, paystack.RefundRequest{
		Transaction:  paymentRef,
		Amount:       pricing.ToSubunit(amount),
		MerchantNote: note,
	})
	if err != nil {
		return response.Refund{}, err
	}

	refund.Status = entity.RefundStatusProcessed
	refund.PaymentReference = nullString(paymentRef)
	refund.ProviderReference = nullString(strconv.FormatInt(resp.ID, 10))

	if err := u.repo.RecordRefund(ctx, refund, entity.TicketStatusRefunded); err != nil {
		u.log.Error(ctx, "refund issued by provider but not recorded",
			zap.String("ticket_id", ticket.ID),
			zap.String("provider_reference", refund.ProviderReference.String),
			zap.Error(err),
		)
		return response.Refund{}, errors.PersistenceError("refund was issued but could not be recorded, reconcile manually")
	}

	u.publish(ctx, messagestream.TopicTicketRefunded, request.TicketEvent{
		Type:          messagestream.TopicTicketRefunded,
		TicketID:      ticket.ID,
		Reference:     ticket.Reference.String,
		EventID:       ticket.EventID,
		TicketCode:    ticket.TicketCode,
		CustomerName:  ticket.CustomerName,
		CustomerEmail: ticket.CustomerEmail,
		Amount:        amount.InexactFloat64(),
	})

	return toRefundResponse(refund, false), nil
}

func (u *usecase) refundTransaction(ctx context.Context, transactionID string, override *decimal.Decimal, reason string) (response.Refund, error) {
	verified, err := u.paystack.VerifyTransaction(ctx, transactionID)
	if err != nil {
		return response.Refund{}, err
	}

	amount, err := pricing.RefundAmount(pricing.FromSubunit(verified.Data.Amount), override)
	if err != nil {
		return response.Refund{}, err
	}

	resp, err := u.paystack.Refund(ctx, paystack.RefundRequest{
		Transaction:  transactionID,
		Amount:       pricing.ToSubunit(amount),
		MerchantNote: reason,
	})
	if err != nil {
		return response.Refund{}, err
	}

	refund := entity.Refund{
		ID:                uuid.NewString(),
		Amount:            amount,
		PaymentReference:  nullString(transactionID),
		ProviderReference: nullString(strconv.FormatInt(resp.ID, 10)),
		Reason:            reason,
		Status:            entity.RefundStatusProcessed,
		CreatedAt:         u.now(),
	}

	if err := u.repo.RecordRefund(ctx, refund, ""); err != nil {
		u.log.Error(ctx, "refund issued by provider but not recorded",
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		return response.Refund{}, errors.PersistenceError("refund was issued but could not be recorded, reconcile manually")
	}

	return toRefundResponse(refund, false), nil
}

func (u *usecase) ConsumeTicketEvent(ctx context.Context, payload *request.TicketEvent) error {
	var title, body string
	switch payload.Type {
	case messagestream.TopicTicketIssued:
		title = "Your ticket is confirmed"
		if payload.EventTitle != "" {
			title = fmt.Sprintf("Your ticket for %s", payload.EventTitle)
		}
		body = fmt.Sprintf("Hi %s, your ticket %s is confirmed.", payload.CustomerName, payload.TicketCode)
	case messagestream.TopicTicketRefunded:
		title = "Your refund has been processed"
		body = fmt.Sprintf("Hi %s, a refund of %.2f for ticket %s has been processed.", payload.CustomerName, payload.Amount, payload.TicketCode)
	default:
		return errors.BadRequest(fmt.Sprintf("unknown ticket event type %q", payload.Type))
	}

	err := u.repo.CreateNotification(ctx, entity.Notification{
		UserEmail: payload.CustomerEmail,
		Title:     title,
		Message:   body,
		Kind:      payload.Type,
	})
	if err != nil {
		return err
	}

	if err := u.mailer.Send(ctx, payload.CustomerEmail, title, "<p>"+html.EscapeString(body)+"</p>"); err != nil {
		u.log.Warn(ctx, "error send notification email", err, zap.String("to", payload.CustomerEmail))
	}

	return nil
}

// afterIssue runs the best-effort side effects of a newly stored ticket.
func (u *usecase) afterIssue(ctx context.Context, ticket entity.Ticket, event entity.Event) {
	if err := u.repo.UpdateTicketInventory(ctx, ticket.TierID, ticket.Quantity); err != nil {
		u.log.Error(ctx, "error update ticket inventory", err, zap.String("ticket_tier_id", ticket.TierID))
	}

	u.publish(ctx, messagestream.TopicTicketIssued, request.TicketEvent{
		Type:          messagestream.TopicTicketIssued,
		TicketID:      ticket.ID,
		Reference:     ticket.Reference.String,
		EventID:       ticket.EventID,
		EventTitle:    event.Title,
		TicketCode:    ticket.TicketCode,
		CustomerName:  ticket.CustomerName,
		CustomerEmail: ticket.CustomerEmail,
		Amount:        ticket.Price().InexactFloat64(),
	})
}

func (u *usecase) publish(ctx context.Context, topic string, evt request.TicketEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		u.log.Error(ctx, "error marshal ticket event", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("topic", topic)

	if err := u.publisher.Publish(topic, msg); err != nil {
		u.log.Error(ctx, "error publish ticket event", err, zap.String("topic", topic))
	}
}

func (u *usecase) quote(ctx context.Context, eventID string, items []request.CartItem) (pricing.Quote, map[string]entity.TicketTier, error) {
	event, err := u.repo.FindEventByID(ctx, eventID)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	ids := make([]string, 0, len(items))
	seen := map[string]bool{}
	for _, item := range items {
		if !seen[item.TierID] {
			seen[item.TierID] = true
			ids = append(ids, item.TierID)
		}
	}

	tiers, err := u.repo.FindTiersByIDs(ctx, eventID, ids)
	if err != nil {
		return pricing.Quote{}, nil, err
	}

	byID := make(map[string]entity.TicketTier, len(tiers))
	for _, tier := range tiers {
		byID[tier.ID] = tier
	}

	cart := make([]pricing.CartItem, 0, len(items))
	for _, item := range items {
		tier, ok := byID[item.TierID]
		if !ok {
			return pricing.Quote{}, nil, errors.NotFound(fmt.Sprintf("ticket tier %s not found for this event", item.TierID))
		}
		cart = append(cart, pricing.CartItem{TierID: tier.ID, UnitPrice: tier.Price, Quantity: item.Quantity})
	}

	return pricing.QuoteOrder(cart, event.DiscountConfig(), u.now()), byID, nil
}

func isTierID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toQuoteResponse(eventID string, q pricing.Quote) response.Quote {
	return response.Quote{
		EventID:            eventID,
		Subtotal:           q.Subtotal.InexactFloat64(),
		Quantity:           q.Quantity,
		EarlyBirdDiscount:  q.Discount.EarlyBird.InexactFloat64(),
		VolumeDiscount:     q.Discount.Volume.InexactFloat64(),
		Discount:           q.Discount.Applied.InexactFloat64(),
		DiscountType:       q.Discount.Kind,
		DiscountedSubtotal: q.DiscountedSubtotal.InexactFloat64(),
		ServiceFee:         q.ServiceFee.InexactFloat64(),
		Total:              q.Total.InexactFloat64(),
		IsFree:             q.IsFree,
	}
}

func toTicketResponse(t entity.Ticket) *response.Ticket {
	return &response.Ticket{
		ID:            t.ID,
		Reference:     t.Reference.String,
		TicketCode:    t.TicketCode,
		Source:        t.Source,
		EventID:       t.EventID,
		TierID:        t.TierID,
		TicketType:    t.TicketType,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		Quantity:      t.Quantity,
		PricePaid:     t.Price().InexactFloat64(),
		Status:        t.Status,
		PurchasedAt:   t.PurchasedAt.Format(time.RFC3339),
	}
}

func toRefundResponse(r entity.Refund, manual bool) response.Refund {
	return response.Refund{
		ID:                r.ID,
		TicketID:          r.TicketID.String,
		Reference:         r.TicketReference.String,
		Amount:            r.Amount.InexactFloat64(),
		Status:            r.Status,
		ProviderReference: r.ProviderReference.String,
		ManualRequired:    manual,
	}
}
