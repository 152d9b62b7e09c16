package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"perfumebox/internal/cart"
	"perfumebox/internal/domain"
	"perfumebox/internal/notify"
	"perfumebox/internal/pricing"
	accountrepo "perfumebox/internal/repository/account"
	customerrepo "perfumebox/internal/repository/customer"
	orderrepo "perfumebox/internal/repository/order"
)

// ValidationError reports user-correctable input problems. No writes happen
// when one is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErr(msg string) error { return &ValidationError{Msg: msg} }

const minTrxIDLen = 5

type accountRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Account, error)
	Create(ctx context.Context, in accountrepo.CreateInput) (*domain.Account, error)
	Update(ctx context.Context, id string, in accountrepo.UpdateInput) (*domain.Account, error)
}

type customerRepo interface {
	Create(ctx context.Context, in customerrepo.CreateInput) (*domain.Customer, error)
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	AddItems(ctx context.Context, orderID string, items []orderrepo.ItemInput) error
}

type dispatcher interface {
	Dispatch(s notify.Summary)
}

// Service sequences order placement: identity resolution, shipping snapshot,
// order and line-item writes, then a best-effort operator notification.
// The pass is linear; a failure aborts the remaining steps without rolling
// back earlier writes.
type Service struct {
	accounts  accountRepo
	customers customerRepo
	orders    orderRepo
	notifier  dispatcher
	policy    pricing.Policy
	logger    *log.Logger
}

// New creates a Service. A nil logger discards logs.
func New(accounts accountrepo.Repository, customers customerrepo.Repository, orders orderrepo.Repository, notifier dispatcher, policy pricing.Policy, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		accounts:  accounts,
		customers: customers,
		orders:    orders,
		notifier:  notifier,
		policy:    policy,
		logger:    logger,
	}
}

// Draft is the in-memory checkout state handed from the cart surface. It
// replaces the original's query-parameter round-trip.
type Draft struct {
	FullName      string
	Phone         string
	Email         string
	Address       string
	City          string
	Zone          pricing.Zone
	PaymentMethod string
	TrxID         string
	VoucherCode   string
}

// Result reports a placed order.
type Result struct {
	OrderID     string
	AccountID   string
	TotalAmount int64
	ShippingFee int64
	Discount    int64
}

// PlaceOrder runs the checkout sequence against the cart's current contents.
// sessionAccountID is the account already bound to the caller's session, or
// empty for anonymous shoppers. On success the cart is cleared.
func (s *Service) PlaceOrder(ctx context.Context, sessionAccountID string, c *cart.Store, draft Draft) (*Result, error) {
	if err := validateDraft(c, draft); err != nil {
		return nil, err
	}

	acct, err := s.resolveAccount(ctx, sessionAccountID, draft)
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}

	cust, err := s.customers.Create(ctx, customerrepo.CreateInput{
		FullName: draft.FullName,
		Phone:    draft.Phone,
		Email:    draft.Email,
		Address:  draft.Address + ", " + draft.City,
	})
	if err != nil {
		return nil, fmt.Errorf("create shipping contact: %w", err)
	}

	subtotal := c.Subtotal()
	fee := s.policy.ShippingFee(subtotal, draft.Zone)
	discount := s.policy.Discount(draft.VoucherCode)
	total := pricing.GrandTotal(subtotal, fee, discount)

	var trxID *string
	if draft.PaymentMethod == domain.PaymentBkash {
		trimmed := strings.TrimSpace(draft.TrxID)
		trxID = &trimmed
	}

	ord, err := s.orders.Create(ctx, orderrepo.CreateInput{
		CustomerID:    cust.ID,
		AccountID:     acct.ID,
		TotalAmount:   total,
		ShippingFee:   fee,
		Discount:      discount,
		PaymentMethod: draft.PaymentMethod,
		TrxID:         trxID,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	items := c.Items()
	itemInputs := make([]orderrepo.ItemInput, 0, len(items))
	for _, item := range items {
		itemInputs = append(itemInputs, orderrepo.ItemInput{
			ProductID: item.ProductID,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	if err := s.orders.AddItems(ctx, ord.ID, itemInputs); err != nil {
		// The order header is already written; there is no compensating
		// delete. See DESIGN.md.
		return nil, fmt.Errorf("create order items: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Dispatch(orderSummary(ord.ID, draft, total, items))
	}

	c.Clear()
	s.logger.Printf("order placed: id=%s account=%s total=%d", ord.ID, acct.ID, total)

	return &Result{
		OrderID:     ord.ID,
		AccountID:   acct.ID,
		TotalAmount: total,
		ShippingFee: fee,
		Discount:    discount,
	}, nil
}

func validateDraft(c *cart.Store, draft Draft) error {
	if c == nil || c.ItemCount() == 0 {
		return validationErr("cart is empty")
	}
	for _, field := range []struct{ name, value string }{
		{"full name", draft.FullName},
		{"phone", draft.Phone},
		{"email", draft.Email},
		{"address", draft.Address},
		{"city", draft.City},
	} {
		if strings.TrimSpace(field.value) == "" {
			return validationErr(field.name + " is required")
		}
	}
	if !draft.Zone.Valid() {
		return validationErr("please select a shipping location")
	}
	switch draft.PaymentMethod {
	case domain.PaymentCOD:
	case domain.PaymentBkash:
		if len(strings.TrimSpace(draft.TrxID)) < minTrxIDLen {
			return validationErr("please enter a valid bKash transaction id")
		}
	default:
		return validationErr("unsupported payment method")
	}
	return nil
}

// resolveAccount implements the phone-first identity rule: a session account
// gets its profile refreshed; otherwise the phone number decides between
// update and create.
func (s *Service) resolveAccount(ctx context.Context, sessionAccountID string, draft Draft) (*domain.Account, error) {
	update := accountrepo.UpdateInput{
		FullName: draft.FullName,
		Email:    draft.Email,
		Address:  draft.Address,
		City:     draft.City,
	}

	if sessionAccountID != "" {
		acct, err := s.accounts.Update(ctx, sessionAccountID, update)
		if err == nil {
			return acct, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		// Stale session id; fall through to phone lookup.
	}

	acct, err := s.accounts.GetByPhone(ctx, draft.Phone)
	switch {
	case err == nil:
		return s.accounts.Update(ctx, acct.ID, update)
	case errors.Is(err, domain.ErrNotFound):
		return s.accounts.Create(ctx, accountrepo.CreateInput{
			Phone:    draft.Phone,
			FullName: draft.FullName,
			Email:    draft.Email,
			Address:  draft.Address,
			City:     draft.City,
		})
	default:
		return nil, err
	}
}

func orderSummary(orderID string, draft Draft, total int64, items []domain.LineItem) notify.Summary {
	summaryItems := make([]notify.SummaryItem, 0, len(items))
	for _, item := range items {
		summaryItems = append(summaryItems, notify.SummaryItem{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return notify.Summary{
		OrderID:      orderID,
		CustomerName: draft.FullName,
		Phone:        draft.Phone,
		Address:      draft.Address + ", " + draft.City,
		TotalAmount:  total,
		Items:        summaryItems,
	}
}
