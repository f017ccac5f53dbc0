package orderform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/database"
	"github.com/bakehouse/api/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// State is the position of a form session in the order flow.
type State string

const (
	StateEditing    State = "editing"
	StateReviewing  State = "reviewing"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateCancelled  State = "cancelled"
)

// Errors returned by session transitions.
var (
	ErrNoProduct         = errors.New("product not found")
	ErrInvalidTransition = errors.New("action not allowed in current state")
	ErrSubmitInFlight    = errors.New("order is already being submitted")
	ErrSubmitFailed      = errors.New("order submission failed")
)

// Notice kinds.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a user-facing notification raised by a transition.
type Notice struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NoProductNotice is shown when an order is started without a valid product.
var NoProductNotice = Notice{
	Kind:    NoticeError,
	Title:   "Error",
	Message: "Product not found. Please select a product from the catalog.",
}

// Submitter persists a reviewed draft. Satisfied by *service.OrderGateway.
type Submitter interface {
	Submit(ctx context.Context, draft Draft, product *catalog.Product, total decimal.Decimal) (*database.Order, error)
}

// Session is one customer's pass through the order form:
// editing → reviewing → submitting → completed, with back/cancel exits.
type Session struct {
	id        uuid.UUID
	product   *catalog.Product
	validator *Validator

	mu       sync.Mutex
	state    State
	draft    Draft
	inFlight bool
	errors   map[string]string
	notice   *Notice
	order    *database.Order
}

// Snapshot is a consistent read of a session.
type Snapshot struct {
	ID       uuid.UUID
	State    State
	Product  *catalog.Product
	Draft    Draft
	Total    decimal.Decimal
	InFlight bool
	Errors   map[string]string
	Notice   *Notice
	Order    *database.Order
}

// NewSession opens a form for product with default values.
func NewSession(product *catalog.Product, v *Validator, now time.Time) (*Session, error) {
	if product == nil {
		return nil, ErrNoProduct
	}
	return &Session{
		id:        uuid.New(),
		product:   product,
		validator: v,
		state:     StateEditing,
		draft:     NewDraft(product, now),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Update applies field edits. Only allowed while editing.
func (s *Session) Update(p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrInvalidTransition
	}
	s.draft.Apply(p, s.product.IsCake())
	return nil
}

// Validate reports the current field errors without changing state.
func (s *Session) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.Validate(s.draft, s.product)
}

// Submit moves editing → reviewing when the draft is valid. On a
// *ValidationError the session stays in editing and remembers the fields.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEditing {
		return ErrInvalidTransition
	}
	if err := s.validator.Validate(s.draft, s.product); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.errors = verr.Fields
		}
		return err
	}
	s.errors = nil
	s.notice = nil
	s.state = StateReviewing
	return nil
}

// Back returns from review to editing with the draft intact.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return ErrInvalidTransition
	}
	s.state = StateEditing
	return nil
}

// Confirm persists the reviewed draft through sub. The session lock is not
// held during the call; the in-flight flag rejects duplicate confirms.
// On failure the session is back in reviewing with the draft untouched. A
// draft that no longer validates goes back to editing without a submission.
func (s *Session) Confirm(ctx context.Context, sub Submitter) (*database.Order, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if s.state != StateReviewing {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	// The delivery date may have slipped into the past while in review.
	if err := s.validator.Validate(s.draft, s.product); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.errors = verr.Fields
			s.state = StateEditing
		}
		s.mu.Unlock()
		return nil, err
	}
	s.state = StateSubmitting
	s.inFlight = true
	s.notice = nil
	draft := s.draft.Clone()
	total := s.totalLocked()
	s.mu.Unlock()

	order, err := sub.Submit(ctx, draft, s.product, total)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.state = StateReviewing
		s.notice = &Notice{
			Kind:    NoticeError,
			Title:   "Error",
			Message: "There was a problem processing your order. Please try again.",
		}
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	s.state = StateCompleted
	s.draft = Draft{}
	s.order = order
	s.notice = &Notice{
		Kind:    NoticeSuccess,
		Title:   "Order Confirmed!",
		Message: fmt.Sprintf("Order #%s has been created.", Reference(order.ID)),
	}
	return order, nil
}

// Cancel discards the draft. Not allowed while a submission is in flight.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateEditing, StateReviewing:
	case StateSubmitting:
		return ErrSubmitInFlight
	default:
		return ErrInvalidTransition
	}
	s.state = StateCancelled
	s.draft = Draft{}
	s.errors = nil
	return nil
}

// Total is the running price of the draft. It is zero once the draft is
// gone (completed or cancelled).
func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Session) totalLocked() decimal.Decimal {
	if s.state.Terminal() {
		return decimal.Zero
	}
	var layers *int
	if s.product.IsCake() {
		layers = s.draft.Layers
	}
	return pricing.ComputePrice(s.product, s.draft.Size, layers)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:       s.id,
		State:    s.state,
		Product:  s.product,
		Draft:    s.draft.Clone(),
		Total:    s.totalLocked(),
		InFlight: s.inFlight,
		Order:    s.order,
	}
	if s.errors != nil {
		snap.Errors = make(map[string]string, len(s.errors))
		for k, v := range s.errors {
			snap.Errors[k] = v
		}
	}
	if s.notice != nil {
		n := *s.notice
		snap.Notice = &n
	}
	return snap
}

// InFlight reports whether a confirm is waiting on the store.
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Terminal reports whether the session has reached completed or cancelled.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// Reference is the short confirmation code shown to the customer.
func Reference(id uuid.UUID) string {
	return id.String()[:8]
}
