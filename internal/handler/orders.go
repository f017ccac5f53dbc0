package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/bakehouse/api/internal/auth"
	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/database"
	"github.com/bakehouse/api/internal/middleware"
	"github.com/bakehouse/api/internal/orderform"
	"github.com/bakehouse/api/internal/pricing"
	"github.com/bakehouse/api/internal/service"
	"github.com/bakehouse/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

// ProductResolver resolves the product an order is started for.
// Satisfied by *catalog.Catalog.
type ProductResolver interface {
	Product(id string) (*catalog.Product, error)
}

// OrderStore defines the database methods needed to read back orders.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
}

// Notifier pushes session events to connected clients. Satisfied by *ws.Hub.
type Notifier interface {
	Publish(sessionID uuid.UUID, eventType string, payload any) error
}

// OrderSessionHandler drives the order form: open, edit, submit for review,
// confirm and cancel.
type OrderSessionHandler struct {
	products  ProductResolver
	sessions  *orderform.Registry
	validator *orderform.Validator
	gateway   orderform.Submitter
	store     OrderStore
	notifier  Notifier
	secret    string
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewOrderSessionHandler creates a new OrderSessionHandler. Session tokens
// are signed with secret and live for tokenTTL.
func NewOrderSessionHandler(products ProductResolver, sessions *orderform.Registry, gateway orderform.Submitter, store OrderStore, notifier Notifier, secret string, tokenTTL time.Duration) *OrderSessionHandler {
	return &OrderSessionHandler{
		products:  products,
		sessions:  sessions,
		validator: orderform.NewValidator(time.Now),
		gateway:   gateway,
		store:     store,
		notifier:  notifier,
		secret:    secret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// RegisterRoutes registers order session endpoints on the given Chi router.
// Expected to be mounted at /order-sessions.
func (h *OrderSessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Open)
	r.Route("/{sid}", func(r chi.Router) {
		r.Use(middleware.Authenticate(h.secret))
		r.Use(middleware.RequireSession)

		r.Get("/", h.Get)
		r.Patch("/", h.Update)
		r.Get("/validation", h.Validate)
		r.Post("/submit", h.Submit)
		r.Post("/back", h.Back)
		r.Post("/confirm", h.Confirm)
		r.Post("/cancel", h.Cancel)
		r.Get("/order", h.GetOrder)
	})
}

// --- Request / Response types ---

type openSessionRequest struct {
	ProductID string `json:"product_id"`
}

type updateSessionRequest struct {
	Size                *string `json:"size"`
	Layers              *int    `json:"layers"`
	Flavor              *string `json:"flavor"`
	Filling             *string `json:"filling"`
	Topping             *string `json:"topping"`
	NameOnCake          *string `json:"name_on_cake"`
	DeliveryLocation    *string `json:"delivery_location"`
	DeliveryDate        *string `json:"delivery_date"` // YYYY-MM-DD
	DeliveryTime        *string `json:"delivery_time"`
	SpecialInstructions *string `json:"special_instructions"`
	CustomerName        *string `json:"customer_name"`
	CustomerEmail       *string `json:"customer_email"`
	CustomerPhone       *string `json:"customer_phone"`
}

type draftResponse struct {
	ProductID           string `json:"product_id"`
	Size                string `json:"size"`
	Layers              *int   `json:"layers"`
	Flavor              string `json:"flavor"`
	Filling             string `json:"filling"`
	Topping             string `json:"topping"`
	NameOnCake          string `json:"name_on_cake"`
	DeliveryLocation    string `json:"delivery_location"`
	DeliveryDate        string `json:"delivery_date"`
	DeliveryTime        string `json:"delivery_time"`
	SpecialInstructions string `json:"special_instructions"`
	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	PaymentMethod       string `json:"payment_method"`
}

type sessionResponse struct {
	ID             uuid.UUID         `json:"id"`
	State          orderform.State   `json:"state"`
	Product        productResponse   `json:"product"`
	Draft          draftResponse     `json:"draft"`
	Total          string            `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
	InFlight       bool              `json:"in_flight"`
	Errors         map[string]string `json:"errors,omitempty"`
	Notice         *orderform.Notice `json:"notice,omitempty"`
	Redirect       string            `json:"redirect,omitempty"`
}

type orderResponse struct {
	ID                  uuid.UUID `json:"id"`
	Reference           string    `json:"reference"`
	ProductID           string    `json:"product_id"`
	ProductName         string    `json:"product_name"`
	Size                string    `json:"size"`
	Layers              *int32    `json:"layers"`
	Flavor              *string   `json:"flavor"`
	Filling             *string   `json:"filling"`
	Topping             *string   `json:"topping"`
	NameOnCake          *string   `json:"name_on_cake"`
	DeliveryLocation    string    `json:"delivery_location"`
	DeliveryDate        string    `json:"delivery_date"`
	DeliveryTime        string    `json:"delivery_time"`
	SpecialInstructions *string   `json:"special_instructions"`
	CustomerName        string    `json:"customer_name"`
	CustomerEmail       string    `json:"customer_email"`
	CustomerPhone       string    `json:"customer_phone"`
	PaymentMethod       string    `json:"payment_method"`
	PaymentStatus       string    `json:"payment_status"`
	TotalAmount         string    `json:"total_amount"`
	CreatedAt           time.Time `json:"created_at"`
}

func toDraftResponse(d orderform.Draft) draftResponse {
	resp := draftResponse{
		ProductID:           d.ProductID,
		Size:                d.Size,
		Layers:              d.Layers,
		Flavor:              d.Flavor,
		Filling:             d.Filling,
		Topping:             d.Topping,
		NameOnCake:          d.NameOnCake,
		DeliveryLocation:    d.DeliveryLocation,
		DeliveryTime:        d.DeliveryTime,
		SpecialInstructions: d.SpecialInstructions,
		CustomerName:        d.CustomerName,
		CustomerEmail:       d.CustomerEmail,
		CustomerPhone:       d.CustomerPhone,
		PaymentMethod:       d.PaymentMethod,
	}
	if !d.DeliveryDate.IsZero() {
		resp.DeliveryDate = d.DeliveryDate.Format(dateLayout)
	}
	return resp
}

func toSessionResponse(snap orderform.Snapshot) sessionResponse {
	resp := sessionResponse{
		ID:             snap.ID,
		State:          snap.State,
		Product:        toProductResponse(snap.Product),
		Draft:          toDraftResponse(snap.Draft),
		Total:          snap.Total.StringFixed(2),
		FormattedTotal: pricing.FormatRupees(snap.Total),
		InFlight:       snap.InFlight,
		Errors:         snap.Errors,
		Notice:         snap.Notice,
	}
	// The storefront goes back to the home page once the flow is over.
	if snap.State.Terminal() {
		resp.Redirect = "/"
	}
	return resp
}

func toOrderResponse(o database.Order) orderResponse {
	resp := orderResponse{
		ID:                  o.ID,
		Reference:           orderform.Reference(o.ID),
		ProductID:           o.ProductID,
		ProductName:         o.ProductName,
		Size:                o.Size,
		Flavor:              textPtr(o.Flavor),
		Filling:             textPtr(o.Filling),
		Topping:             textPtr(o.Topping),
		NameOnCake:          textPtr(o.NameOnCake),
		DeliveryLocation:    o.DeliveryLocation,
		DeliveryTime:        o.DeliveryTime,
		SpecialInstructions: textPtr(o.SpecialInstructions),
		CustomerName:        o.CustomerName,
		CustomerEmail:       o.CustomerEmail,
		CustomerPhone:       o.CustomerPhone,
		PaymentMethod:       o.PaymentMethod,
		PaymentStatus:       o.PaymentStatus,
		TotalAmount:         numericToString(o.TotalAmount),
		CreatedAt:           o.CreatedAt,
	}
	if o.Layers.Valid {
		v := o.Layers.Int32
		resp.Layers = &v
	}
	if o.DeliveryDate.Valid {
		resp.DeliveryDate = o.DeliveryDate.Time.Format(dateLayout)
	}
	return resp
}

// --- Handlers ---

// Open handles POST /order-sessions.
func (h *OrderSessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	product, err := h.products.Product(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"error":  "product not found",
				"notice": orderform.NoProductNotice,
			})
			return
		}
		log.Printf("ERROR: resolve product: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	sess, err := orderform.NewSession(product, h.validator, h.now())
	if err != nil {
		log.Printf("ERROR: open order session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	token, err := auth.GenerateSessionToken(h.secret, sess.ID(), product.ID, h.tokenTTL)
	if err != nil {
		log.Printf("ERROR: sign session token: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	h.sessions.Add(sess)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token":   token,
		"session": toSessionResponse(sess.Snapshot()),
	})
}

// Get handles GET /order-sessions/{sid}.
func (h *OrderSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess.Snapshot()))
}

// Update handles PATCH /order-sessions/{sid}.
func (h *OrderSessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req updateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	patch := orderform.Patch{
		Size:                req.Size,
		Layers:              req.Layers,
		Flavor:              req.Flavor,
		Filling:             req.Filling,
		Topping:             req.Topping,
		NameOnCake:          req.NameOnCake,
		DeliveryLocation:    req.DeliveryLocation,
		DeliveryTime:        req.DeliveryTime,
		SpecialInstructions: req.SpecialInstructions,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
	}
	if req.DeliveryDate != nil {
		t, err := time.Parse(dateLayout, *req.DeliveryDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid delivery_date format, use YYYY-MM-DD"})
			return
		}
		patch.DeliveryDate = &t
	}

	if err := sess.Update(patch); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	h.respond(w, http.StatusOK, sess)
}

// Validate handles GET /order-sessions/{sid}/validation.
func (h *OrderSessionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	fields := map[string]string{}
	if err := sess.Validate(); err != nil {
		var verr *orderform.ValidationError
		if !errors.As(err, &verr) {
			log.Printf("ERROR: validate order session: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		fields = verr.Fields
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":  len(fields) == 0,
		"errors": fields,
	})
}

// Submit handles POST /order-sessions/{sid}/submit.
func (h *OrderSessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := sess.Submit(); err != nil {
		var verr *orderform.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "validation failed",
				"errors": verr.Fields,
			})
			return
		}
		h.writeTransitionError(w, err)
		return
	}
	h.respond(w, http.StatusOK, sess)
}

// Back handles POST /order-sessions/{sid}/back.
func (h *OrderSessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Back(); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	h.respond(w, http.StatusOK, sess)
}

// Confirm handles POST /order-sessions/{sid}/confirm.
func (h *OrderSessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	// Once in flight the insert runs to completion even if the client
	// goes away; a cancelled insert may still commit.
	order, err := sess.Confirm(context.WithoutCancel(r.Context()), h.gateway)
	if err != nil {
		var verr *orderform.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "validation failed",
				"errors": verr.Fields,
			})
			return
		}
		if errors.Is(err, orderform.ErrSubmitFailed) {
			log.Printf("ERROR: confirm order session %s: %v", sess.ID(), err)
			snap := sess.Snapshot()
			h.notify(sess.ID(), ws.EventNotice, snap.Notice)
			h.respond(w, http.StatusBadGateway, sess)
			return
		}
		h.writeTransitionError(w, err)
		return
	}

	snap := sess.Snapshot()
	h.notify(sess.ID(), ws.EventNotice, snap.Notice)
	view := toSessionResponse(snap)
	h.notify(sess.ID(), ws.EventSessionUpdated, view)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session": view,
		"order":   toOrderResponse(*order),
	})
}

// Cancel handles POST /order-sessions/{sid}/cancel.
func (h *OrderSessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Cancel(); err != nil {
		h.writeTransitionError(w, err)
		return
	}
	h.respond(w, http.StatusOK, sess)
}

// GetOrder handles GET /order-sessions/{sid}/order.
func (h *OrderSessionHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	snap := sess.Snapshot()
	if snap.State != orderform.StateCompleted || snap.Order == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not placed yet"})
		return
	}

	order, err := h.store.GetOrder(r.Context(), snap.Order.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order %s: %v", snap.Order.ID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// --- Helpers ---

// session loads the session named by the authenticated token.
func (h *OrderSessionHandler) session(w http.ResponseWriter, r *http.Request) (*orderform.Session, bool) {
	sid := middleware.SessionIDFromContext(r.Context())
	if sid == uuid.Nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return nil, false
	}
	sess, err := h.sessions.Get(sid)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order session not found"})
		return nil, false
	}
	return sess, true
}

// respond writes the session view and pushes it to subscribers.
func (h *OrderSessionHandler) respond(w http.ResponseWriter, status int, sess *orderform.Session) {
	view := toSessionResponse(sess.Snapshot())
	h.notify(sess.ID(), ws.EventSessionUpdated, view)
	writeJSON(w, status, view)
}

func (h *OrderSessionHandler) notify(sid uuid.UUID, eventType string, payload any) {
	if h.notifier == nil {
		return
	}
	if err := h.notifier.Publish(sid, eventType, payload); err != nil {
		log.Printf("ERROR: publish %s for session %s: %v", eventType, sid, err)
	}
}

func (h *OrderSessionHandler) writeTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderform.ErrSubmitInFlight):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "order is already being submitted"})
	case errors.Is(err, orderform.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "action not allowed in current state"})
	default:
		log.Printf("ERROR: order session transition: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func numericToString(n pgtype.Numeric) string {
	return service.NumericToDecimal(n).StringFixed(2)
}
