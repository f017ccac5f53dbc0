package orderform

import (
	"errors"
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/enum"
	"github.com/go-playground/validator/v10"
)

const minPhoneDigits = 10

// Field messages shown next to the offending input.
var fieldMessages = map[string]string{
	"product_id":        "Please select a product from the catalog",
	"size":              "Please select a size",
	"delivery_location": "Please provide a valid delivery address",
	"delivery_time":     "Please select a delivery time",
	"customer_name":     "Name must be at least 2 characters",
	"customer_email":    "Please provide a valid email address",
	"customer_phone":    "Please provide a valid phone number",
	"payment_method":    "Cash on delivery is the only available payment method",
}

const (
	msgDeliveryDateRequired = "Please select a delivery date"
	msgDeliveryDatePast     = "Delivery date cannot be in the past"
	msgLayers               = "Layers must be between 1 and 5"
	msgFlavor               = "Please choose a flavor offered for this cake"
	msgFilling              = "Please choose a filling offered for this cake"
	msgTopping              = "Please choose a topping offered for this cake"
)

// ValidationError lists field-level problems keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Validator checks drafts against the order form rules.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// NewValidator creates a Validator. now supplies "today" for the delivery
// date rule; nil means time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("deliveryslot", func(fl validator.FieldLevel) bool {
		return slices.Contains(enum.DeliverySlots, fl.Field().String())
	})
	_ = v.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return countDigits(fl.Field().String()) >= minPhoneDigits
	})

	return &Validator{v: v, now: now}
}

// Validate returns nil when d is ready for review, or a *ValidationError.
// Cake-only fields are checked only when product is a cake.
func (val *Validator) Validate(d Draft, product *catalog.Product) error {
	fields := map[string]string{}

	if product == nil {
		fields["product_id"] = fieldMessages["product_id"]
		return &ValidationError{Fields: fields}
	}

	if err := val.v.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			name := fe.Field()
			if _, seen := fields[name]; !seen {
				fields[name] = fieldMessages[name]
			}
		}
	}

	if d.ProductID != product.ID {
		fields["product_id"] = fieldMessages["product_id"]
	}

	switch {
	case d.DeliveryDate.IsZero():
		fields["delivery_date"] = msgDeliveryDateRequired
	case DateOf(d.DeliveryDate).Before(DateOf(val.now())):
		fields["delivery_date"] = msgDeliveryDatePast
	}

	if product.IsCake() {
		if d.Layers != nil {
			if err := val.v.Var(*d.Layers, "min=1,max=5"); err != nil {
				fields["layers"] = msgLayers
			}
		}
		if d.Flavor != "" && !slices.Contains(product.Cake.Flavors, d.Flavor) {
			fields["flavor"] = msgFlavor
		}
		if d.Filling != "" && !slices.Contains(product.Cake.Fillings, d.Filling) {
			fields["filling"] = msgFilling
		}
		if d.Topping != "" && !slices.Contains(product.Cake.Toppings, d.Topping) {
			fields["topping"] = msgTopping
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
