package orderform

import (
	"time"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/enum"
)

const (
	defaultLayers       = 2
	defaultDeliveryTime = "14:00"
	defaultLeadDays     = 3
)

// Draft is the order as currently edited. Cake-only fields (Layers, Flavor,
// Filling, Topping, NameOnCake) stay empty for other products.
type Draft struct {
	ProductID           string    `json:"product_id" validate:"required"`
	Size                string    `json:"size" validate:"required,oneof=small medium large"`
	Layers              *int      `json:"layers"`
	Flavor              string    `json:"flavor"`
	Filling             string    `json:"filling"`
	Topping             string    `json:"topping"`
	NameOnCake          string    `json:"name_on_cake"`
	DeliveryLocation    string    `json:"delivery_location" validate:"required,min=5"`
	DeliveryDate        time.Time `json:"delivery_date"`
	DeliveryTime        string    `json:"delivery_time" validate:"required,deliveryslot"`
	SpecialInstructions string    `json:"special_instructions"`
	CustomerName        string    `json:"customer_name" validate:"required,min=2"`
	CustomerEmail       string    `json:"customer_email" validate:"required,email"`
	CustomerPhone       string    `json:"customer_phone" validate:"required,phonedigits"`
	PaymentMethod       string    `json:"payment_method" validate:"required,eq=cod"`
}

// Patch carries field edits. Nil fields are left unchanged.
type Patch struct {
	Size                *string
	Layers              *int
	Flavor              *string
	Filling             *string
	Topping             *string
	NameOnCake          *string
	DeliveryLocation    *string
	DeliveryDate        *time.Time
	DeliveryTime        *string
	SpecialInstructions *string
	CustomerName        *string
	CustomerEmail       *string
	CustomerPhone       *string
}

// NewDraft returns the form defaults for product: medium size, two layers
// for cakes, delivery at 14:00 three days from now, cash on delivery.
func NewDraft(product *catalog.Product, now time.Time) Draft {
	d := Draft{
		ProductID:     product.ID,
		Size:          enum.SizeMedium,
		DeliveryDate:  DateOf(now.AddDate(0, 0, defaultLeadDays)),
		DeliveryTime:  defaultDeliveryTime,
		PaymentMethod: enum.PaymentMethodCOD,
	}
	if product.IsCake() {
		layers := defaultLayers
		d.Layers = &layers
	}
	return d
}

// Apply copies the set fields of p onto d. Cake-only fields are dropped
// unless cake is true.
func (d *Draft) Apply(p Patch, cake bool) {
	if p.Size != nil {
		d.Size = *p.Size
	}
	if cake {
		if p.Layers != nil {
			v := *p.Layers
			d.Layers = &v
		}
		setString(&d.Flavor, p.Flavor)
		setString(&d.Filling, p.Filling)
		setString(&d.Topping, p.Topping)
		setString(&d.NameOnCake, p.NameOnCake)
	}
	setString(&d.DeliveryLocation, p.DeliveryLocation)
	if p.DeliveryDate != nil {
		d.DeliveryDate = DateOf(*p.DeliveryDate)
	}
	setString(&d.DeliveryTime, p.DeliveryTime)
	setString(&d.SpecialInstructions, p.SpecialInstructions)
	setString(&d.CustomerName, p.CustomerName)
	setString(&d.CustomerEmail, p.CustomerEmail)
	setString(&d.CustomerPhone, p.CustomerPhone)
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	if d.Layers != nil {
		v := *d.Layers
		d.Layers = &v
	}
	return d
}

// DateOf truncates t to its calendar date, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
