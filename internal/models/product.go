package models

// ProductType is the category of a routine product.
type ProductType string

const (
	ProductCleanser    ProductType = "cleanser"
	ProductToner       ProductType = "toner"
	ProductSerum       ProductType = "serum"
	ProductMoisturizer ProductType = "moisturizer"
	ProductSunscreen   ProductType = "sunscreen"
	ProductOther       ProductType = "other"
)

// ProductTypes lists all product categories in display order.
var ProductTypes = []ProductType{
	ProductCleanser, ProductToner, ProductSerum,
	ProductMoisturizer, ProductSunscreen, ProductOther,
}

// Slot identifies which half of the day a routine belongs to.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotNight   Slot = "night"
)

// Product is a single routine item owned by exactly one user. A product may
// be tagged for the morning routine, the night routine, or both.
type Product struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Brand     string      `json:"brand"`
	Type      ProductType `json:"type"`
	IsMorning bool        `json:"isMorning"`
	IsNight   bool        `json:"isNight"`
}

// InSlot reports whether the product is tagged for the given slot.
func (p *Product) InSlot(slot Slot) bool {
	if slot == SlotMorning {
		return p.IsMorning
	}
	return p.IsNight
}
