package model

type Inventory struct {
	DTO
	Name  string  `gorm:"size:255;not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
	Sku   string  `gorm:"size:255;uniqueIndex" json:"sku"`

	Tickets []TicketInventory `gorm:"foreignKey:InventoryId" json:"-"`
}

type Inventories []Inventory

type CreateInventoryInput struct {
	Name  string  `validate:"required" json:"name"`
	Price float64 `validate:"gte=0" json:"price"`
}

type PatchInventoryInput struct {
	Name  *string  `json:"name"`
	Price *float64 `validate:"omitempty,gte=0" json:"price"`
}
