package model

import "repair_shop/utils"

type Ticket struct {
	DTO
	Vin        string           `gorm:"size:255;not null" json:"vin"`
	TicketDate utils.CustomDate `gorm:"type:date" json:"ticket_date"`
	CustomerId uint             `gorm:"not null" json:"customer_id"`

	Customer  Customer          `gorm:"foreignKey:CustomerId" json:"-"`
	Mechanics []Mechanic        `gorm:"many2many:ticket_mechanic;" json:"-"`
	Parts     []TicketInventory `gorm:"foreignKey:TicketId" json:"-"`
}

type Tickets []Ticket

// TicketInventory is the ticket/part junction row. At most one row exists
// per (ticket, part) pair; re-adding a part accumulates into Quantity.
type TicketInventory struct {
	TicketId    uint `gorm:"primaryKey" json:"ticket_id"`
	InventoryId uint `gorm:"primaryKey" json:"inventory_id"`
	Quantity    int  `gorm:"not null;default:1" json:"quantity"`

	Ticket    Ticket    `gorm:"foreignKey:TicketId" json:"-"`
	Inventory Inventory `gorm:"foreignKey:InventoryId" json:"-"`
}

type CreateTicketInput struct {
	Vin        string           `validate:"required" json:"vin"`
	TicketDate utils.CustomDate `json:"ticket_date"`
	CustomerId uint             `validate:"required" json:"customer_id"`
}

type PatchTicketInput struct {
	Vin        *string           `json:"vin"`
	TicketDate *utils.CustomDate `json:"ticket_date"`
}

type BulkEditMechanicsInput struct {
	AddMechanicIds    []uint `json:"add_mechanic_ids"`
	RemoveMechanicIds []uint `json:"remove_mechanic_ids"`
}

type AddPartInput struct {
	InventoryId uint `validate:"required" json:"inventory_id"`
	Quantity    *int `validate:"omitempty,gte=1" json:"quantity"`
}
