package helper

import (
	"errors"

	"repair_shop/database"
	"repair_shop/model"

	"gorm.io/gorm"
)

var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrMechanicNotFound = errors.New("mechanic not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrNotAssigned      = errors.New("mechanic is not assigned to ticket")
)

// mechanicAssigned queries the join table directly so the check stays an
// indexed lookup regardless of how many mechanics a ticket has.
func mechanicAssigned(ticketId, mechanicId uint) (bool, error) {
	var count int64
	err := database.DB.Table("ticket_mechanic").
		Where("ticket_id = ? AND mechanic_id = ?", ticketId, mechanicId).
		Count(&count).Error
	return count > 0, err
}

func findTicket(ticketId uint) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := database.DB.First(&ticket, ticketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func findMechanic(mechanicId uint) (*model.Mechanic, error) {
	var mechanic model.Mechanic
	if err := database.DB.First(&mechanic, mechanicId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMechanicNotFound
		}
		return nil, err
	}
	return &mechanic, nil
}

// AssignMechanic links a mechanic to a ticket. Assigning an already linked
// mechanic is a no-op, never a duplicate row.
func AssignMechanic(ticketId, mechanicId uint) (*model.Ticket, error) {
	ticket, err := findTicket(ticketId)
	if err != nil {
		return nil, err
	}
	mechanic, err := findMechanic(mechanicId)
	if err != nil {
		return nil, err
	}

	assigned, err := mechanicAssigned(ticketId, mechanicId)
	if err != nil {
		return nil, err
	}
	if !assigned {
		if err := database.DB.Model(ticket).Association("Mechanics").Append(mechanic); err != nil {
			return nil, err
		}
	}
	return ticket, nil
}

// RemoveMechanic unlinks a mechanic from a ticket. Returns ErrNotAssigned
// when both rows exist but no association does.
func RemoveMechanic(ticketId, mechanicId uint) (*model.Mechanic, error) {
	ticket, err := findTicket(ticketId)
	if err != nil {
		return nil, err
	}
	mechanic, err := findMechanic(mechanicId)
	if err != nil {
		return nil, err
	}

	assigned, err := mechanicAssigned(ticketId, mechanicId)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return mechanic, ErrNotAssigned
	}
	if err := database.DB.Model(ticket).Association("Mechanics").Delete(mechanic); err != nil {
		return nil, err
	}
	return mechanic, nil
}

// BulkEditMechanics applies all additions then all removals. Unknown ids in
// either list are skipped, adds are idempotent, and removing an unassigned
// mechanic is a no-op.
func BulkEditMechanics(ticketId uint, addIds, removeIds []uint) (*model.Ticket, error) {
	ticket, err := findTicket(ticketId)
	if err != nil {
		return nil, err
	}

	for _, mechanicId := range addIds {
		mechanic, err := findMechanic(mechanicId)
		if err != nil {
			if errors.Is(err, ErrMechanicNotFound) {
				continue
			}
			return nil, err
		}
		assigned, err := mechanicAssigned(ticketId, mechanicId)
		if err != nil {
			return nil, err
		}
		if !assigned {
			if err := database.DB.Model(ticket).Association("Mechanics").Append(mechanic); err != nil {
				return nil, err
			}
		}
	}

	for _, mechanicId := range removeIds {
		mechanic, err := findMechanic(mechanicId)
		if err != nil {
			if errors.Is(err, ErrMechanicNotFound) {
				continue
			}
			return nil, err
		}
		assigned, err := mechanicAssigned(ticketId, mechanicId)
		if err != nil {
			return nil, err
		}
		if assigned {
			if err := database.DB.Model(ticket).Association("Mechanics").Delete(mechanic); err != nil {
				return nil, err
			}
		}
	}

	return ticket, nil
}

// AddPart attaches quantity units of a part to a ticket. A second add for
// the same pair increments the existing junction row instead of creating
// another one.
func AddPart(ticketId, inventoryId uint, quantity int) (*model.TicketInventory, error) {
	if _, err := findTicket(ticketId); err != nil {
		return nil, err
	}
	var part model.Inventory
	if err := database.DB.First(&part, inventoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}

	var row model.TicketInventory
	err := database.DB.Where("ticket_id = ? AND inventory_id = ?", ticketId, inventoryId).First(&row).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		row = model.TicketInventory{TicketId: ticketId, InventoryId: inventoryId, Quantity: quantity}
		if err := database.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}

	row.Quantity += quantity
	if err := database.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// TicketMechanics returns the mechanics linked to a ticket.
func TicketMechanics(ticketId uint) (model.Mechanics, error) {
	ticket, err := findTicket(ticketId)
	if err != nil {
		return nil, err
	}
	var mechanics model.Mechanics
	if err := database.DB.Model(ticket).Association("Mechanics").Find(&mechanics); err != nil {
		return nil, err
	}
	return mechanics, nil
}
