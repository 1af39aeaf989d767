package model

type Mechanic struct {
	DTO
	Name     string  `gorm:"size:255;not null" json:"name"`
	Email    string  `gorm:"size:255;unique;not null" json:"email"`
	Phone    string  `gorm:"size:255;not null" json:"phone"`
	Salary   float64 `gorm:"not null" json:"salary"`
	Password string  `gorm:"size:255;not null" json:"-"`

	Tickets []Ticket `gorm:"many2many:ticket_mechanic;" json:"-"`
}

type Mechanics []Mechanic

type CreateMechanicInput struct {
	Name     string  `validate:"required" json:"name"`
	Email    string  `validate:"required,email" json:"email"`
	Phone    string  `validate:"required" json:"phone"`
	Salary   float64 `validate:"gte=0" json:"salary"`
	Password string  `validate:"required,min=6" json:"password"`
}

type PatchMechanicInput struct {
	Name     *string  `json:"name"`
	Email    *string  `validate:"omitempty,email" json:"email"`
	Phone    *string  `json:"phone"`
	Salary   *float64 `validate:"omitempty,gte=0" json:"salary"`
	Password *string  `validate:"omitempty,min=6" json:"password"`
}
