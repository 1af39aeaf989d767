package model

import "time"

type Customer struct {
	DTO
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:360;unique;not null" json:"email"`
	Phone    string `gorm:"size:255;not null" json:"phone"`
	Password string `gorm:"size:255;not null" json:"-"`

	Tickets []Ticket `gorm:"foreignKey:CustomerId;constraint:OnDelete:RESTRICT" json:"-"`
}

type Customers []Customer

type CreateCustomerInput struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required,min=6" json:"password"`
}

type PatchCustomerInput struct {
	Name     *string `json:"name"`
	Email    *string `validate:"omitempty,email" json:"email"`
	Phone    *string `json:"phone"`
	Password *string `validate:"omitempty,min=6" json:"password"`
}

type CustomerChangePassword struct {
	CurrentPassword string `validate:"required" json:"current_password"`
	NewPassword     string `validate:"required,min=6" json:"new_password"`
}

type ForgotPasswordInput struct {
	Email string `validate:"required,email" json:"email"`
}

type ResetPasswordInput struct {
	Token       string `validate:"required" json:"token"`
	NewPassword string `validate:"required,min=6" json:"new_password"`
}

type PasswordResetToken struct {
	DTO
	CustomerId uint      `gorm:"not null" json:"customer_id"`
	Token      string    `gorm:"size:255;not null;unique" json:"token"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	Customer   Customer  `gorm:"foreignKey:CustomerId" json:"-"`
}
