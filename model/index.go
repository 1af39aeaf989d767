package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TokenData struct {
	AuthToken string `json:"auth_token"`
}

type TokenClaim struct {
	SubjectId uint   `json:"sub"`
	Role      string `json:"role"`
}

type Pagination struct {
	Page    string `query:"page"`
	PerPage string `query:"per_page"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
}
