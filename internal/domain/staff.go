package domain

import "time"

// StaffUser - сотрудник с доступом к панели управления
type StaffUser struct {
	ID           string    `json:"id" db:"id"`
	AuthUID      string    `json:"auth_uid" db:"auth_uid"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IconURL      string    `json:"icon_url" db:"icon_url"`
	ProfileURL   string    `json:"profile_url" db:"profile_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
