package domain

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SteamID      string    `gorm:"column:steam_id;uniqueIndex;not null" json:"steam_id"`
	DisplayName  string    `gorm:"column:display_name;not null" json:"display_name"`
	Avatar       string    `gorm:"column:avatar;type:text" json:"avatar"`
	ProfileURL   string    `gorm:"column:profile_url;type:text" json:"profile_url"`
	RoleplayName string    `gorm:"column:roleplay_name;type:text" json:"roleplay_name"`
	PhoneNumber  string    `gorm:"column:phone_number;type:text" json:"phone_number"`
	BankNumber   string    `gorm:"column:bank_number;type:text" json:"bank_number"`
	Email        string    `gorm:"column:email;type:text" json:"email"`
	IsAdmin      bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// HasCompleteProfile reports whether the fields checkout requires are filled in.
func (u User) HasCompleteProfile() bool {
	return u.RoleplayName != "" && u.PhoneNumber != "" && u.BankNumber != ""
}

// BuyerName is the name shown on the public purchase feed.
func (u User) BuyerName() string {
	if u.RoleplayName != "" {
		return u.RoleplayName
	}
	return u.DisplayName
}
