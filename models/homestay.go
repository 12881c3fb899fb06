package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FAQItem is one question/answer pair. Both sides are required whenever the
// entry exists — blank pairs never reach the database.
type FAQItem struct {
	Q string `json:"q" binding:"notblank"`
	A string `json:"a" binding:"notblank"`
}

// Homestay is one submission by an owner. Rows are insert-only in this
// system; the chatbot pipeline downstream works from the webhook copy.
type Homestay struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	UserID string `gorm:"column:user_id;size:64;not null;index" json:"userId"`

	Ten    string `gorm:"column:ten;type:text;not null" json:"ten"`
	DiaChi string `gorm:"column:dia_chi;type:text;not null" json:"diaChi"`
	Sdt    string `gorm:"column:sdt;type:text;not null" json:"sdt"`

	// Optional fields default to the empty string at the schema layer
	// (HomestayInput), not in the DDL — MySQL refuses literal defaults
	// on text columns.
	Email   string `gorm:"column:email;type:text" json:"email"`
	Website string `gorm:"column:website;type:text" json:"website"`
	QuanAn  string `gorm:"column:quan_an;type:text" json:"quanAn"`
	Checkin string `gorm:"column:checkin;type:text" json:"checkin"`
	LuuY    string `gorm:"column:luu_y;type:text" json:"luuY"`

	DichVu datatypes.JSONSlice[string]  `gorm:"column:dich_vu" json:"dichVu"`
	Faq    datatypes.JSONSlice[FAQItem] `gorm:"column:faq" json:"faq"`

	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (h *Homestay) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
