package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"homestay-backend/models"
)

type HomestayService struct {
	DB *gorm.DB
}

func NewHomestayService(db *gorm.DB) *HomestayService {
	return &HomestayService{DB: db}
}

// Create inserts one homestay for the given owner. The id and created_at
// are generated here, not by the caller. A missing owner surfaces as the
// store's foreign key error — that is a configuration problem, not a case
// this layer papers over.
func (s *HomestayService) Create(userID string, in models.HomestayInput) (models.Homestay, error) {
	homestay := models.Homestay{
		UserID:  userID,
		Ten:     in.Ten,
		DiaChi:  in.DiaChi,
		Sdt:     in.Sdt,
		Email:   in.Email,
		Website: in.Website,
		QuanAn:  in.QuanAn,
		Checkin: in.Checkin,
		LuuY:    in.LuuY,
		DichVu:  datatypes.NewJSONSlice(in.DichVu),
		Faq:     datatypes.NewJSONSlice(in.Faq),
	}

	if err := s.DB.Create(&homestay).Error; err != nil {
		return models.Homestay{}, err
	}
	return homestay, nil
}

// GetByUser returns all homestays the user has submitted, oldest first.
func (s *HomestayService) GetByUser(userID string) ([]models.Homestay, error) {
	var homestays []models.Homestay
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&homestays).Error
	if err != nil {
		return nil, err
	}
	return homestays, nil
}
