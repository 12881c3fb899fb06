package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"homestay-backend/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// UpsertUserParams is the fresh profile handed over by the identity
// provider on each login callback.
type UpsertUserParams struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// GetUser is a point lookup. gorm.ErrRecordNotFound signals absence.
func (s *UserService) GetUser(id string) (models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	return user, err
}

// UpsertUser inserts the profile or, on id conflict, overwrites the mutable
// fields and refreshes updated_at. Calling twice with the same data leaves
// the same stored state.
func (s *UserService) UpsertUser(p UpsertUserParams) (models.User, error) {
	user := models.User{
		ID:              p.ID,
		Email:           p.Email,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		ProfileImageURL: p.ProfileImageURL,
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	// Re-read so the caller gets the stored timestamps, not the zero values
	// the conflict path leaves behind.
	return s.GetUser(user.ID)
}
