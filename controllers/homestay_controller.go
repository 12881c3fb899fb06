package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"
)

// UserStore and HomestayStore are the slices of the persistence gateway the
// controllers need. services.UserService and services.HomestayService
// satisfy them; tests substitute mocks.
type UserStore interface {
	GetUser(id string) (models.User, error)
	UpsertUser(p services.UpsertUserParams) (models.User, error)
}

type HomestayStore interface {
	Create(userID string, in models.HomestayInput) (models.Homestay, error)
	GetByUser(userID string) ([]models.Homestay, error)
}

// Notifier is the post-persist webhook hook. Implementations must not block
// the request path and must swallow their own failures.
type Notifier interface {
	Notify(user models.User, homestay models.Homestay)
}

type HomestayController struct {
	Users     UserStore
	Homestays HomestayStore
	Notifier  Notifier
}

func NewHomestayController(users UserStore, homestays HomestayStore, notifier Notifier) *HomestayController {
	return &HomestayController{
		Users:     users,
		Homestays: homestays,
		Notifier:  notifier,
	}
}

// CreateHomestay handles POST /api/homestays: validate, resolve the acting
// user, persist, then fire the webhook. The webhook runs after the row is
// durable, so its outcome never changes the response.
func (hc *HomestayController) CreateHomestay(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input models.HomestayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest,
			"Dữ liệu không hợp lệ", utils.ValidationDetails(err))
		return
	}
	input.Normalize()

	user, err := hc.Users.GetUser(session.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONMessage(c, http.StatusUnauthorized, "User not found")
			return
		}
		log.Printf("❌ fetch user %s: %v", session.Subject, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Có lỗi xảy ra khi tạo homestay")
		return
	}

	homestay, err := hc.Homestays.Create(user.ID, input)
	if err != nil {
		log.Printf("❌ create homestay for user %s: %v", user.ID, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Có lỗi xảy ra khi tạo homestay")
		return
	}

	hc.Notifier.Notify(user, homestay)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "✅ Đang tạo chatbot... Chúng tôi sẽ gửi kết quả qua email!",
		"homestay": homestay,
	})
}

// ListHomestays handles GET /api/homestays.
func (hc *HomestayController) ListHomestays(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	homestays, err := hc.Homestays.GetByUser(session.Subject)
	if err != nil {
		log.Printf("❌ list homestays for user %s: %v", session.Subject, err)
		utils.JSONMessage(c, http.StatusInternalServerError, "Failed to fetch homestays")
		return
	}

	c.JSON(http.StatusOK, homestays)
}
