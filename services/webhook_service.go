package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"homestay-backend/models"
)

// DefaultWebhookEndpoint is the automation scenario that builds the chatbot
// from a submission. Override with WEBHOOK_URL.
const DefaultWebhookEndpoint = "https://hook.eu2.make.com/sn4r70kgmnykglhuxkpr7y0dknu8gh3b"

// WebhookService notifies the external automation after a homestay has been
// durably created. Delivery is best effort: one attempt, failures are logged
// and never reach the caller.
type WebhookService struct {
	Endpoint string
	Client   *http.Client

	wg sync.WaitGroup
}

func NewWebhookService(endpoint string) *WebhookService {
	if endpoint == "" {
		endpoint = DefaultWebhookEndpoint
	}
	return &WebhookService{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Field names below are the storage column names, fixed by contract with
// the receiving scenario. Do not rename.
type webhookUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type webhookHomestay struct {
	Ten     string           `json:"ten"`
	DiaChi  string           `json:"dia_chi"`
	Sdt     string           `json:"sdt"`
	Email   string           `json:"email"`
	Website string           `json:"website"`
	Faq     []models.FAQItem `json:"faq"`
	DichVu  []string         `json:"dich_vu"`
	QuanAn  string           `json:"quan_an"`
	Checkin string           `json:"checkin"`
	LuuY    string           `json:"luu_y"`
}

type webhookPayload struct {
	User     webhookUser     `json:"user"`
	Homestay webhookHomestay `json:"homestay"`
}

// Notify dispatches the payload on its own goroutine so the response path
// never waits on the automation endpoint. The homestay is already persisted
// when this runs; a failed delivery only produces a log line.
func (s *WebhookService) Notify(user models.User, homestay models.Homestay) {
	payload := webhookPayload{
		User: webhookUser{
			Name:   user.FullName(),
			Email:  user.Email,
			Avatar: user.ProfileImageURL,
		},
		Homestay: webhookHomestay{
			Ten:     homestay.Ten,
			DiaChi:  homestay.DiaChi,
			Sdt:     homestay.Sdt,
			Email:   homestay.Email,
			Website: homestay.Website,
			Faq:     homestay.Faq,
			DichVu:  homestay.DichVu,
			QuanAn:  homestay.QuanAn,
			Checkin: homestay.Checkin,
			LuuY:    homestay.LuuY,
		},
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.send(payload); err != nil {
			log.Printf("⚠️  webhook delivery failed for homestay %s: %v", homestay.ID, err)
		}
	}()
}

// Wait blocks until every dispatched notification has finished. main calls
// it during shutdown; tests use it to observe completion.
func (s *WebhookService) Wait() {
	s.wg.Wait()
}

func (s *WebhookService) send(payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &WebhookStatusError{Status: resp.StatusCode}
	}
	return nil
}

type WebhookStatusError struct {
	Status int
}

func (e *WebhookStatusError) Error() string {
	return fmt.Sprintf("webhook returned HTTP %d", e.Status)
}
