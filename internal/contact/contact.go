package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Injecter en klient (for testbarhet)
var HttpClient = http.DefaultClient

var ErrMissingFields = errors.New("navn, e-post, emne og melding må fylles ut")

type Message struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Validate speiler required-feltene i skjemaet.
func (m Message) Validate() error {
	var missing []string
	for field, value := range map[string]string{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
		"message": m.Message,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (mangler %d felt)", ErrMissingFields, len(missing))
	}
	return nil
}

// Notification er den korte beskjeden brukeren får etter innsending.
type Notification struct {
	Success     bool   `json:"success"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	SuccessNotification = Notification{
		Success:     true,
		Title:       "Thanks! Your message has been sent.",
		Description: "I'll get back to you within 24 hours.",
	}
	FailureNotification = Notification{
		Success:     false,
		Title:       "Oops! Something went wrong, please try again.",
		Description: "Please try submitting your message again.",
	}
)

// Relay sender skjemaet videre til en Formspree-lignende tjeneste.
type Relay struct {
	Endpoint string
}

func NewRelay(endpoint string) *Relay {
	return &Relay{Endpoint: endpoint}
}

// Submit poster meldingen som JSON én gang, uten retry.
func (r *Relay) Submit(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("kunne ikke serialisere melding: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("innsending feilet: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Klarte ikke å lukke body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		slog.Error("Skjematjenesten avviste meldingen", "status", resp.StatusCode, "body", string(respBody))
		return fmt.Errorf("skjematjenesten svarte med status %d", resp.StatusCode)
	}

	slog.Info("Kontaktmelding sendt", "subject", msg.Subject)
	return nil
}

// NotificationFor velger beskjed ut fra resultatet av Submit.
func NotificationFor(err error) Notification {
	if err != nil {
		return FailureNotification
	}
	return SuccessNotification
}
