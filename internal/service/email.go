package service

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid-backed mailer. With an empty API key it
// logs instead of sending, which is what dev and CI run with.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	svc := &emailService{
		fromEmail: fromEmail,
		fromName:  fromName,
	}
	if apiKey != "" {
		svc.client = sendgrid.NewSendClient(apiKey)
	}
	return svc
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	if s.client == nil {
		logger.Info("Email delivery disabled, logging instead", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (s *emailService) SendReservationConfirmed(ctx context.Context, email, name, car string, startDate, endDate time.Time) error {
	subject := "Your reservation is confirmed"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for the %s from %s to %s is confirmed. The car will be ready at pickup.\n\nThe CarRental Team",
		name, car, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"),
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendReservationCompleted(ctx context.Context, email, name, car string, totalDueCents int64) error {
	subject := "Thanks for renting with us"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of the %s is complete. The total due, including any extra fees, is %.2f.\n\nThe CarRental Team",
		name, car, float64(totalDueCents)/100,
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, name, car string, startDate time.Time) error {
	subject := "Pickup reminder"
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder that your rental of the %s starts on %s.\n\nThe CarRental Team",
		name, car, startDate.Format("2006-01-02"),
	)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email, name, car string, endDate time.Time) error {
	subject := "Your rental is overdue"
	body := fmt.Sprintf(
		"Hello %s,\n\nThe %s was due back on %s. Please return it as soon as possible; late fees apply per day.\n\nThe CarRental Team",
		name, car, endDate.Format("2006-01-02"),
	)
	return s.send(ctx, email, name, subject, body)
}
