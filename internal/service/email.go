package service

import (
	"context"
	"fmt"
	"strconv"

	"vehicle-rental-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name string, booking *domain.Booking, vehicleName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("New booking for %s", vehicleName))

	body := fmt.Sprintf(
		"Hello %s,\n\n%s has been booked.\n\nReference: %s\nStart: %s\nDuration: %d %s(s)\nTotal: %s\n\nBest regards,\nThe Rental Team",
		name, vehicleName, booking.Reference,
		booking.StartDate.Format("Mon, 02 Jan 2006 3:04 PM"),
		booking.Duration, booking.BookingType,
		formatCents(booking.TotalCostCents),
	)
	m.SetBody("text/plain", body)

	return s.send(m, "booking confirmation")
}

func (s *emailService) SendTaskAssignment(ctx context.Context, email, name string, task *domain.StaffTask, vehicleName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("New %s task assigned", task.Type))

	body := fmt.Sprintf(
		"Hello %s,\n\nYou have been assigned a %s task for %s.\n\nScheduled: %s\n\nBest regards,\nThe Rental Team",
		name, task.Type, vehicleName,
		task.ScheduledTime.Format("Mon, 02 Jan 2006 3:04 PM"),
	)
	m.SetBody("text/plain", body)

	return s.send(m, "task assignment")
}

func (s *emailService) SendBookingReminder(ctx context.Context, email, name string, booking *domain.Booking, vehicleName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: your %s booking starts soon", vehicleName))

	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking of %s starts at %s.\n\nReference: %s\n\nBest regards,\nThe Rental Team",
		name, vehicleName,
		booking.StartDate.Format("Mon, 02 Jan 2006 3:04 PM"),
		booking.Reference,
	)
	m.SetBody("text/plain", body)

	return s.send(m, "booking reminder")
}

func (s *emailService) send(m *gomail.Message, kind string) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}
	return nil
}

func formatCents(cents int32) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
