package jobs

import (
	"context"
	"time"

	"vehicle-rental-backend/internal/logger"
)

// ActivateUpcomingBookings flips upcoming bookings to active once their
// start time has passed.
func (jr *JobRunner) ActivateUpcomingBookings() {
	jr.runWithRecovery("ActivateUpcomingBookings", func() {
		ctx := context.Background()

		activated, err := jr.store.BookingRepository.ActivateStarted(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to activate started bookings", "error", err)
			return
		}
		if activated > 0 {
			logger.Info("Activated started bookings", "count", activated)
		}
	})
}

// CompleteExpiredBookings flips active bookings to completed once their
// end time has passed.
func (jr *JobRunner) CompleteExpiredBookings() {
	jr.runWithRecovery("CompleteExpiredBookings", func() {
		ctx := context.Background()

		completed, err := jr.store.BookingRepository.CompleteExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to complete expired bookings", "error", err)
			return
		}
		if completed > 0 {
			logger.Info("Completed expired bookings", "count", completed)
		}
	})
}

// SendBookingReminders emails customers whose booking starts within the
// next 24 hours.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx := context.Background()

		now := time.Now().UTC()
		bookings, err := jr.store.BookingRepository.ListStartingBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list upcoming bookings", "error", err)
			return
		}

		sent := 0
		for i := range bookings {
			booking := &bookings[i]

			user, err := jr.store.UserRepository.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load booking user", "booking_id", booking.ID, "error", err)
				continue
			}
			vehicle, err := jr.store.VehicleRepository.GetByID(ctx, booking.VehicleID)
			if err != nil {
				logger.Error("Failed to load booking vehicle", "booking_id", booking.ID, "error", err)
				continue
			}

			if err := jr.emailSvc.SendBookingReminder(ctx, user.Email, user.Name, booking, vehicle.Name); err != nil {
				logger.Error("Failed to send booking reminder", "booking_id", booking.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent booking reminders", "count", sent, "candidates", len(bookings))
	})
}

// ExpirePendingUploads removes upload records the client never confirmed.
func (jr *JobRunner) ExpirePendingUploads() {
	jr.runWithRecovery("ExpirePendingUploads", func() {
		ctx := context.Background()

		removed, err := jr.store.DocumentRepository.DeleteExpiredPending(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to expire pending uploads", "error", err)
			return
		}
		if removed > 0 {
			logger.Info("Expired pending uploads", "count", removed)
		}
	})
}
