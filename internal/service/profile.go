package service

import (
	"context"
	"database/sql"
	"errors"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/repository"
)

type profileService struct {
	paymentRepo  repository.PaymentMethodRepository
	locationRepo repository.SavedLocationRepository
	kycRepo      repository.KYCRepository
}

func NewProfileService(
	paymentRepo repository.PaymentMethodRepository,
	locationRepo repository.SavedLocationRepository,
	kycRepo repository.KYCRepository,
) ProfileService {
	return &profileService{
		paymentRepo:  paymentRepo,
		locationRepo: locationRepo,
		kycRepo:      kycRepo,
	}
}

func (s *profileService) ListPaymentMethods(ctx context.Context, userID int32) ([]domain.PaymentMethod, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}

// AddPaymentMethod stores a new method. The first method a user adds
// becomes the default; marking a later one default demotes the rest so at
// most one default exists per user.
func (s *profileService) AddPaymentMethod(ctx context.Context, userID int32, pm *domain.PaymentMethod) error {
	pm.UserID = userID

	existing, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		pm.IsDefault = true
	} else if pm.IsDefault {
		if err := s.paymentRepo.ClearDefault(ctx, userID); err != nil {
			return err
		}
	}
	return s.paymentRepo.Create(ctx, pm)
}

func (s *profileService) SetDefaultPaymentMethod(ctx context.Context, userID, id int32) error {
	pm, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if pm.UserID != userID {
		return ErrUnauthorized
	}

	if err := s.paymentRepo.ClearDefault(ctx, userID); err != nil {
		return err
	}
	pm.IsDefault = true
	return s.paymentRepo.Update(ctx, pm)
}

func (s *profileService) DeletePaymentMethod(ctx context.Context, userID, id int32) error {
	pm, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if pm.UserID != userID {
		return ErrUnauthorized
	}
	if err := s.paymentRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	// Deleting the default promotes the oldest remaining method.
	if pm.IsDefault {
		remaining, err := s.paymentRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			next := remaining[0]
			next.IsDefault = true
			return s.paymentRepo.Update(ctx, &next)
		}
	}
	return nil
}

func (s *profileService) ListLocations(ctx context.Context, userID int32) ([]domain.SavedLocation, error) {
	return s.locationRepo.ListByUser(ctx, userID)
}

func (s *profileService) AddLocation(ctx context.Context, userID int32, loc *domain.SavedLocation) error {
	loc.UserID = userID
	if loc.Type == "" {
		loc.Type = domain.LocationTypeOther
	}
	return s.locationRepo.Create(ctx, loc)
}

func (s *profileService) DeleteLocation(ctx context.Context, userID, id int32) error {
	return s.locationRepo.Delete(ctx, id, userID)
}

// GetKYC returns the user's document, or a not_submitted placeholder when
// nothing has been filed yet.
func (s *profileService) GetKYC(ctx context.Context, userID int32) (*domain.KYCDocument, error) {
	doc, err := s.kycRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.KYCDocument{
				UserID: userID,
				Status: domain.KYCStatusNotSubmitted,
			}, nil
		}
		return nil, err
	}
	return doc, nil
}

// SubmitKYC files or refiles the document. Resubmission resets the status
// to pending regardless of the previous verification outcome.
func (s *profileService) SubmitKYC(ctx context.Context, userID int32, doc *domain.KYCDocument) error {
	doc.UserID = userID
	doc.Status = domain.KYCStatusPending
	return s.kycRepo.Upsert(ctx, doc)
}
