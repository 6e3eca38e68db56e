package service

import (
	"context"
	"database/sql"
	"testing"

	"vehicle-rental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProfileServiceForTest() (ProfileService, *MockPaymentMethodRepo, *MockSavedLocationRepo, *MockKYCRepo) {
	paymentRepo := new(MockPaymentMethodRepo)
	locationRepo := new(MockSavedLocationRepo)
	kycRepo := new(MockKYCRepo)
	svc := NewProfileService(paymentRepo, locationRepo, kycRepo)
	return svc, paymentRepo, locationRepo, kycRepo
}

func TestProfileService_AddPaymentMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("First Method Becomes Default", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		paymentRepo.On("ListByUser", ctx, int32(1)).Return([]domain.PaymentMethod{}, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentMethod")).Return(nil)

		pm := &domain.PaymentMethod{Type: domain.PaymentMethodTypeCard, Name: "Visa •••• 4242"}
		err := svc.AddPaymentMethod(ctx, 1, pm)
		assert.NoError(t, err)
		assert.True(t, pm.IsDefault)
		paymentRepo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	})

	t.Run("New Default Demotes Existing", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		existing := []domain.PaymentMethod{{ID: 1, UserID: 1, IsDefault: true}}
		paymentRepo.On("ListByUser", ctx, int32(1)).Return(existing, nil)
		paymentRepo.On("ClearDefault", ctx, int32(1)).Return(nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentMethod")).Return(nil)

		pm := &domain.PaymentMethod{Type: domain.PaymentMethodTypeUPI, Name: "me@upi", IsDefault: true}
		err := svc.AddPaymentMethod(ctx, 1, pm)
		assert.NoError(t, err)
		paymentRepo.AssertCalled(t, "ClearDefault", ctx, int32(1))
	})

	t.Run("Non Default Addition Leaves Default Alone", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		existing := []domain.PaymentMethod{{ID: 1, UserID: 1, IsDefault: true}}
		paymentRepo.On("ListByUser", ctx, int32(1)).Return(existing, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentMethod")).Return(nil)

		pm := &domain.PaymentMethod{Type: domain.PaymentMethodTypeWallet, Name: "Wallet"}
		err := svc.AddPaymentMethod(ctx, 1, pm)
		assert.NoError(t, err)
		assert.False(t, pm.IsDefault)
		paymentRepo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	})
}

func TestProfileService_SetDefaultPaymentMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears Then Sets", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		pm := &domain.PaymentMethod{ID: 2, UserID: 1}
		paymentRepo.On("GetByID", ctx, int32(2)).Return(pm, nil)
		paymentRepo.On("ClearDefault", ctx, int32(1)).Return(nil)
		paymentRepo.On("Update", ctx, mock.MatchedBy(func(got *domain.PaymentMethod) bool {
			return got.ID == 2 && got.IsDefault
		})).Return(nil)

		err := svc.SetDefaultPaymentMethod(ctx, 1, 2)
		assert.NoError(t, err)
	})

	t.Run("Other Users Method Rejected", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		pm := &domain.PaymentMethod{ID: 2, UserID: 9}
		paymentRepo.On("GetByID", ctx, int32(2)).Return(pm, nil)

		err := svc.SetDefaultPaymentMethod(ctx, 1, 2)
		assert.ErrorIs(t, err, ErrUnauthorized)
		paymentRepo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	})
}

func TestProfileService_DeletePaymentMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("Deleting Default Promotes Oldest Remaining", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		pm := &domain.PaymentMethod{ID: 2, UserID: 1, IsDefault: true}
		paymentRepo.On("GetByID", ctx, int32(2)).Return(pm, nil)
		paymentRepo.On("Delete", ctx, int32(2), int32(1)).Return(nil)
		paymentRepo.On("ListByUser", ctx, int32(1)).Return([]domain.PaymentMethod{{ID: 3, UserID: 1}}, nil)
		paymentRepo.On("Update", ctx, mock.MatchedBy(func(got *domain.PaymentMethod) bool {
			return got.ID == 3 && got.IsDefault
		})).Return(nil)

		err := svc.DeletePaymentMethod(ctx, 1, 2)
		assert.NoError(t, err)
	})

	t.Run("Deleting Non Default Touches Nothing Else", func(t *testing.T) {
		svc, paymentRepo, _, _ := newProfileServiceForTest()

		pm := &domain.PaymentMethod{ID: 2, UserID: 1}
		paymentRepo.On("GetByID", ctx, int32(2)).Return(pm, nil)
		paymentRepo.On("Delete", ctx, int32(2), int32(1)).Return(nil)

		err := svc.DeletePaymentMethod(ctx, 1, 2)
		assert.NoError(t, err)
		paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProfileService_KYC(t *testing.T) {
	ctx := context.Background()

	t.Run("GetKYC Without Submission Returns Placeholder", func(t *testing.T) {
		svc, _, _, kycRepo := newProfileServiceForTest()

		kycRepo.On("GetByUser", ctx, int32(1)).Return(nil, sql.ErrNoRows)

		doc, err := svc.GetKYC(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.KYCStatusNotSubmitted, doc.Status)
		assert.Equal(t, int32(1), doc.UserID)
	})

	t.Run("SubmitKYC Resets To Pending", func(t *testing.T) {
		svc, _, _, kycRepo := newProfileServiceForTest()

		kycRepo.On("Upsert", ctx, mock.MatchedBy(func(doc *domain.KYCDocument) bool {
			return doc.UserID == 1 && doc.Status == domain.KYCStatusPending
		})).Return(nil)

		doc := &domain.KYCDocument{
			FullName:    "Test Rider",
			DateOfBirth: "1990-04-01",
			Status:      domain.KYCStatusVerified, // client cannot pre-verify itself
		}
		err := svc.SubmitKYC(ctx, 1, doc)
		assert.NoError(t, err)
		assert.Equal(t, domain.KYCStatusPending, doc.Status)
	})
}
