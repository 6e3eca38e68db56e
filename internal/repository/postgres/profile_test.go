package postgres

import (
	"context"
	"testing"

	"vehicle-rental-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodRepository_CreateAndClearDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentMethodRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		pm := &domain.PaymentMethod{
			UserID:    1,
			Type:      domain.PaymentMethodTypeCard,
			Name:      "Visa •••• 4242",
			Details:   "exp 12/28",
			IsDefault: true,
		}

		mock.ExpectQuery("INSERT INTO payment_methods").
			WithArgs(int32(1), domain.PaymentMethodTypeCard, "Visa •••• 4242", "exp 12/28", true, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(7)))

		err := repo.Create(ctx, pm)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), pm.ID)
	})

	t.Run("ClearDefault", func(t *testing.T) {
		mock.ExpectExec("UPDATE payment_methods SET is_default = false").
			WithArgs(int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.ClearDefault(ctx, 1)
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentMethodRepository_ListByUser_DefaultFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentMethodRepository(db)
	ctx := context.Background()

	cols := []string{"id", "user_id", "type", "name", "details", "is_default", "created_on"}
	rows := sqlmock.NewRows(cols).
		AddRow(int32(2), int32(1), "upi", "me@upi", "", true, "2026-01-02T00:00:00Z").
		AddRow(int32(1), int32(1), "card", "Visa •••• 4242", "exp 12/28", false, "2026-01-01T00:00:00Z")

	mock.ExpectQuery("SELECT (.+) FROM payment_methods WHERE user_id").
		WithArgs(int32(1)).
		WillReturnRows(rows)

	methods, err := repo.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, methods, 2)
	assert.True(t, methods[0].IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKYCRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewKYCRepository(db)
	ctx := context.Background()

	doc := &domain.KYCDocument{
		UserID:      1,
		FullName:    "Test Rider",
		DateOfBirth: "1990-04-01",
		Address:     "42 Hill Road",
		Phone:       "555",
		Email:       "rider@test.com",
		Status:      domain.KYCStatusPending,
	}

	mock.ExpectExec("INSERT INTO kyc_documents").
		WithArgs(int32(1), "Test Rider", "1990-04-01", "42 Hill Road", "555", "rider@test.com",
			"", "", "", domain.KYCStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(ctx, doc)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
