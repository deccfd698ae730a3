//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/domain/payment"
	"agendapay/internal/domain/user"
	"agendapay/internal/domain/work"
	"agendapay/internal/infra"
	"agendapay/internal/infra/gateway"
	"agendapay/internal/infra/metrics"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/clock"
	"agendapay/internal/pkg/config"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"
	"agendapay/internal/usecase/commands"
	commandsmock "agendapay/tests/mock/commands"
	gatewaymock "agendapay/tests/mock/gateway"
)

type paymentFixture struct {
	uc           commands.PaymentCommands
	payments     *commandsmock.MockPaymentRepository
	appointments *commandsmock.MockAppointmentRepository
	works        *commandsmock.MockWorkRepository
	users        *commandsmock.MockUserRepository
	provider     *gatewaymock.MockProvider
	tokenSource  *commandsmock.MockMerchantTokenSource
	clock        *clock.MockClock
	cfg          config.GatewayConfig
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	f := &paymentFixture{
		payments:     commandsmock.NewMockPaymentRepository(ctrl),
		appointments: commandsmock.NewMockAppointmentRepository(ctrl),
		works:        commandsmock.NewMockWorkRepository(ctrl),
		users:        commandsmock.NewMockUserRepository(ctrl),
		provider:     gatewaymock.NewMockProvider(ctrl),
		tokenSource:  commandsmock.NewMockMerchantTokenSource(ctrl),
		clock:        clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)),
		cfg: config.GatewayConfig{
			WebhookURL:    "https://api.agendapay.test/webhook",
			PaymentExpiry: 15 * time.Minute,
		},
	}
	f.uc = commands.NewPaymentUseCase(
		f.payments, f.appointments, f.works, f.users,
		f.provider, f.tokenSource,
		pool, f.cfg, f.clock, metrics.New(prometheus.NewRegistry()),
	)
	return f
}

type paymentScenario struct {
	userID      uuid.UUID
	workEntity  *work.Work
	appointment *appointment.Appointment
}

func (f *paymentFixture) scenario(priceCents int64) paymentScenario {
	userID := uuid.New()
	workEntity := work.Reconstruct(uuid.New(), userID, "haircut", "", money.FromCents(priceCents), f.clock.Now(), f.clock.Now())
	workID := workEntity.ID()
	appt := appointment.Reconstruct(
		uuid.New(), userID, &workID, "haircut", f.clock.Now().Add(48*time.Hour),
		appointment.StatusPending, appointment.PaymentPending, money.Zero(),
		f.clock.Now(), f.clock.Now(),
	)
	return paymentScenario{userID: userID, workEntity: workEntity, appointment: appt}
}

func (f *paymentFixture) expectLookups(s paymentScenario) {
	f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.userID).
		Return(user.Reconstruct(s.userID, "payer", "payer@example.com", f.clock.Now()), nil)
	f.appointments.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.appointment.ID()).Return(s.appointment, nil)
	f.works.EXPECT().FindByID(gomock.Any(), gomock.Any(), s.workEntity.ID()).Return(s.workEntity, nil)
}

func TestCreatePaymentIntent_CreatesGatewayPayment(t *testing.T) {
	f := newPaymentFixture(t)
	s := f.scenario(5000)

	f.expectLookups(s)
	f.payments.EXPECT().HasPendingForAppointment(gomock.Any(), gomock.Any(), s.appointment.ID(), f.clock.Now()).Return(false, nil)
	f.tokenSource.EXPECT().AccessTokenFor(gomock.Any(), s.userID).Return("merchant-at", nil)
	f.provider.EXPECT().
		CreatePayment(gomock.Any(), "merchant-at", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req gateway.CreatePaymentRequest) (*gateway.PaymentIntent, error) {
			assert.Equal(t, money.FromCents(5000), req.Amount)
			assert.Equal(t, "haircut", req.Description)
			assert.Equal(t, "payer@example.com", req.PayerEmail)
			assert.Equal(t, "pix", req.Method)
			assert.Equal(t, "https://api.agendapay.test/webhook", req.NotificationURL)
			assert.Equal(t, s.appointment.ID().String(), req.ExternalReference)
			assert.NotEmpty(t, req.IdempotencyKey)
			assert.True(t, req.ExpiresAt.Equal(f.clock.Now().Add(15*time.Minute)))
			return &gateway.PaymentIntent{TransactionID: "tx-99", Status: "pending"}, nil
		})
	f.payments.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.DBTX, record *payment.Payment) error {
			assert.Equal(t, "tx-99", record.TransactionID())
			assert.Equal(t, payment.StatusPending, record.Status())
			return nil
		})

	record, err := f.uc.CreatePaymentIntent(context.Background(), commands.CreatePaymentInput{
		UserID:        s.userID,
		AppointmentID: s.appointment.ID(),
		Method:        "pix",
	})

	require.NoError(t, err)
	assert.Equal(t, "tx-99", record.TransactionID())
	assert.Equal(t, money.FromCents(5000), record.Amount())
	assert.True(t, record.ExpiresAt().Equal(f.clock.Now().Add(15*time.Minute)))
}

func TestCreatePaymentIntent_RejectsSecondPendingPayment(t *testing.T) {
	f := newPaymentFixture(t)
	s := f.scenario(5000)

	f.expectLookups(s)
	f.payments.EXPECT().HasPendingForAppointment(gomock.Any(), gomock.Any(), s.appointment.ID(), f.clock.Now()).Return(true, nil)

	_, err := f.uc.CreatePaymentIntent(context.Background(), commands.CreatePaymentInput{
		UserID:        s.userID,
		AppointmentID: s.appointment.ID(),
		Method:        "pix",
	})

	assert.ErrorIs(t, err, commands.ErrPaymentAlreadyPending)
}

func TestCreatePaymentIntent_AppointmentWithoutWork(t *testing.T) {
	f := newPaymentFixture(t)
	userID := uuid.New()
	appt := appointment.Reconstruct(
		uuid.New(), userID, nil, "haircut", f.clock.Now().Add(48*time.Hour),
		appointment.StatusPending, appointment.PaymentPending, money.Zero(),
		f.clock.Now(), f.clock.Now(),
	)

	f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), userID).
		Return(user.Reconstruct(userID, "payer", "payer@example.com", f.clock.Now()), nil)
	f.appointments.EXPECT().FindByID(gomock.Any(), gomock.Any(), appt.ID()).Return(appt, nil)

	_, err := f.uc.CreatePaymentIntent(context.Background(), commands.CreatePaymentInput{
		UserID:        userID,
		AppointmentID: appt.ID(),
		Method:        "pix",
	})

	assert.ErrorIs(t, err, commands.ErrAppointmentHasNoWork)
}

func TestCreatePaymentIntent_PropagatesGatewayFailure(t *testing.T) {
	f := newPaymentFixture(t)
	s := f.scenario(5000)
	gatewayErr := errs.Mark(errs.New("connection refused"), errs.ErrGatewayUnavailable)

	f.expectLookups(s)
	f.payments.EXPECT().HasPendingForAppointment(gomock.Any(), gomock.Any(), s.appointment.ID(), f.clock.Now()).Return(false, nil)
	f.tokenSource.EXPECT().AccessTokenFor(gomock.Any(), s.userID).Return("merchant-at", nil)
	f.provider.EXPECT().CreatePayment(gomock.Any(), "merchant-at", gomock.Any()).Return(nil, gatewayErr)
	f.provider.EXPECT().Name().Return("mercadopago")

	_, err := f.uc.CreatePaymentIntent(context.Background(), commands.CreatePaymentInput{
		UserID:        s.userID,
		AppointmentID: s.appointment.ID(),
		Method:        "pix",
	})

	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
}

func TestCreatePaymentIntent_DuplicateTransactionID(t *testing.T) {
	f := newPaymentFixture(t)
	s := f.scenario(5000)

	f.expectLookups(s)
	f.payments.EXPECT().HasPendingForAppointment(gomock.Any(), gomock.Any(), s.appointment.ID(), f.clock.Now()).Return(false, nil)
	f.tokenSource.EXPECT().AccessTokenFor(gomock.Any(), s.userID).Return("merchant-at", nil)
	f.provider.EXPECT().CreatePayment(gomock.Any(), "merchant-at", gomock.Any()).
		Return(&gateway.PaymentIntent{TransactionID: "tx-dup", Status: "pending"}, nil)
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("duplicate transaction", nil, infra.KindDuplicateKey))

	_, err := f.uc.CreatePaymentIntent(context.Background(), commands.CreatePaymentInput{
		UserID:        s.userID,
		AppointmentID: s.appointment.ID(),
		Method:        "pix",
	})

	assert.ErrorIs(t, err, commands.ErrDuplicateTransaction)
}
