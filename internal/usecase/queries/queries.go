// Package queries holds the read side of the use case layer. Queries
// return domain entities untouched; shaping for the wire happens in
// the handler DTOs.
package queries

import (
	"context"

	"agendapay/internal/domain/appointment"
	"agendapay/internal/domain/user"
	"agendapay/internal/domain/work"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/infra/repository"
	"agendapay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound        = errs.New("user not found")
	ErrWorkNotFound        = errs.New("work not found")
	ErrAppointmentNotFound = errs.New("appointment not found")
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
}

type WorkQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*work.Work, error)
	List(ctx context.Context, filter repository.WorkFilter) ([]*work.Work, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	List(ctx context.Context, filter repository.AppointmentFilter) ([]*appointment.Appointment, error)
}

type userQueriesImpl struct {
	users *repository.UserRepository
	db    postgres.Pool
}

func NewUserQueries(users *repository.UserRepository, db postgres.Pool) UserQueries {
	return &userQueriesImpl{users: users, db: db}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	entity, err := q.users.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to get user")
	}
	return entity, nil
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*user.User, error) {
	users, err := q.users.List(ctx, q.db)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return users, nil
}

type workQueriesImpl struct {
	works *repository.WorkRepository
	db    postgres.Pool
}

func NewWorkQueries(works *repository.WorkRepository, db postgres.Pool) WorkQueries {
	return &workQueriesImpl{works: works, db: db}
}

func (q *workQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*work.Work, error) {
	entity, err := q.works.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, errs.Wrap(err, "failed to get work")
	}
	return entity, nil
}

func (q *workQueriesImpl) List(ctx context.Context, filter repository.WorkFilter) ([]*work.Work, error) {
	works, err := q.works.List(ctx, q.db, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list works")
	}
	return works, nil
}

type appointmentQueriesImpl struct {
	appointments *repository.AppointmentRepository
	db           postgres.Pool
}

func NewAppointmentQueries(appointments *repository.AppointmentRepository, db postgres.Pool) AppointmentQueries {
	return &appointmentQueriesImpl{appointments: appointments, db: db}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	entity, err := q.appointments.FindByID(ctx, q.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Wrap(err, "failed to get appointment")
	}
	return entity, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter repository.AppointmentFilter) ([]*appointment.Appointment, error) {
	appts, err := q.appointments.List(ctx, q.db, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list appointments")
	}
	return appts, nil
}
