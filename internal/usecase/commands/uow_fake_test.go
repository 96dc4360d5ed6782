//go:build unit

package commands_test

import (
	"context"
	"sync"

	"reservation-management/internal/domain/customer"
	"reservation-management/internal/domain/reservation"
	"reservation-management/internal/domain/room"
	"reservation-management/internal/infra"
	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW is an in-memory UnitOfWork. Each Within call runs under one lock
// and snapshots state up front, so a returned error rolls everything back
// and concurrent transactions serialize the way the real one does.
type fakeUoW struct {
	mu    sync.Mutex
	state *fakeState

	// error injection
	reservationCreateErr error
	customerUpdateErr    error
}

type fakeState struct {
	customers    map[uuid.UUID]*shared.CustomerSnapshot
	rooms        map[uuid.UUID]*shared.RoomSnapshot
	reservations map[uuid.UUID]*shared.ReservationSnapshot
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		state: &fakeState{
			customers:    make(map[uuid.UUID]*shared.CustomerSnapshot),
			rooms:        make(map[uuid.UUID]*shared.RoomSnapshot),
			reservations: make(map[uuid.UUID]*shared.ReservationSnapshot),
		},
	}
}

func (s *fakeState) clone() *fakeState {
	cloned := &fakeState{
		customers:    make(map[uuid.UUID]*shared.CustomerSnapshot, len(s.customers)),
		rooms:        make(map[uuid.UUID]*shared.RoomSnapshot, len(s.rooms)),
		reservations: make(map[uuid.UUID]*shared.ReservationSnapshot, len(s.reservations)),
	}
	for id, c := range s.customers {
		copied := *c
		cloned.customers[id] = &copied
	}
	for id, r := range s.rooms {
		copied := *r
		cloned.rooms[id] = &copied
	}
	for id, r := range s.reservations {
		copied := *r
		cloned.reservations[id] = &copied
	}
	return cloned
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	before := u.state.clone()
	if err := fn(ctx, &fakeTx{uow: u}); err != nil {
		u.state = before
		return err
	}
	return nil
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &lockedReads{uow: u}
}

// helpers used by tests to seed and inspect state

func (u *fakeUoW) putCustomer(snap *shared.CustomerSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.customers[snap.ID] = snap
}

func (u *fakeUoW) putRoom(snap *shared.RoomSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.rooms[snap.ID] = snap
}

func (u *fakeUoW) putReservation(snap *shared.ReservationSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.reservations[snap.ID] = snap
}

func (u *fakeUoW) customerByID(id uuid.UUID) *shared.CustomerSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.customers[id]
}

func (u *fakeUoW) roomByID(id uuid.UUID) *shared.RoomSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.rooms[id]
}

func (u *fakeUoW) reservationByID(id uuid.UUID) *shared.ReservationSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.reservations[id]
}

func (u *fakeUoW) reservationCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.reservations)
}

// fakeTx assumes the Within lock is held.

type fakeTx struct {
	uow *fakeUoW
}

func (t *fakeTx) Customers() shared.CustomerRepository       { return &fakeCustomerRepo{uow: t.uow} }
func (t *fakeTx) Rooms() shared.RoomRepository               { return &fakeRoomRepo{uow: t.uow} }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeReservationRepo{uow: t.uow} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &bareReads{uow: t.uow} }
func (t *fakeTx) DB() infra.DBTX                             { return nil }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// bareReads serves in-transaction reads without re-acquiring the lock.
type bareReads struct {
	uow *fakeUoW
}

func (r *bareReads) CustomerByID(_ context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	snap, ok := r.uow.state.customers[id]
	if !ok {
		return nil, notFoundErr("customer not found")
	}
	copied := *snap
	return &copied, nil
}

func (r *bareReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	snap, ok := r.uow.state.rooms[id]
	if !ok {
		return nil, notFoundErr("room not found")
	}
	copied := *snap
	return &copied, nil
}

func (r *bareReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, ok := r.uow.state.reservations[id]
	if !ok {
		return nil, notFoundErr("reservation not found")
	}
	copied := *snap
	return &copied, nil
}

type lockedReads struct {
	uow *fakeUoW
}

func (r *lockedReads) CustomerByID(ctx context.Context, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&bareReads{uow: r.uow}).CustomerByID(ctx, id)
}

func (r *lockedReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&bareReads{uow: r.uow}).RoomByID(ctx, id)
}

func (r *lockedReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return (&bareReads{uow: r.uow}).ReservationByID(ctx, id)
}

type fakeCustomerRepo struct {
	uow *fakeUoW
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ infra.DBTX, c *customer.Customer, stamp audit.Stamp) (uuid.UUID, error) {
	for _, existing := range r.uow.state.customers {
		if existing.NationalID == c.NationalID() {
			return uuid.Nil, infra.WrapRepoErr("duplicate national ID", nil, infra.KindDuplicateKey)
		}
	}
	r.uow.state.customers[c.ID()] = &shared.CustomerSnapshot{
		ID:          c.ID(),
		Name:        c.Name(),
		DateOfBirth: c.DateOfBirth(),
		NationalID:  c.NationalID(),
		Email:       c.Email(),
		Stamp:       stamp,
	}
	return c.ID(), nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, _ infra.DBTX, c *customer.Customer, stamp audit.Stamp) error {
	if r.uow.customerUpdateErr != nil {
		return r.uow.customerUpdateErr
	}
	if _, ok := r.uow.state.customers[c.ID()]; !ok {
		return notFoundErr("customer not found")
	}
	r.uow.state.customers[c.ID()] = &shared.CustomerSnapshot{
		ID:          c.ID(),
		Name:        c.Name(),
		DateOfBirth: c.DateOfBirth(),
		NationalID:  c.NationalID(),
		Email:       c.Email(),
		Stamp:       stamp,
	}
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, _ infra.DBTX, id uuid.UUID) error {
	if _, ok := r.uow.state.customers[id]; !ok {
		return notFoundErr("customer not found")
	}
	delete(r.uow.state.customers, id)
	return nil
}

type fakeRoomRepo struct {
	uow *fakeUoW
}

func (r *fakeRoomRepo) Create(_ context.Context, _ infra.DBTX, rm *room.Room, stamp audit.Stamp) (uuid.UUID, error) {
	for _, existing := range r.uow.state.rooms {
		if existing.Number == rm.Number() {
			return uuid.Nil, infra.WrapRepoErr("duplicate room number", nil, infra.KindDuplicateKey)
		}
	}
	r.uow.state.rooms[rm.ID()] = &shared.RoomSnapshot{
		ID:            rm.ID(),
		Number:        rm.Number(),
		Description:   rm.Description(),
		Size:          rm.Size(),
		PricePerMonth: rm.PricePerMonth(),
		Busy:          rm.Busy(),
		Active:        rm.Active(),
		Stamp:         stamp,
	}
	return rm.ID(), nil
}

func (r *fakeRoomRepo) Update(_ context.Context, _ infra.DBTX, rm *room.Room, stamp audit.Stamp) error {
	if _, ok := r.uow.state.rooms[rm.ID()]; !ok {
		return notFoundErr("room not found")
	}
	r.uow.state.rooms[rm.ID()] = &shared.RoomSnapshot{
		ID:            rm.ID(),
		Number:        rm.Number(),
		Description:   rm.Description(),
		Size:          rm.Size(),
		PricePerMonth: rm.PricePerMonth(),
		Busy:          rm.Busy(),
		Active:        rm.Active(),
		Stamp:         stamp,
	}
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, _ infra.DBTX, id uuid.UUID) error {
	if _, ok := r.uow.state.rooms[id]; !ok {
		return notFoundErr("room not found")
	}
	delete(r.uow.state.rooms, id)
	return nil
}

func (r *fakeRoomRepo) ClaimIfFree(_ context.Context, _ infra.DBTX, id uuid.UUID) (bool, error) {
	snap, ok := r.uow.state.rooms[id]
	if !ok || snap.Busy {
		return false, nil
	}
	snap.Busy = true
	return true, nil
}

func (r *fakeRoomRepo) Release(_ context.Context, _ infra.DBTX, id uuid.UUID) error {
	if snap, ok := r.uow.state.rooms[id]; ok {
		snap.Busy = false
	}
	return nil
}

type fakeReservationRepo struct {
	uow *fakeUoW
}

func (r *fakeReservationRepo) Create(_ context.Context, _ infra.DBTX, res *reservation.Reservation, stamp audit.Stamp) (uuid.UUID, error) {
	if r.uow.reservationCreateErr != nil {
		return uuid.Nil, r.uow.reservationCreateErr
	}
	for _, existing := range r.uow.state.reservations {
		if existing.Code == res.Code() {
			return uuid.Nil, infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey)
		}
	}
	r.uow.state.reservations[res.ID()] = reservationSnapshot(res, stamp)
	return res.ID(), nil
}

func (r *fakeReservationRepo) Update(_ context.Context, _ infra.DBTX, res *reservation.Reservation, stamp audit.Stamp) error {
	if _, ok := r.uow.state.reservations[res.ID()]; !ok {
		return notFoundErr("reservation not found")
	}
	r.uow.state.reservations[res.ID()] = reservationSnapshot(res, stamp)
	return nil
}

func (r *fakeReservationRepo) Delete(_ context.Context, _ infra.DBTX, id uuid.UUID) error {
	if _, ok := r.uow.state.reservations[id]; !ok {
		return notFoundErr("reservation not found")
	}
	delete(r.uow.state.reservations, id)
	return nil
}

func (r *fakeReservationRepo) ExistsByCustomer(_ context.Context, _ infra.DBTX, customerID uuid.UUID) (bool, error) {
	for _, res := range r.uow.state.reservations {
		if res.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) ExistsByRoom(_ context.Context, _ infra.DBTX, roomID uuid.UUID) (bool, error) {
	for _, res := range r.uow.state.reservations {
		if res.RoomID == roomID {
			return true, nil
		}
	}
	return false, nil
}

func reservationSnapshot(res *reservation.Reservation, stamp audit.Stamp) *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:          res.ID(),
		Code:        res.Code(),
		CustomerID:  res.CustomerID(),
		RoomID:      res.RoomID(),
		Price:       res.Price(),
		Description: res.Description(),
		Duration:    res.Duration(),
		StartDate:   res.StartDate(),
		EndDate:     res.EndDate(),
		Active:      res.IsActive(),
		Stamp:       stamp,
	}
}
