//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/clock"
	"reservation-management/internal/pkg/errs"
	"reservation-management/internal/usecase/commands"
	"reservation-management/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CustomerCommandsTestSuite struct {
	suite.Suite
	uow      *fakeUoW
	clock    *clock.MockClock
	commands commands.CustomerCommands
}

func (s *CustomerCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	stamper := audit.NewStamper(s.clock, "system")
	s.commands = commands.NewCustomerCommands(s.uow, stamper, s.clock)
}

func TestCustomerCommandsSuite(t *testing.T) {
	suite.Run(t, new(CustomerCommandsTestSuite))
}

func (s *CustomerCommandsTestSuite) validParams() commands.CreateCustomerParams {
	return commands.CreateCustomerParams{
		Name:        "John Miller",
		DateOfBirth: time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC),
		NationalID:  "AB123456",
		Email:       "john.miller@example.com",
	}
}

func (s *CustomerCommandsTestSuite) TestCreate() {
	s.Run("success: persists the customer with a creation stamp", func() {
		s.SetupTest()
		ctx := audit.WithActor(context.Background(), "alice")
		id, err := s.commands.Create(ctx, s.validParams())
		s.Require().NoError(err)

		snap := s.uow.customerByID(id)
		s.Require().NotNil(snap)
		s.Equal("John Miller", snap.Name)
		s.Equal("alice", snap.Stamp.CreatedBy)
		s.Equal("alice", snap.Stamp.UpdatedBy)
		s.Equal(s.clock.Now(), snap.Stamp.CreatedAt)
	})

	s.Run("success: default actor when context carries none", func() {
		s.SetupTest()
		id, err := s.commands.Create(context.Background(), s.validParams())
		s.Require().NoError(err)
		s.Equal("system", s.uow.customerByID(id).Stamp.CreatedBy)
	})

	s.Run("error: underage customer", func() {
		s.SetupTest()
		params := s.validParams()
		params.DateOfBirth = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := s.commands.Create(context.Background(), params)
		s.ErrorIs(err, errs.ErrAgeRestriction)
	})

	s.Run("error: invalid fields map to domain validation", func() {
		s.SetupTest()
		params := s.validParams()
		params.Email = "not-an-email"
		_, err := s.commands.Create(context.Background(), params)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("error: duplicate national ID", func() {
		s.SetupTest()
		_, err := s.commands.Create(context.Background(), s.validParams())
		s.Require().NoError(err)

		params := s.validParams()
		params.Email = "other@example.com"
		_, err = s.commands.Create(context.Background(), params)
		s.ErrorIs(err, commands.ErrDuplicateNationalID)
	})
}

func (s *CustomerCommandsTestSuite) TestUpdate() {
	seed := func() uuid.UUID {
		s.SetupTest()
		id, err := s.commands.Create(context.Background(), s.validParams())
		s.Require().NoError(err)
		return id
	}

	s.Run("success: merges only the supplied fields", func() {
		id := seed()
		email := "new.address@example.com"
		_, err := s.commands.Update(context.Background(), id, commands.UpdateCustomerParams{
			Email: &email,
		})
		s.Require().NoError(err)

		snap := s.uow.customerByID(id)
		s.Equal("new.address@example.com", snap.Email)
		s.Equal("John Miller", snap.Name)
		s.Equal("AB123456", snap.NationalID)
	})

	s.Run("success: blank strings keep the stored values", func() {
		id := seed()
		blank := ""
		_, err := s.commands.Update(context.Background(), id, commands.UpdateCustomerParams{
			Name:       &blank,
			NationalID: &blank,
		})
		s.Require().NoError(err)

		snap := s.uow.customerByID(id)
		s.Equal("John Miller", snap.Name)
		s.Equal("AB123456", snap.NationalID)
	})

	s.Run("success: refreshes the update stamp only", func() {
		id := seed()
		before := s.uow.customerByID(id)

		s.clock.Add(30 * time.Minute)
		ctx := audit.WithActor(context.Background(), "bob")
		_, err := s.commands.Update(ctx, id, commands.UpdateCustomerParams{})
		s.Require().NoError(err)

		after := s.uow.customerByID(id)
		s.Equal(before.Stamp.CreatedBy, after.Stamp.CreatedBy)
		s.Equal(before.Stamp.CreatedAt, after.Stamp.CreatedAt)
		s.Equal("bob", after.Stamp.UpdatedBy)
		s.True(after.Stamp.UpdatedAt.After(before.Stamp.UpdatedAt))
	})

	s.Run("error: unknown customer", func() {
		s.SetupTest()
		_, err := s.commands.Update(context.Background(), uuid.New(), commands.UpdateCustomerParams{})
		s.ErrorIs(err, errs.ErrCustomerNotFound)
	})
}

func (s *CustomerCommandsTestSuite) TestDelete() {
	s.Run("success: removes an unreferenced customer", func() {
		s.SetupTest()
		id, err := s.commands.Create(context.Background(), s.validParams())
		s.Require().NoError(err)

		s.Require().NoError(s.commands.Delete(context.Background(), id))
		s.Nil(s.uow.customerByID(id))
	})

	s.Run("error: customer with reservations is protected", func() {
		s.SetupTest()
		id, err := s.commands.Create(context.Background(), s.validParams())
		s.Require().NoError(err)

		s.uow.putReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.CustomerID = id
		}).BuildSnapshot())

		err = s.commands.Delete(context.Background(), id)
		s.ErrorIs(err, errs.ErrReferentialConflict)
		s.NotNil(s.uow.customerByID(id))
	})

	s.Run("error: unknown customer", func() {
		s.SetupTest()
		err := s.commands.Delete(context.Background(), uuid.New())
		s.ErrorIs(err, errs.ErrCustomerNotFound)
	})
}
