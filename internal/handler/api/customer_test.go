//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"reservation-management/internal/handler/api"
	resdto "reservation-management/internal/handler/dto/response"
	"reservation-management/internal/pkg/errs"
	"reservation-management/internal/usecase/commands"
	"reservation-management/tests/common/builder"
	"reservation-management/tests/common/httptest"
	commandsmock "reservation-management/tests/mock/commands"
	queriesmock "reservation-management/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	mockQueries  *queriesmock.MockCustomerQueries
	handler      *api.CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomerQueries(s.mockCtrl)
	s.handler = api.NewCustomerHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/customers", s.handler.CreateCustomer)
	s.router.GET("/customers", s.handler.ListCustomers)
	s.router.GET("/customers/:id", s.handler.GetCustomer)
	s.router.PUT("/customers/:id", s.handler.UpdateCustomer)
	s.router.DELETE("/customers/:id", s.handler.DeleteCustomer)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestCreate() {
	url := "/customers"

	s.Run("success: returns 201 Created with the stored view", func() {
		b := builder.NewCustomerBuilder()
		view := b.BuildView()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), "")

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"name": 42}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandError   error
			expectedStatus int
		}{
			{name: "underage customer", commandError: errs.ErrAgeRestriction, expectedStatus: http.StatusUnprocessableEntity},
			{name: "duplicate national ID", commandError: commands.ErrDuplicateNationalID, expectedStatus: http.StatusConflict},
			{name: "domain validation", commandError: errs.ErrDomainValidation, expectedStatus: http.StatusUnprocessableEntity},
			{name: "unexpected failure", commandError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.commandError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					builder.NewCustomerBuilder().BuildCreateRequestDTO(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *CustomerHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 with the view", func() {
		view := builder.NewCustomerBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+view.ID.String(), nil, "")

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid customer ID format")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/customers/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *CustomerHandlerTestSuite) TestUpdate() {
	s.Run("success: returns 200 with the refreshed view", func() {
		b := builder.NewCustomerBuilder()
		view := b.BuildView()

		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/"+view.ID.String(),
			b.BuildUpdateRequestDTO(), "")

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(uuid.Nil, errs.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/"+id.String(),
			builder.NewCustomerBuilder().BuildUpdateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})

	s.Run("error: 409 on duplicate national ID", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateNationalID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/customers/"+id.String(),
			builder.NewCustomerBuilder().BuildUpdateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *CustomerHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the customer has reservations", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrReferentialConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be deleted")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/customers/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}
