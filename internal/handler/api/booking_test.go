//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"gpark/internal/handler/api"
	resdto "gpark/internal/handler/dto/response"
	"gpark/internal/pkg/errs"
	"gpark/internal/usecase/commands"
	"gpark/internal/usecase/queries"
	"gpark/internal/usecase/shared"
	"gpark/tests/common/authtest"
	"gpark/tests/common/builder"
	"gpark/tests/common/httptest"
	"gpark/tests/common/testutil"
	commandsmock "gpark/tests/mock/commands"
	queriesmock "gpark/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockAllocationCommands
	mockQueries   *queriesmock.MockAllocationQueries
	handler       *api.BookingHandler
	operatorToken string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = newSessionRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAllocationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAllocationQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.operatorToken = authtest.NewJWTHelper(testJWTConfig).OperatorToken(s.T())

	s.router.POST("/bookings", s.handler.Create)
	s.router.POST("/admin/bookings", s.handler.CreateAsOperator)
	s.router.GET("/admin/bookings", s.handler.List)
	s.router.POST("/admin/bookings/reap", s.handler.Reap)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	price := 2.5

	s.Run("success: returns 201 Created with booking and price", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), b.BuildParams()).
			Return(b.BuildResult(&price), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Booking confirmed", body.Message)
		s.Require().NotNil(body.Booking)
		s.Equal("10007", body.Booking.ParkingSpotID)
		s.Equal("ABC-123", body.Booking.LicensePlate)
		s.Equal(30, body.Booking.Duration)
		s.Equal(int64(1800), body.Booking.RemainingSeconds)
		s.Require().NotNil(body.Price)
		s.InDelta(2.5, *body.Price, 1e-9)
	})

	s.Run("success: price is omitted when the spot has no rate", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(b.BuildResult(nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.NotContains(rec.Body.String(), `"price"`)
	})

	s.Run("success: duration may be sent as a string", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), b.BuildParams()).
			Return(b.BuildResult(&price), nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("duration", "30"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on missing or malformed fields", func() {
		testCases := []testCaseBooking{
			{name: "missing field: parkingSpotId", mutate: testutil.Field("parkingSpotId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: licensePlate", mutate: testutil.Field("licensePlate", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: duration", mutate: testutil.Field("duration", nil), expectCode: http.StatusBadRequest},
			{name: "empty parkingSpotId", mutate: testutil.Field("parkingSpotId", ""), expectCode: http.StatusBadRequest},
			{name: "fractional duration", mutate: testutil.Field("duration", 30.5), expectCode: http.StatusBadRequest},
			{name: "word duration", mutate: testutil.Field("duration", "half an hour"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid tier",
				commandsError:  errs.Mark(errs.Mark(commands.ErrInvalidTier, commands.ErrInvalidRequest), errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid duration",
			},
			{
				name:           "unknown spot",
				commandsError:  errs.Mark(commands.ErrSpotNotFound, errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "parking spot not found",
			},
			{
				name:           "spot taken",
				commandsError:  errs.Mark(commands.ErrSpotAlreadyReserved, errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "inactive spot",
				commandsError:  errs.Mark(commands.ErrSpotInactive, errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not active",
			},
			{
				name:           "storage down",
				commandsError:  errs.Mark(errors.New("disk full"), errs.ErrStorage),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "nothing was changed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreateAsOperator
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateAsOperator() {
	b := builder.NewBookingBuilder()

	s.Run("success: operator actor is forwarded", func() {
		s.mockCommands.EXPECT().ReserveAsOperator(gomock.Any(), operatorActor, b.BuildParams()).
			Return(b.BuildResult(nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings", b.BuildCreateRequestDTO(), s.operatorToken)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 401 for an anonymous caller", func() {
		s.mockCommands.EXPECT().ReserveAsOperator(gomock.Any(), shared.AnonymousActor(), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrUnauthorized, errs.ErrUnauthorized)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings", b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "operator session required")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	live := builder.NewBookingBuilder().At(time.Date(2024, 5, 1, 9, 10, 0, 0, time.UTC)).BuildView()
	expired := builder.NewBookingBuilder().WithSpotID("10008").At(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)).BuildView()

	s.Run("success: active bookings by default", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any(), operatorActor).
			Return([]*queries.ReservationView{live}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, s.operatorToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(20*60), body[0].RemainingSeconds)
		s.False(body[0].Expired)
	})

	s.Run("success: active=false includes expired bookings", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), operatorActor).
			Return([]*queries.ReservationView{live, expired}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?active=false", nil, s.operatorToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.True(body[1].Expired)
		s.Equal(int64(0), body[1].RemainingSeconds)
	})

	s.Run("error: 400 for a malformed active flag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?active=maybe", nil, s.operatorToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "active must be true or false")
	})

	s.Run("error: 401 for an anonymous caller", func() {
		s.mockQueries.EXPECT().ListActive(gomock.Any(), shared.AnonymousActor()).
			Return(nil, errs.Mark(queries.ErrUnauthorized, errs.ErrUnauthorized)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

// ================================================================================
// TestReap
// ================================================================================

func (s *BookingHandlerTestSuite) TestReap() {
	s.Run("success: reports how many bookings were removed", func() {
		s.mockCommands.EXPECT().ReapAsOperator(gomock.Any(), operatorActor).Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/reap", nil, s.operatorToken)

		var body resdto.ReapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Removed)
	})

	s.Run("error: 401 for an anonymous caller", func() {
		s.mockCommands.EXPECT().ReapAsOperator(gomock.Any(), shared.AnonymousActor()).
			Return(0, errs.Mark(commands.ErrUnauthorized, errs.ErrUnauthorized)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/reap", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
