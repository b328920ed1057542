//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	resdto "gpark/internal/handler/dto/response"
	"gpark/tests/common/authtest"
	"gpark/tests/common/builder"
	"gpark/tests/common/dbtest"
	"gpark/tests/common/httptest"
	"gpark/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	spotsURL        = "/api/spots"
	bookingsURL     = "/api/bookings"
	adminSpotsURL   = "/api/admin/spots"
	adminBookingURL = "/api/admin/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) admin(method, path string, body any, session *http.Cookie) (int, []byte) {
	w := httptest.PerformRequestWithCookies(s.T(), s.Router, method, path, body, []*http.Cookie{session}, "")
	return w.Code, w.Body.Bytes()
}

func (s *bookingSuite) TestOperatorSetsUpSpotAndVisitorBooks() {
	s.Run("full booking flow", func() {
		session := authtest.LoginOperator(s.T(), s.Router)

		spotReq := builder.NewSpotBuilder().WithID("10007").WithRate("30", 2.5).WithRate("60", 4)
		code, body := s.admin(http.MethodPost, adminSpotsURL, spotReq.BuildCreateRequestDTO(), session)
		require.Equal(s.T(), http.StatusCreated, code, string(body))

		code, body = s.admin(http.MethodPut, adminSpotsURL+"/10007/rates", spotReq.BuildSetRatesRequestDTO(), session)
		require.Equal(s.T(), http.StatusOK, code, string(body))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, spotsURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
		var available []resdto.SpotResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &available)
		require.Len(s.T(), available, 1)
		assert.Equal(s.T(), "10007", available[0].ID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, spotsURL+"/10007/quote?duration=60", nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
		var quote resdto.QuoteResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &quote)
		assert.InDelta(s.T(), 4.0, quote.Price, 1e-9)

		booking := builder.NewBookingBuilder().WithSpotID("10007").WithPlate("KA-01-1234").WithDuration(30)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, booking.BuildCreateRequestDTO(), "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
		var created resdto.CreateBookingResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &created)
		require.NotNil(s.T(), created.Price)
		assert.InDelta(s.T(), 2.5, *created.Price, 1e-9)
		assert.Equal(s.T(), "KA-01-1234", created.Booking.LicensePlate)
		assert.False(s.T(), created.Booking.Expired)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			booking.WithPlate("KA-02-9999").BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already booked")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, spotsURL, nil, "")
		httptest.DecodeResponseBody(s.T(), w.Body, &available)
		assert.Empty(s.T(), available, "a booked spot is not offered")

		code, body = s.admin(http.MethodGet, adminBookingURL, nil, session)
		require.Equal(s.T(), http.StatusOK, code, string(body))
		assert.Contains(s.T(), string(body), "KA-01-1234")

		code, _ = s.admin(http.MethodDelete, adminSpotsURL+"/10007", nil, session)
		assert.Equal(s.T(), http.StatusConflict, code, "spot with a live booking cannot be deleted")

		assert.Equal(s.T(), 1, dbtest.CountReservations(s.T(), s.DB, "10007"))

		authtest.LogoutOperator(s.T(), s.Router, session)
	})
}

func (s *bookingSuite) TestAdminRoutesNeedSession() {
	s.Run("anonymous", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminSpotsURL, nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminSpotsURL,
			builder.NewSpotBuilder().BuildCreateRequestDTO(), "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("wrong password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/login",
			map[string]string{"password": "not-the-password"}, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
		assert.Nil(s.T(), httptest.ExtractCookie(w, "gpark_session"))
	})
}

func (s *bookingSuite) TestBookingRejections() {
	s.Run("rejected bookings leave nothing behind", func() {
		dbtest.SeedSpot(s.T(), s.DB, "10007", true, map[int]int64{30: 250})
		dbtest.SeedSpot(s.T(), s.DB, "10008", false, map[int]int64{30: 250})
		s.Reboot()

		cases := []struct {
			name   string
			body   map[string]any
			status int
		}{
			{"unknown spot", builder.NewBookingBuilder().WithSpotID("nope").BuildCreateRequestDTO(), http.StatusNotFound},
			{"inactive spot", builder.NewBookingBuilder().WithSpotID("10008").BuildCreateRequestDTO(), http.StatusConflict},
			{"unpriced tier", builder.NewBookingBuilder().WithSpotID("10007").WithDuration(60).BuildCreateRequestDTO(), http.StatusBadRequest},
			{"unknown tier", builder.NewBookingBuilder().WithSpotID("10007").WithDuration(99).BuildCreateRequestDTO(), http.StatusBadRequest},
			{"blank plate", builder.NewBookingBuilder().WithSpotID("10007").WithPlate("   ").BuildCreateRequestDTO(), http.StatusBadRequest},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, tc.body, "")
			assert.Equal(s.T(), tc.status, w.Code, "%s: %s", tc.name, w.Body.String())
		}

		assert.Zero(s.T(), dbtest.CountReservations(s.T(), s.DB, "10007"))
		assert.Zero(s.T(), dbtest.CountReservations(s.T(), s.DB, "10008"))
	})
}
