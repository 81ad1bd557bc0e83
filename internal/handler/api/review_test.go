//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"rentmarket/internal/domain/user"
	"rentmarket/internal/handler/api"
	resdto "rentmarket/internal/handler/dto/response"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/queries"
	"rentmarket/tests/common/builder"
	"rentmarket/tests/common/httptest"
	"rentmarket/tests/common/testutil"
	commandsmock "rentmarket/tests/mock/commands"
	queriesmock "rentmarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Create)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PATCH("/reviews/:id", authMiddleware, s.handler.Update)
	s.router.DELETE("/reviews/:id", authMiddleware, s.handler.Delete)
	s.router.POST("/reviews/:id/response", authMiddleware, s.handler.Respond)
	s.router.POST("/reviews/:id/helpful", authMiddleware, s.handler.MarkHelpful)
	s.router.GET("/items/:id/reviews", s.handler.ListByItem)
	s.router.GET("/items/:id/rating-stats", s.handler.ItemStats)
	s.router.GET("/users/:id/rating-stats", s.handler.UserStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	expectedResult := &commands.CreateReviewResult{ReviewID: returnView.ID}

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: reviewType (required)", mutate: testutil.Field("reviewType", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (required)", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
	}

	invalid := []testCaseReview{
		{name: "unknown review type", mutate: testutil.Field("reviewType", "OWNER_TO_PLATFORM"), expectCode: http.StatusBadRequest},
		{name: "empty comment", mutate: testutil.Field("comment", ""), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReview{bound, missing, invalid}

	s.Run("success: returns 201 Created with ReviewResponse", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Rating, response.Rating)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "reservation not completed",
				commandsError:  commands.ErrReservationNotComplete,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "rental is completed",
			},
			{
				name:           "not eligible",
				commandsError:  commands.ErrReviewNotEligible,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Not eligible",
			},
			{
				name:           "duplicate review",
				commandsError:  commands.ErrDuplicateReview,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already exists",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestGet() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	returnView := builder.NewReviewBuilder().BuildViewQuery()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID, response.ID)
		s.Equal(returnView.Comment, response.Comment)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestUpdate() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	reqBody := builder.NewReviewBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with updated review", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReview{
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 403 Forbidden when not the author", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
			Return(commands.ErrReviewNotOwned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not owned")
	})
}

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID, string(user.RoleMember)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID, string(user.RoleMember)).
			Return(commands.ErrReviewNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestRespond() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String() + "/response"

	reqBody := map[string]any{"response": "Thanks for the kind words."}
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	returnView.ID = reviewID
	response := "Thanks for the kind words."
	returnView.Response = &response

	s.Run("success: returns 200 OK with the response set", func() {
		s.mockCommands.EXPECT().RespondToReview(gomock.Any(), reviewID, s.actorID, response).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var respBody resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &respBody)
		s.NotNil(respBody.Response)
		s.Equal(response, *respBody.Response)
	})

	s.Run("error: 403 Forbidden for non-reviewee", func() {
		s.mockCommands.EXPECT().RespondToReview(gomock.Any(), reviewID, s.actorID, response).
			Return(commands.ErrNotReviewee).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "review target")
	})

	s.Run("error: 400 Bad Request when already responded", func() {
		s.mockCommands.EXPECT().RespondToReview(gomock.Any(), reviewID, s.actorID, response).
			Return(commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already has a response")
	})
}

func (s *ReviewHandlerTestSuite) TestMarkHelpful() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String() + "/helpful"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkReviewHelpful(gomock.Any(), reviewID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockCommands.EXPECT().MarkReviewHelpful(gomock.Any(), reviewID).
			Return(commands.ErrReviewNotFoundWrite).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})
}

func (s *ReviewHandlerTestSuite) TestListByItem() {
	itemID := uuid.New()
	url := "/items/" + itemID.String() + "/reviews"

	views := []*queries.ReviewView{
		builder.NewReviewBuilder().WithItemID(itemID).BuildViewQuery(),
		builder.NewReviewBuilder().WithItemID(itemID).WithRating(3).BuildViewQuery(),
	}

	s.Run("success: returns 200 OK with reviews", func() {
		s.mockQueries.EXPECT().ListByItem(gomock.Any(), itemID, queries.ReviewListFilter{}, nil, 20).
			Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 2)
	})

	s.Run("success: rating filter is passed through", func() {
		s.mockQueries.EXPECT().ListByItem(gomock.Any(), itemID, queries.ReviewListFilter{MinRating: 4, MaxRating: 5}, nil, 20).
			Return(views[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?min_rating=4&max_rating=5", nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 1)
	})

	s.Run("error: 400 Bad Request for malformed cursor", func() {
		s.mockQueries.EXPECT().ListByItem(gomock.Any(), itemID, queries.ReviewListFilter{}, &queries.Cursor{After: "garbage"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *ReviewHandlerTestSuite) TestRatingStats() {
	itemID := uuid.New()
	userID := uuid.New()

	s.Run("success: item stats", func() {
		stats := builder.NewReviewBuilder().WithItemID(itemID).BuildItemRatingStats()
		s.mockQueries.EXPECT().GetItemStats(gomock.Any(), itemID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+itemID.String()+"/rating-stats", nil, "")

		var response resdto.ItemRatingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(itemID, response.ItemID)
		s.Equal(stats.AverageRating, response.AverageRating)
	})

	s.Run("success: user stats", func() {
		reviewee := userID
		stats := builder.NewReviewBuilder().BuildUserRatingStats()
		stats.UserID = reviewee
		s.mockQueries.EXPECT().GetUserStats(gomock.Any(), userID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/rating-stats", nil, "")

		var response resdto.UserRatingStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(userID, response.UserID)
		s.Equal(stats.LenderAverageRating, response.LenderAverageRating)
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockQueries.EXPECT().GetItemStats(gomock.Any(), itemID).
			Return(nil, queries.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+itemID.String()+"/rating-stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}
