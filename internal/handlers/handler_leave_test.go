package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/apperrors"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	portssvc "github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/ports/services"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/dto"
	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaveService ---

type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) GetApplicationByID(ctx context.Context, requestingUserID string, applicationID string) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, requestingUserID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) ListApplications(ctx context.Context, requestingUserID string, params dto.ListApplicationsParams) ([]domain.LeaveApplication, error) {
	args := m.Called(ctx, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) CalendarApplications(ctx context.Context, requestingUserID string, year int) ([]domain.LeaveApplication, error) {
	args := m.Called(ctx, requestingUserID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) SubmitApplication(ctx context.Context, employeeID string, req dto.CreateLeaveApplicationRequest) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

func (m *MockLeaveService) DecideApplication(ctx context.Context, adminID string, applicationID string, req dto.DecideApplicationRequest) (*domain.LeaveApplication, error) {
	args := m.Called(ctx, adminID, applicationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveApplication), args.Error(1)
}

var _ portssvc.LeaveSvcFacade = (*MockLeaveService)(nil)

// --- Test Suite Setup ---

type LeaveHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockLeaveService *MockLeaveService
	jwtSecret        string
}

func (suite *LeaveHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "lms-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LeaveHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLeaveService = new(MockLeaveService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerLeaveRoutes(v1, suite.mockLeaveService)
}

func (suite *LeaveHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LeaveHandlerTestSuite) TestSubmit_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateLeaveApplicationRequest{
		LeaveTypes: []string{string(domain.SickLeave)},
		FromDate:   "2026-09-07",
		ToDate:     "2026-09-09",
		Reason:     "Flu",
	}
	created := &domain.LeaveApplication{
		ApplicationID: uuid.NewString(),
		EmployeeID:    userID,
		LeaveTypes:    []domain.LeaveType{domain.SickLeave},
		FromDate:      time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		ToDate:        time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC),
		Status:        domain.ApplicationPending,
	}

	suite.mockLeaveService.On("SubmitApplication", mock.Anything, userID, reqBody).
		Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave-applications", userID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LeaveApplicationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ApplicationID, resp.ApplicationID)
	suite.Equal(3, resp.Days)
	suite.Equal("pending", resp.Status)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestSubmit_BalanceShortfallBody() {
	userID := uuid.NewString()
	reqBody := dto.CreateLeaveApplicationRequest{
		LeaveTypes: []string{string(domain.BereavementLeave)},
		FromDate:   "2026-09-07",
		ToDate:     "2026-09-11",
		Reason:     "Family",
	}

	suite.mockLeaveService.On("SubmitApplication", mock.Anything, userID, reqBody).
		Return(nil, &apperrors.BalanceError{LeaveType: string(domain.BereavementLeave), Remaining: 3, Requested: 5}).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave-applications", userID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(string(domain.BereavementLeave), body["leave_type"])
	suite.EqualValues(3, body["remaining"])
	suite.EqualValues(5, body["requested"])
}

func (suite *LeaveHandlerTestSuite) TestSubmit_OverlapBody() {
	userID := uuid.NewString()
	overlappingID := uuid.NewString()
	reqBody := dto.CreateLeaveApplicationRequest{
		LeaveTypes: []string{string(domain.PersonalLeave)},
		FromDate:   "2026-09-07",
		ToDate:     "2026-09-09",
		Reason:     "Trip",
	}

	suite.mockLeaveService.On("SubmitApplication", mock.Anything, userID, reqBody).
		Return(nil, &apperrors.OverlapError{OverlappingID: overlappingID}).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave-applications", userID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(overlappingID, body["overlapping_id"])
}

func (suite *LeaveHandlerTestSuite) TestSubmit_TwoTrackedTypesUnprocessable() {
	userID := uuid.NewString()
	reqBody := dto.CreateLeaveApplicationRequest{
		LeaveTypes: []string{string(domain.SickLeave), string(domain.PersonalLeave)},
		FromDate:   "2026-09-07",
		ToDate:     "2026-09-09",
		Reason:     "Mixed",
	}

	suite.mockLeaveService.On("SubmitApplication", mock.Anything, userID, reqBody).
		Return(nil, apperrors.ErrUnprocessable).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave-applications", userID, reqBody)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestSubmit_MissingBodyFields() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodPost, "/api/v1/leave-applications", userID, map[string]any{
		"fromDate": "2026-09-07",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLeaveService.AssertNotCalled(suite.T(), "SubmitApplication", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveHandlerTestSuite) TestSubmit_NoTokenUnauthorized() {
	w := suite.doRequest(http.MethodPost, "/api/v1/leave-applications", "", dto.CreateLeaveApplicationRequest{})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestList_PassesFilters() {
	userID := uuid.NewString()

	suite.mockLeaveService.On("ListApplications", mock.Anything, userID, mock.MatchedBy(func(p dto.ListApplicationsParams) bool {
		return p.Status == "pending" && p.Limit == 10
	})).Return([]domain.LeaveApplication{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave-applications?status=pending&limit=10", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func (suite *LeaveHandlerTestSuite) TestGet_NotFound() {
	userID := uuid.NewString()
	applicationID := uuid.NewString()

	suite.mockLeaveService.On("GetApplicationByID", mock.Anything, userID, applicationID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave-applications/"+applicationID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestGet_ForeignApplicationForbidden() {
	userID := uuid.NewString()
	applicationID := uuid.NewString()

	suite.mockLeaveService.On("GetApplicationByID", mock.Anything, userID, applicationID).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave-applications/"+applicationID, userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *LeaveHandlerTestSuite) TestCalendar_PassesYear() {
	userID := uuid.NewString()

	suite.mockLeaveService.On("CalendarApplications", mock.Anything, userID, 2026).
		Return([]domain.LeaveApplication{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/leave-applications/calendar?year=2026", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLeaveService.AssertExpectations(suite.T())
}

func TestLeaveHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveHandlerTestSuite))
}
