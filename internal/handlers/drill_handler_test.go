package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_4_trade_practice/internal/handlers"
	"go_4_trade_practice/internal/model"
	svc_mocks "go_4_trade_practice/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDrillHandler_SubmitDrill(t *testing.T) {
	userID := uuid.New()
	validReq := &model.SubmitDrillRequest{
		Input: model.DrillInput{
			Zones: []model.UserZone{{Type: model.ZoneSupport, PriceFrom: 101, PriceTo: 111}},
		},
		HintsUsed: 1,
	}
	result := &model.DrillResult{AttemptID: 9, Score: 100, CorrectElements: 1, TotalElements: 1}

	tests := []struct {
		name           string
		drillID        string
		body           interface{}
		setupMock      func(m *svc_mocks.DrillService)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:    "正常系: 採点結果を返す",
			drillID: "3",
			body:    validReq,
			setupMock: func(m *svc_mocks.DrillService) {
				m.On("SubmitDrill", mock.Anything, userID, uint(3), validReq).Return(result, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: ヒント数が範囲外",
			drillID:        "3",
			body:           `{"input":{"zones":[],"points":[]},"hints_used":3}`,
			setupMock:      func(m *svc_mocks.DrillService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "hints_used",
		},
		{
			name:           "異常系: ゾーンの上限が下限以下",
			drillID:        "3",
			body:           `{"input":{"zones":[{"type":"support","price_from":110,"price_to":100}]}}`,
			setupMock:      func(m *svc_mocks.DrillService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "price_to",
		},
		{
			name:           "異常系: 未知のゾーン種別",
			drillID:        "3",
			body:           `{"input":{"zones":[{"type":"trendline","price_from":100,"price_to":110}]}}`,
			setupMock:      func(m *svc_mocks.DrillService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
			expectedField:  "type",
		},
		{
			name:           "異常系: drill_id が0",
			drillID:        "0",
			body:           validReq,
			setupMock:      func(m *svc_mocks.DrillService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
		{
			name:    "異常系: ドリルが存在しない",
			drillID: "404",
			body:    validReq,
			setupMock: func(m *svc_mocks.DrillService) {
				m.On("SubmitDrill", mock.Anything, userID, uint(404), validReq).
					Return(nil, model.NewNotFoundError("ドリルが見つかりません。")).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewDrillService(t)
			tt.setupMock(mockService)
			handler := handlers.NewDrillHandler(mockService, discardLogger())

			req := newJSONRequest(t, http.MethodPost, "/api/v1/drills/"+tt.drillID+"/submit", tt.body)
			req = req.WithContext(withURLParams(withUser(context.Background(), userID), "drill_id", tt.drillID))
			rr := httptest.NewRecorder()
			handler.SubmitDrill(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				detail := decodeError(t, rr.Body.Bytes())
				assert.Equal(t, tt.expectedCode, detail.Code)
				if tt.expectedField != "" {
					assert.Equal(t, tt.expectedField, detail.Field)
				}
			}
		})
	}
}

func TestDrillHandler_ListDrills(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		setupMock      func(m *svc_mocks.DrillService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 一覧を返す",
			setupMock: func(m *svc_mocks.DrillService) {
				m.On("ListDrills", mock.Anything, userID).
					Return([]model.DrillListItem{{DrillID: 1, Title: "Find the support", AttemptCount: 2}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"attempt_count":2`,
		},
		{
			name: "正常系: nil は空配列",
			setupMock: func(m *svc_mocks.DrillService) {
				m.On("ListDrills", mock.Anything, userID).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "異常系: 予期しないエラー",
			setupMock: func(m *svc_mocks.DrillService) {
				m.On("ListDrills", mock.Anything, userID).Return(nil, errors.New("boom")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewDrillService(t)
			tt.setupMock(mockService)
			handler := handlers.NewDrillHandler(mockService, discardLogger())

			req := newJSONRequest(t, http.MethodGet, "/api/v1/drills", nil)
			req = req.WithContext(withUser(context.Background(), userID))
			rr := httptest.NewRecorder()
			handler.ListDrills(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			assert.NotContains(t, rr.Body.String(), "boom")
		})
	}
}

func TestDrillHandler_GetDrill(t *testing.T) {
	userID := uuid.New()
	mockService := svc_mocks.NewDrillService(t)
	mockService.On("GetDrill", mock.Anything, userID, uint(1)).
		Return(&model.DrillDetail{DrillID: 1, Title: "Find the support"}, nil).Once()
	handler := handlers.NewDrillHandler(mockService, discardLogger())

	req := newJSONRequest(t, http.MethodGet, "/api/v1/drills/1", nil)
	req = req.WithContext(withURLParams(withUser(context.Background(), userID), "drill_id", "1"))
	rr := httptest.NewRecorder()
	handler.GetDrill(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "answer_set")
	assert.Contains(t, rr.Body.String(), `"last_attempt":null`)
}
