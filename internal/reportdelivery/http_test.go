package reportdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/go-petr/pet-split/internal/domain"
	"github.com/go-petr/pet-split/internal/integrationtest/helpers"
	"github.com/go-petr/pet-split/pkg/errorspkg"
	"github.com/go-petr/pet-split/pkg/moneypkg"
	"github.com/go-petr/pet-split/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type entryBody struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type requestBody struct {
	Entries []entryBody `json:"entries"`
}

func requestEntries(entries []domain.Entry) []entryBody {
	reqEntries := make([]entryBody, len(entries))

	for i, e := range entries {
		reqEntries[i] = entryBody{
			Name:   e.Name,
			Amount: strconv.FormatFloat(e.Amount, 'f', -1, 64),
		}
	}

	return reqEntries
}

func TestCreate(t *testing.T) {
	entries := helpers.RandomEntries(3)

	lines := []string{
		"[SETTLEMENT INSTRUCTIONS]",
		"  1. " + entries[1].Name + " should pay " + entries[0].Name + " 100.00",
	}

	report := domain.Report{
		SettlementID: uuid.NewString(),
		Lines:        lines,
		Text:         strings.Join(lines, "\n"),
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("amount", moneypkg.ValidAmount); err != nil {
			t.Fatalf(`v.RegisterValidation("amount", moneypkg.ValidAmount) returned error: %v`, err)
		}
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(reportService *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data any)
	}{
		{
			name:        "OK",
			requestBody: requestBody{Entries: requestEntries(entries)},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Build(gomock.Any(), gomock.Eq(entries)).
					Times(1).
					Return(report, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*struct {
					Report domain.Report `json:"report"`
				})
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(report, got.Report); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:        "NoEntries",
			requestBody: requestBody{Entries: []entryBody{}},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Build(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Entries must have at least 1 items",
		},
		{
			name: "InvalidAmount",
			requestBody: requestBody{Entries: []entryBody{
				{Name: "alice", Amount: "12,50"},
			}},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Build(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Amount must be a non-negative number",
		},
		{
			name:        "ErrInconsistentBalance",
			requestBody: requestBody{Entries: requestEntries(entries)},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Build(gomock.Any(), gomock.Eq(entries)).
					Times(1).
					Return(domain.Report{}, domain.ErrInconsistentBalance)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      domain.ErrInconsistentBalance.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: requestBody{Entries: requestEntries(entries)},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Build(gomock.Any(), gomock.Eq(entries)).
					Times(1).
					Return(domain.Report{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Initialize mocks
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reportService := NewMockService(ctrl)
			reportHandler := NewHandler(reportService)

			server := gin.New()
			server.POST("/reports", reportHandler.Create)

			tc.buildStubs(reportService)

			// Send request
			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			// Test response
			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &struct {
					Report domain.Report `json:"report"`
				}{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}
