package httperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
	"github.com/alanyang/gaas-console/internal/transport/httperr"
)

func init() { gin.SetMode(gin.TestMode) }

func write(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	httperr.Write(c, err)
	return w
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   httperr.Body
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("create: %w", &domaingraph.ValidationError{Detail: domaingraph.DetailIDCharset}),
			wantStatus: http.StatusBadRequest,
			wantBody:   httperr.Body{Message: "Validation failed", Details: domaingraph.DetailIDCharset},
		},
		{
			name:       "upstream conflict",
			err:        fmt.Errorf("create graph: %w", rest.NewError("POST", "/graphs", 409, []byte(`{"message":"exists","details":"AlreadyExists"}`))),
			wantStatus: http.StatusConflict,
			wantBody:   httperr.Body{Message: "exists", Details: "AlreadyExists"},
		},
		{
			name:       "upstream not found without body",
			err:        rest.NewError("GET", "/graphs/x", 404, nil),
			wantStatus: http.StatusNotFound,
			wantBody:   httperr.Body{Message: "Not Found"},
		},
		{
			name:       "transport failure",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: http.StatusBadGateway,
			wantBody:   httperr.Body{Message: "dial tcp: connection refused"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := write(tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)
			var got httperr.Body
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.wantBody, got)
		})
	}
}
