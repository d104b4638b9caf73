package namespace_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/gaas-console/internal/mocks"
	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"
	transportns "github.com/alanyang/gaas-console/internal/transport/namespace"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockNamespaceRepository) {
	t.Helper()
	repo := mocks.NewMockNamespaceRepository(gomock.NewController(t))
	r := gin.New()
	transportns.Register(r.Group("/namespaces"), namespacesvc.NewService(repo))
	return r, repo
}

func get(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/namespaces/", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListNamespaces_Success(t *testing.T) {
	r, repo := newRouter(t)
	repo.EXPECT().GetAll(gomock.Any()).Return([]string{"ns1", "ns2"}, nil)

	w := get(r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["ns1","ns2"]`, w.Body.String())
}

func TestListNamespaces_NilBecomesEmptyArray(t *testing.T) {
	r, repo := newRouter(t)
	repo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	w := get(r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListNamespaces_Error(t *testing.T) {
	r, repo := newRouter(t)
	repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("timeout"))

	w := get(r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
