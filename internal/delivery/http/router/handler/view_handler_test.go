package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "biolink/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestViewHandler_CountView(t *testing.T) {
	viewUC := mockUsecase.NewMockViewUsecase(t)
	h := NewViewHandler(ViewHandlerParams{ViewUC: viewUC})

	viewUC.EXPECT().Increment(mock.Anything).Return(int64(7)).Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/views", nil), rec)

	require.NoError(t, h.CountView(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"views":7}`, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
}
