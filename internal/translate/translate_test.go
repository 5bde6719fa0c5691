package translate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTranslator struct {
	mock.Mock
}

func (m *mockTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	args := m.Called(ctx, text, target)
	return args.String(0), args.Error(1)
}

func TestHTTPTranslator_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		assert.Equal(t, "液压机。高精度", r.URL.Query().Get("q"))
		w.Write([]byte(`[[["Hydraulic press. ","液压机。",null,null,1],["High precision","高精度",null,null,1]],null,"zh-CN"]`))
	}))
	defer srv.Close()

	tr := NewHTTPTranslator(Config{Endpoint: srv.URL, Timeout: time.Second})
	out, err := tr.Translate(context.Background(), "液压机。高精度", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hydraulic press. High precision", out)
}

func TestHTTPTranslator_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := NewHTTPTranslator(Config{Endpoint: srv.URL, Timeout: time.Second})
	_, err := tr.Translate(context.Background(), "车床", "en")
	assert.Error(t, err)
}

func TestSafe_FallsBackToOriginal(t *testing.T) {
	inner := new(mockTranslator)
	inner.On("Translate", mock.Anything, "车床", "en").Return("", errors.New("boom"))

	s := NewSafe(inner, "en", zap.NewNop())
	assert.Equal(t, "车床", s.ToTarget(context.Background(), "车床"))
	inner.AssertExpectations(t)
}

func TestSafe_EmptyInputSkipsService(t *testing.T) {
	inner := new(mockTranslator)

	s := NewSafe(inner, "en", zap.NewNop())
	assert.Equal(t, "", s.ToTarget(context.Background(), "  "))
	inner.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything)
}

func TestSafe_ReturnsTranslation(t *testing.T) {
	inner := new(mockTranslator)
	inner.On("Translate", mock.Anything, "冲压设备", "en").Return("Presses", nil)

	s := NewSafe(inner, "en", zap.NewNop())
	assert.Equal(t, "Presses", s.ToTarget(context.Background(), "冲压设备"))
}
