package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/config"
	statusapi "github.com/MKhiriev/go-mirror-sync/internal/handler/http"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*statusapi.Handler, *mock.MockStatusService) {
	t.Helper()

	status := mock.NewMockStatusService(gomock.NewController(t))
	return statusapi.NewHandler(status, nil, nil, logger.Nop()), status
}

func TestNewServer_NoAddress(t *testing.T) {
	h, _ := newTestHandler(t)

	srv, err := NewServer(h, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrNoStatusAddress)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	h, status := newTestHandler(t)
	status.EXPECT().Healthy(gomock.Any()).Return(true)

	srv, err := NewServer(h, config.Server{StatusAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		return srv.Addr() != "127.0.0.1:0"
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestServer_AddressInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	h, _ := newTestHandler(t)
	srv, err := NewServer(h, config.Server{StatusAddress: occupied.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrListen))
}
