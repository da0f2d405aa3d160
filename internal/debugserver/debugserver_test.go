package debugserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennelabs/sm83/internal/cpu"
	"github.com/fennelabs/sm83/pkg/log"
)

func TestPublishDeliversSnapshotToConnectedClient(t *testing.T) {
	srv := NewServer(log.NewNullLogger())
	httpSrv := httptest.NewServer(http.HandlerFunc(srv.ServeHTTP))
	defer httpSrv.Close()

	url := "ws" + strings.TrimPrefix(httpSrv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for srv.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, 1, srv.ClientCount())

	srv.Publish(7, cpu.Snapshot{A: 0x42, PC: 0x0150})

	var got frame
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(7), got.Step)
	assert.Equal(t, uint8(0x42), got.A)
	assert.Equal(t, uint16(0x0150), got.PC)
}
