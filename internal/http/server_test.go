package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redmonkez12/adventure-api/internal/logging"
)

func TestServer_ShutdownWithoutStart(t *testing.T) {
	srv := NewServer("127.0.0.1:0", http.NewServeMux(), time.Second, time.Second, logging.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, srv.Shutdown(ctx))
}
