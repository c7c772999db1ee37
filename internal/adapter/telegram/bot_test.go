package telegram

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidecr/placebot/internal/service/editor"
	"github.com/guidecr/placebot/pkg/ctxutil"
)

// newTestAPI serves getMe so the client constructor succeeds and fails every
// sendMessage, so send-path logging can be observed.
func newTestAPI(t *testing.T) *tgbotapi.BotAPI {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"placebot","username":"placebot_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
		default:
			w.Write([]byte(`{"ok":true,"result":{}}`))
		}
	}))
	t.Cleanup(srv.Close)

	api, err := tgbotapi.NewBotAPIWithClient("test-token", srv.URL+"/bot%s/%s", srv.Client())
	require.NoError(t, err)
	return api
}

func TestSend_FailureLogsOperatorAndUpdateIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	bot := NewBot(logger, newTestAPI(t), nil)

	ctx := ctxutil.WithOperatorID(context.Background(), 7)
	ctx = ctxutil.WithUpdateID(ctx, 1001)
	bot.send(ctx, 42, []editor.Reply{{Text: "hello"}})

	out := buf.String()
	assert.Contains(t, out, "send failed")
	assert.Contains(t, out, "chat_id=42")
	assert.Contains(t, out, "operator_id=7")
	assert.Contains(t, out, "update_id=1001")
}
