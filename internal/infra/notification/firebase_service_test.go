package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToLogNotifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "no firebase section", cfg: &config.Config{}},
		{name: "empty firebase section", cfg: &config.Config{Firebase: &config.FirebaseConfig{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier, err := New(context.Background(), tt.cfg, logger)
			require.NoError(t, err)
			assert.IsType(t, &logNotifier{}, notifier)

			err = notifier.SendToTopic(context.Background(), "admin-orders", "New order", "ORD1", map[string]string{"orderId": "1"})
			assert.NoError(t, err)
		})
	}
}
