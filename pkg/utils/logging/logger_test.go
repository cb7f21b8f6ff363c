package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

func TestNewLevels(t *testing.T) {
	testCases := []struct {
		level      string
		debugShown bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"unknown", false},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.New(tc.level, buf)

			logger.Debug("debug line")
			logger.Info("info line")

			if tc.debugShown {
				gt.S(t, buf.String()).Contains("debug line")
			} else {
				gt.S(t, buf.String()).NotContains("debug line")
			}
		})
	}
}

func TestContextLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("debug", buf)

	ctx := logging.With(context.Background(), logger)
	gt.Equal(t, logging.From(ctx), logger)

	logging.From(ctx).Info("from context")
	gt.S(t, buf.String()).Contains("from context")
}

func TestFromWithoutLogger(t *testing.T) {
	gt.V(t, logging.From(context.Background())).NotNil()
}
