package testutil

import (
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates compiles every registered template set and installs the
// engine so handlers render real pages. The shared layout must be registered,
// so callers blank-import features/shared/views along with their own views.
func BootTemplates(t testing.TB) {
	t.Helper()
	logger := zap.NewNop()
	eng := templates.New(false)
	if err := eng.Boot(logger); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
	templates.UseEngine(eng, logger)
}
