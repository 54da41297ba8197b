package tlog

import (
	stderrs "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sirkon/errors"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		Log(t, stderrs.New("not an error"))
	})

	t.Run("log-wrapped-error", func(t *testing.T) {
		Log(t, errors.Wrap(errors.Const("root cause"), "wrap"))
	})

	t.Run("check-nil", func(t *testing.T) {
		if Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})
}

func TestRenderString(t *testing.T) {
	if got := renderString(nil, bold); got != "<nil>" {
		t.Errorf("<nil> expected, got %q", got)
	}

	res := renderString(errors.Wrap(errors.Const("root cause"), "top"), bold)
	if !strings.HasPrefix(res, bold+"top") {
		t.Errorf("unexpected heading in %q", res)
	}
	if !strings.Contains(res, "root cause") {
		t.Errorf("root cause is missing in %q", res)
	}

	res = renderString(fmt.Errorf("top: %w", stderrs.New("root cause")), bold)
	if !strings.HasSuffix(res, "caused by\033[0m: root cause\n") {
		t.Errorf("root cause must go last in %q", res)
	}
}
