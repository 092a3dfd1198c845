package bridge

import (
	"testing"
	"time"

	"github.com/nimbus-shell/launcher/internal/launcher"
)

func collect(t *testing.T, b *Bridge, timeout time.Duration) []Event {
	t.Helper()
	var got []Event
	deadline := time.After(timeout)
	for {
		select {
		case evt, ok := <-b.Events():
			if !ok {
				return got
			}
			got = append(got, evt)
		case <-deadline:
			t.Fatalf("timed out, events so far: %#v", got)
		}
	}
}

func TestStartedIsFirstEvent(t *testing.T) {
	b := New([]string{"sh", "-c", `echo '{"Fill":"hi"}'`})
	if err := b.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer b.Stop()

	got := collect(t, b, 5*time.Second)
	if len(got) < 2 {
		t.Fatalf("expected started+response, got %#v", got)
	}
	if got[0].Kind != KindStarted || got[0].Handle == nil {
		t.Fatalf("first event should carry the handle, got %#v", got[0])
	}
	if got[1].Kind != KindResponse {
		t.Fatalf("second event should be a response, got %#v", got[1])
	}
	if fill, ok := got[1].Response.(launcher.Fill); !ok || string(fill) != "hi" {
		t.Fatalf("unexpected response %#v", got[1].Response)
	}
	last := got[len(got)-1]
	if last.Kind != KindClosed {
		t.Fatalf("stream should end with KindClosed, got %#v", last)
	}
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	b := New([]string{"sh", "-c", `printf 'garbage\n{"Fill":"ok"}\n'`})
	if err := b.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer b.Stop()

	got := collect(t, b, 5*time.Second)
	responses := 0
	for _, evt := range got {
		if evt.Kind == KindResponse {
			responses++
			if fill, ok := evt.Response.(launcher.Fill); !ok || string(fill) != "ok" {
				t.Fatalf("unexpected response %#v", evt.Response)
			}
		}
	}
	if responses != 1 {
		t.Fatalf("expected the garbage line to be dropped, got %d responses", responses)
	}
}

func TestSendAfterBackendExitDropsSilently(t *testing.T) {
	b := New([]string{"sh", "-c", "exit 0"})
	if err := b.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer b.Stop()

	events := collect(t, b, 5*time.Second)
	if events[0].Kind != KindStarted {
		t.Fatalf("expected started event, got %#v", events[0])
	}
	handle := events[0].Handle

	done := make(chan struct{})
	go func() {
		// Must not block even though nothing drains the buffer anymore.
		for i := 0; i < requestBuffer*2; i++ {
			handle.Send(launcher.Search("x"))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("send blocked after backend exit")
	}
}

func TestStartRejectsEmptyCommand(t *testing.T) {
	b := New(nil)
	if err := b.Start(); err == nil {
		t.Fatalf("expected error for empty command")
	}
}
