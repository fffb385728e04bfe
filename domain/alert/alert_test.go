package alert

import (
	"errors"
	"testing"
	"time"
)

type recorder struct {
	msgs []string
	err  error
}

func (r *recorder) Alert(msg string) error {
	r.msgs = append(r.msgs, msg)
	return r.err
}

func TestThrottled_Cooldown(t *testing.T) {
	rec := &recorder{}
	th := NewThrottled(rec, time.Second, nil)
	base := time.Unix(100, 0)
	now := base
	th.now = func() time.Time { return now }

	_ = th.Alert("a")
	now = base.Add(500 * time.Millisecond)
	_ = th.Alert("b")
	now = base.Add(1100 * time.Millisecond)
	_ = th.Alert("c")
	if len(rec.msgs) != 2 || rec.msgs[0] != "a" || rec.msgs[1] != "c" {
		t.Fatalf("unexpected forwarded alerts %v", rec.msgs)
	}
	th.Reset()
	_ = th.Alert("d")
	if len(rec.msgs) != 3 {
		t.Fatalf("reset should allow an immediate alert, got %v", rec.msgs)
	}
}

func TestThrottled_ZeroCooldownForwardsAll(t *testing.T) {
	rec := &recorder{}
	th := NewThrottled(rec, 0, nil)
	for i := 0; i < 3; i++ {
		_ = th.Alert("x")
	}
	if len(rec.msgs) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(rec.msgs))
	}
}

func TestThrottled_PropagatesError(t *testing.T) {
	boom := errors.New("no audio device")
	th := NewThrottled(&recorder{err: boom}, time.Minute, nil)
	if err := th.Alert("x"); !errors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
}

func TestFunc_Adapter(t *testing.T) {
	var got string
	var a Alerter = Func(func(msg string) error { got = msg; return nil })
	_ = a.Alert("hello")
	if got != "hello" {
		t.Fatalf("adapter did not forward message")
	}
}
