package history_test

import (
	"fmt"
	"testing"

	"github.com/becomeliminal/persona-go-sdk/core"
	"github.com/becomeliminal/persona-go-sdk/history"
)

func TestAppendEnforcesRetention(t *testing.T) {
	store := history.NewStore(3)
	h := store.Get("session1")

	for i := 1; i <= 5; i++ {
		h.Append(core.UserMessage(fmt.Sprintf("msg-%d", i)))

		want := i
		if want > 3 {
			want = 3
		}
		if got := h.Len(); got != want {
			t.Fatalf("after append %d: len = %d, want %d", i, got, want)
		}
	}

	msgs := h.Messages()
	if len(msgs) != 3 {
		t.Fatalf("final len = %d, want 3", len(msgs))
	}
	for i, want := range []string{"msg-3", "msg-4", "msg-5"} {
		if msgs[i].Content != want {
			t.Errorf("messages[%d] = %q, want %q", i, msgs[i].Content, want)
		}
	}
}

func TestBatchAppendTrimsAfterWholeBatch(t *testing.T) {
	store := history.NewStore(4)
	h := store.Get("session1")

	h.Append(
		core.UserMessage("a"),
		core.AssistantMessage("b"),
		core.UserMessage("c"),
		core.AssistantMessage("d"),
		core.UserMessage("e"),
	)

	msgs := h.Messages()
	if len(msgs) != 4 {
		t.Fatalf("len = %d, want 4", len(msgs))
	}
	if msgs[0].Content != "b" || msgs[3].Content != "e" {
		t.Errorf("survivors = %v, want b..e", msgs)
	}
}

func TestZeroRetentionIsUnbounded(t *testing.T) {
	for _, retention := range []int{0, -1} {
		store := history.NewStore(retention)
		h := store.Get("session1")

		for i := 0; i < 20; i++ {
			h.Append(core.UserMessage("msg"))
		}
		if got := h.Len(); got != 20 {
			t.Errorf("retention %d: len = %d, want 20", retention, got)
		}
	}
}

func TestGetReturnsSameUnderlyingLog(t *testing.T) {
	store := history.NewStore(10)

	first := store.Get("session1")
	first.Append(core.UserMessage("hello"))

	second := store.Get("session1")
	if second.Len() != 1 {
		t.Fatalf("second handle len = %d, want 1", second.Len())
	}

	second.Append(core.AssistantMessage("hi"))
	if first.Len() != 2 {
		t.Fatalf("first handle len = %d, want 2", first.Len())
	}
}

func TestClearStartsFresh(t *testing.T) {
	store := history.NewStore(10)
	store.Get("session1").Append(core.UserMessage("hello"))

	store.Clear("session1")

	if got := store.Get("session1").Len(); got != 0 {
		t.Fatalf("len after clear = %d, want 0", got)
	}
}

func TestClearUnknownSessionIsNoOp(t *testing.T) {
	store := history.NewStore(10)
	store.Get("session1").Append(core.UserMessage("hello"))

	store.Clear("no-such-session")

	if got := store.Get("session1").Len(); got != 1 {
		t.Errorf("other session len = %d, want 1", got)
	}
}

func TestMessagesReturnsCopy(t *testing.T) {
	store := history.NewStore(10)
	h := store.Get("session1")
	h.Append(core.UserMessage("original"))

	msgs := h.Messages()
	msgs[0].Content = "mutated"

	if got := h.Messages()[0].Content; got != "original" {
		t.Errorf("stored message = %q, want %q", got, "original")
	}
}
