package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e.Type)
}

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	first := &recorder{}
	second := &recorder{}

	d.Subscribe(first, EnemyLeaked, EnemyKilled)
	d.Subscribe(second, EnemyLeaked)

	d.Dispatch(Event{Type: EnemyLeaked})
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: GameEnded})

	if len(first.got) != 2 || first.got[0] != EnemyLeaked || first.got[1] != EnemyKilled {
		t.Fatalf("first listener got %v", first.got)
	}
	if len(second.got) != 1 {
		t.Fatalf("second listener got %v, want only EnemyLeaked", second.got)
	}

	d.Unsubscribe(EnemyLeaked, first)
	d.Dispatch(Event{Type: EnemyLeaked})

	if len(first.got) != 2 {
		t.Errorf("unsubscribed listener still receives events: %v", first.got)
	}
	if len(second.got) != 2 {
		t.Errorf("remaining listener lost events: %v", second.got)
	}
}
