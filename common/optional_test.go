package common

import "testing"

func TestOptional(t *testing.T) {
	some := Some(3)
	none := None[int]()
	if !some.IsSome() || none.IsSome() {
		t.Fatalf("IsSome mismatch")
	}
	if some.UnwrapOr(7) != 3 || none.UnwrapOr(7) != 7 {
		t.Errorf("UnwrapOr mismatch")
	}
	taken := some.Take()
	if some.IsSome() || taken.Unwrap() != 3 {
		t.Errorf("Take should move the value out")
	}
	called := false
	none.Then(func(int) { t.Errorf("Then called on None") }).Else(func() { called = true })
	if !called {
		t.Errorf("Else not called on None")
	}
}
