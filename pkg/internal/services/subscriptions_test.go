package services

import "testing"

func TestSubscribeIsIdempotent(t *testing.T) {
	useTestDatabase(t)

	alice := mustCreateProfile(t, "alice")
	bob := mustCreateProfile(t, "bob")

	first, err := SubscribeToUser(alice, bob)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	second, err := SubscribeToUser(alice, bob)
	if err != nil {
		t.Fatalf("subscribe again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("second subscribe made a new row (%d != %d)", second.ID, first.ID)
	}

	if got := CountSubscribers(bob); got != 1 {
		t.Errorf("bob has %d subscribers, want 1", got)
	}
	if got := CountSubscribing(alice); got != 1 {
		t.Errorf("alice subscribes to %d users, want 1", got)
	}
}

func TestSubscriptionIsDirectional(t *testing.T) {
	useTestDatabase(t)

	alice := mustCreateProfile(t, "alice")
	bob := mustCreateProfile(t, "bob")

	if _, err := SubscribeToUser(alice, bob); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if !IsSubscribed(alice, bob) {
		t.Error("alice should be subscribed to bob")
	}
	if IsSubscribed(bob, alice) {
		t.Error("bob should not be subscribed to alice")
	}
}

func TestUnsubscribeAbsentPairIsNoop(t *testing.T) {
	useTestDatabase(t)

	alice := mustCreateProfile(t, "alice")
	bob := mustCreateProfile(t, "bob")

	if err := UnsubscribeFromUser(alice, bob); err != nil {
		t.Fatalf("unsubscribing an absent pair should succeed: %v", err)
	}

	if _, err := SubscribeToUser(alice, bob); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := UnsubscribeFromUser(alice, bob); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if IsSubscribed(alice, bob) {
		t.Error("pair should be gone after unsubscribe")
	}

	// The pair can come back after a remove.
	if _, err := SubscribeToUser(alice, bob); err != nil {
		t.Fatalf("re-subscribe: %v", err)
	}
	if !IsSubscribed(alice, bob) {
		t.Error("pair should be back after re-subscribe")
	}
}
