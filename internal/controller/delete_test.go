package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDeleteFlowConfirm(t *testing.T) {
	screen := &fakeScreen{}
	flow := NewDeleteFlow(screen)

	var deleted []int
	refresher := &refreshCounter{}
	dashboard := &refreshCounter{}
	flow.Register(KindClient, func(ctx context.Context, id int) error {
		deleted = append(deleted, id)
		return nil
	}, refresher)
	flow.SetDashboard(dashboard)

	flow.Request(KindClient, 7)

	if kind, id, ok := flow.Pending(); !ok || kind != KindClient || id != 7 {
		t.Fatalf("pending = %v %d %v", kind, id, ok)
	}
	if len(screen.modals) != 1 || !strings.Contains(screen.modals[0], "delete this client") {
		t.Errorf("modals = %v", screen.modals)
	}

	if err := flow.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(deleted) != 1 || deleted[0] != 7 {
		t.Errorf("deleted = %v", deleted)
	}
	if refresher.calls != 1 {
		t.Errorf("list refreshed %d times, want 1", refresher.calls)
	}
	if dashboard.calls != 1 {
		t.Errorf("dashboard refreshed %d times, want 1", dashboard.calls)
	}
	if len(screen.successes) != 1 || screen.successes[0] != "client deleted successfully" {
		t.Errorf("successes = %v", screen.successes)
	}
	if _, _, ok := flow.Pending(); ok {
		t.Error("pending should be cleared after confirm")
	}
}

func TestDeleteFlowCancel(t *testing.T) {
	screen := &fakeScreen{}
	flow := NewDeleteFlow(screen)

	var deleted []int
	flow.Register(KindDish, func(ctx context.Context, id int) error {
		deleted = append(deleted, id)
		return nil
	}, &refreshCounter{})

	flow.Request(KindDish, 4)
	flow.Cancel()

	if _, _, ok := flow.Pending(); ok {
		t.Error("cancel should clear the pending deletion")
	}
	if err := flow.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(deleted) != 0 {
		t.Errorf("cancelled deletion still ran: %v", deleted)
	}
}

func TestDeleteFlowConfirmWithoutPending(t *testing.T) {
	screen := &fakeScreen{}
	flow := NewDeleteFlow(screen)

	if err := flow.Confirm(context.Background()); err != nil {
		t.Fatalf("confirm with nothing pending should be a no-op, got %v", err)
	}
	if len(screen.successes)+len(screen.errors) != 0 {
		t.Error("no notices expected")
	}
}

func TestDeleteFlowKeepsPendingOnFailure(t *testing.T) {
	screen := &fakeScreen{}
	flow := NewDeleteFlow(screen)

	boom := errors.New("backend down")
	flow.Register(KindOrder, func(ctx context.Context, id int) error { return boom }, &refreshCounter{})

	flow.Request(KindOrder, 2)
	if err := flow.Confirm(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(screen.errors) != 1 {
		t.Errorf("errors = %v", screen.errors)
	}
	// the modal stays up so the user can retry or cancel
	if _, _, ok := flow.Pending(); !ok {
		t.Error("failed deletion should stay pending")
	}
}

func TestDeleteFlowWithoutDashboardHook(t *testing.T) {
	screen := &fakeScreen{}
	flow := NewDeleteFlow(screen)
	flow.Register(KindEmployee, func(ctx context.Context, id int) error { return nil }, &refreshCounter{})

	flow.Request(KindEmployee, 1)
	if err := flow.Confirm(context.Background()); err != nil {
		t.Fatalf("confirm without dashboard hook: %v", err)
	}
}
