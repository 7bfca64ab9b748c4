package controller

import (
	"context"
	"fmt"

	"restaurant-admin/internal/ui"
)

// DeleteFlow is the shared confirmation modal. It holds one pending
// (kind, id) pair and an explicit registry of deleters and refreshers, set at
// wiring time instead of discovered on the global scope.
type DeleteFlow struct {
	screen     ui.Screen
	deleters   map[EntityKind]func(ctx context.Context, id int) error
	refreshers map[EntityKind]Refresher
	dashboard  Refresher // optional

	pendingKind EntityKind
	pendingID   int
}

func NewDeleteFlow(screen ui.Screen) *DeleteFlow {
	return &DeleteFlow{
		screen:     screen,
		deleters:   make(map[EntityKind]func(ctx context.Context, id int) error),
		refreshers: make(map[EntityKind]Refresher),
	}
}

func (f *DeleteFlow) Register(kind EntityKind, deleter func(ctx context.Context, id int) error, refresher Refresher) {
	f.deleters[kind] = deleter
	f.refreshers[kind] = refresher
}

// SetDashboard installs the optional dashboard refresh hook.
func (f *DeleteFlow) SetDashboard(r Refresher) { f.dashboard = r }

func (f *DeleteFlow) Request(kind EntityKind, id int) {
	f.pendingKind = kind
	f.pendingID = id
	f.screen.ShowModal(fmt.Sprintf(
		"Are you sure you want to delete this %s? This action cannot be undone.", kind))
}

// Pending reports the queued deletion, if any.
func (f *DeleteFlow) Pending() (EntityKind, int, bool) {
	return f.pendingKind, f.pendingID, f.pendingID != 0
}

func (f *DeleteFlow) Cancel() {
	f.pendingKind = ""
	f.pendingID = 0
	f.screen.CloseModal()
}

func (f *DeleteFlow) Confirm(ctx context.Context) error {
	if f.pendingID == 0 || f.pendingKind == "" {
		return nil
	}
	kind, id := f.pendingKind, f.pendingID

	deleter, ok := f.deleters[kind]
	if !ok {
		return fmt.Errorf("no delete endpoint registered for %q", kind)
	}

	f.screen.ShowLoading()
	defer f.screen.HideLoading()

	if err := deleter(ctx, id); err != nil {
		f.screen.Error(err.Error())
		return err
	}

	f.screen.Success(fmt.Sprintf("%s deleted successfully", kind))
	f.pendingKind = ""
	f.pendingID = 0
	f.screen.CloseModal()

	if refresher := f.refreshers[kind]; refresher != nil {
		if err := refresher.Refresh(ctx); err != nil {
			return err
		}
	}
	if f.dashboard != nil {
		if err := f.dashboard.Refresh(ctx); err != nil {
			return err
		}
	}
	return nil
}
