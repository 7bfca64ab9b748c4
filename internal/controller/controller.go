// Package controller reworks the per-page scripts of the admin dashboard into
// per-entity list controllers, a shared delete confirmation flow, the order
// detail composer and the dashboard.
package controller

import "context"

type EntityKind string

const (
	KindClient   EntityKind = "client"
	KindDish     EntityKind = "dish"
	KindEmployee EntityKind = "employee"
	KindOrder    EntityKind = "order"
)

// Refresher is what the delete flow calls after a confirmed delete. Every
// list controller implements it; the flow never reaches for anything by name.
type Refresher interface {
	Refresh(ctx context.Context) error
}

const placeholderDash = "-"

func orDash(value string) string {
	if value == "" {
		return placeholderDash
	}
	return value
}
