// Package frame provides the hosts that drive per-frame callbacks and deliver
// viewport resize events.
//
// A [Host] hands out cancelable frame handles and resize subscriptions, the
// two resources a mounted animation must release on teardown:
//
//   - [Manual]: advanced explicitly by the caller (Bubble Tea, raylib, tests)
//   - [Loop]: a ticker goroutine firing at a fixed rate (headless renderers)
//
// Both deliver frame callbacks and resize listeners on a single execution
// context, so consumers need no locking of their own.
package frame
