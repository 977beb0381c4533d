// Package notify delivers desktop notifications for incoming messages.
//
// [Desktop] talks to the operating system through gen2brain/beeep. [Queue]
// wraps any [Notifier] with a bounded buffer and a background worker, so
// callers on the UI event loop never wait for the notification daemon.
package notify
