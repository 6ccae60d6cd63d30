// Package service implements the business operations of the Varal dos Sonhos
// API: the donation lifecycle engine, donor registration and authentication,
// adoption creation and catalog reads.
//
// Services depend on narrow repository interfaces defined in this package and
// on the mailer.Sender contract, so every operation is testable with in-memory
// mocks. All errors returned by service methods are the sentinels defined in
// errors.go; handlers map them to HTTP responses in one place.
//
// Notification dispatches are best-effort throughout: the outcome is logged
// and never joined into the primary operation's error path.
package service
