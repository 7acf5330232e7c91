// Package session tracks authentication state for a long-lived client
// process against the same-origin session endpoints.
//
// A Coordinator owns the local authentication state: the current user (or
// absence of one) plus the "initial resolution pending" and "fetch in
// flight" flags. It deduplicates overlapping work instead of queueing it:
// concurrent FetchUser calls share one request via singleflight, and the
// code exchange is a one-shot latch: a given authorization code is
// exchanged at most once per coordinator lifetime, with every later call
// observing the first attempt's settled outcome.
//
// Typical wiring at the composition root:
//
//	coord, err := session.New(session.Config{
//		BaseURL:  "https://app.example.com",
//		Navigate: openBrowser,
//	})
//	if err != nil {
//		return err
//	}
//	coord.Start(ctx)
//
// The coordinator is the only writer of its state; consumers read it through
// User, IsPending, IsFetching, and Status.
package session
