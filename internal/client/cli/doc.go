// Package cli implements the interactive forum client.
//
// The entry point is App, constructed from a Config and run as a
// read-eval-print loop. Commands cover:
//
//   - Login / Logout (token persisted between runs)
//   - posts / search / post — browse and read the feed
//   - new / reply / replyfloor — write posts and floors
//   - like / dis / fav / del / report — post actions
//   - mine / favs / history — the user's own listings
//   - me / name / messages — profile and notifications
//   - upload — push images to the picture service
//   - cats / tags — reference-data lookups
//
// Command handlers log their own errors; the loop stays resilient and
// focused on I/O.
package cli
