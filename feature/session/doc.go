// Package session implements sharing a check run between two devices.
//
// The host creates a session: a 6-character code identifying a snapshot of
// the checklist and its check records, valid for 24 hours. Snapshots are
// stored as JSON objects in a remote bucket and mirrored into a local cache;
// the local write always happens first and every remote failure degrades to
// local-only behavior. While hosting, every Nth recorded check re-encodes
// and pushes the full snapshot with a fresh expiry.
//
// A second device joins by code (typed or via the QR share link). Joining
// replaces the local run state wholesale with the loaded snapshot; joined
// devices never push back, the host is the sole writer. Expired sessions are
// evicted on read.
//
// The only user-visible failures are "not found" and "expired" from the
// combined lookup path; everything else is logged and swallowed.
package session
