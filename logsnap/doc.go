// Package logsnap adapts an already-decoded sequence of trajectory-log
// snapshots to the fluence.Stream/fluence.Sample contract. It never
// parses the log's binary container itself — that stays a collaborator,
// per the core's non-goals — it only converts each snapshot's axis
// values from their recorded machine scale to IEC 61217 and picks the
// Expected or Actual record family per the caller's RecordType.
package logsnap
