// Package league defines the AngoLeague domain model and the record
// normalizer: pure functions that convert raw, schema-less documents from
// the datastore into fully-defaulted domain values. Every field of a raw
// document may be absent, of the wrong type, or hold a stale label from a
// prior schema version; the normalizer substitutes defaults instead of
// failing, so downstream code never needs defensive checks.
package league
