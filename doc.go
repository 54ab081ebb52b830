// Package cashcast projects future account balances from a set of
// declarative financial-instrument records: cash accounts, scheduled
// transfers, loans, certificates of deposit, bonds and funds.
//
// The core functionalities include:
//   - Recurrence Engine: expanding a compact occurrence string
//     ("2026-01-15;None;monthly;1") into a concrete, bounded sequence
//     of calendar dates, safe across short months.
//   - Posting Ledger: per-account registers of dated, ranked postings
//     with running balances; insertion keeps chronological and
//     same-day category order, and balances are replayed from the
//     opening posting on every insert.
//   - Instrument Processors: converting each instrument's terms into
//     postings, including 30/360 day-count accrual for bonds, simple
//     day-count interest for loans and CDs, bond-call handling, and
//     periodic compounding of cash interest on projected balances.
//   - Data Persistence: encoding and decoding instrument records to
//     and from a human-readable, version-controllable JSONL book.
//
// This package serves as the foundational logic for the `ccast`
// command-line tool.
package cashcast
