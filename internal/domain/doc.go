// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (profiles, encoded hashes, receipts) and contracts
// (interfaces) only.
package domain
