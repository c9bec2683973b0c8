// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (policies, reports, vault entries) and contracts
// (interfaces) only.
package domain
