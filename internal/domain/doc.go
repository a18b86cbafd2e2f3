// Package domain defines core data models shared across the app.
// It contains plain wire/state types only; behaviour lives in the
// crypto engine and services.
package domain
