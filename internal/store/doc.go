// Package store defines the persistence contracts for the FitHub API: one
// interface per aggregate (profiles, videos, exercises, workouts, favorites),
// the sentinel errors every implementation maps its failures onto, and a
// transaction helper for multi-statement operations.
package store
