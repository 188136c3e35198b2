// Package domain defines the core business entities of the FitHub API
// (profiles, catalog videos and exercises, workouts and favorites) together
// with their validation rules and defaults.
package domain
