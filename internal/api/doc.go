// Package api handles the FitHub HTTP endpoints: request decoding and
// validation, calls into the store interfaces, and response formatting.
// Each handler maps one route onto one store operation; there is no service
// layer in between.
package api
