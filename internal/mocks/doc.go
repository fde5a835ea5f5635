// Package mocks provides test doubles for the store and collaborator
// interfaces: map-backed in-memory stores that honor the same sentinel error
// contracts as the postgres implementations, plus small fakes for the
// crypto and upload collaborators.
package mocks
