// Package mocks provides hand-written mock implementations of the store
// interfaces for testing. Each mock keeps simple in-memory defaults and
// exposes per-method function fields for customizing behavior in a single
// test without writing a new type.
package mocks
