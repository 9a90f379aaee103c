// Package postgres provides PostgreSQL implementations of the store
// interfaces. All driver-level errors are translated into store sentinel
// errors at this boundary; nothing above this package sees a pgconn error.
package postgres
