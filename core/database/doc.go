// Package database manages the connection to the local database.
//
// The database backs the local session cache. Sqlite is the default driver
// since the cache is device-local; mysql is supported for shared deployments.
// The connection is optional: when it cannot be established the application
// degrades to an in-memory cache.
package database
