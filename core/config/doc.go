// Package config provides configuration management for List Control.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file (via godotenv). Defaults are declared as struct tags on the
// partial Config structs owned by each package (server, storage, database,
// logger, session) and bound through reflection, so a new setting only needs
// its tag to become configurable.
//
// Environment variables map to nested keys by replacing dots with
// underscores, e.g. SERVER_PORT -> server.port, SESSION_BATCH_SIZE ->
// session.batch_size.
package config
