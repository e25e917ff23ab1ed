// Package config loads notifydemo settings from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are loaded first, then NOTIFY_* variables are parsed
// into Config using struct tags.
//
// # Variables
//
//	NOTIFY_ENV         development | staging | production (dev, stage, prod accepted)
//	NOTIFY_SERVICE     service name attached to log records
//	NOTIFY_LOG_LEVEL   debug | info | warn | error, overrides the environment default
//	NOTIFY_LOG_FORMAT  json | text, overrides the environment default
//	NOTIFY_CHANNEL     default channel kind for roster entries (email)
//	NOTIFY_MESSAGE     message to broadcast
//	NOTIFY_ROSTER      path to a YAML roster file
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
// Load does not cache: each call re-reads the environment.
package config
