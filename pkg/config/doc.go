// Package config loads application configuration from environment variables
// into tagged structs, with optional .env file support.
//
// Each config type is parsed once per process and cached, so the API client,
// session manager and portal all observe the same values regardless of load
// order:
//
//	var api apiclient.Config
//	config.MustLoad(&api)
//
// Parsing is delegated to github.com/caarlos0/env; .env files are loaded via
// github.com/joho/godotenv. ResetCache exists for tests that change the
// environment between cases.
package config
