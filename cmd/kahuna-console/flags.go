package main

const (
	flagAPIURL    = "api-url"
	flagTokenFile = "token-file"
	flagLogLevel  = "log-level"
	flagUsername  = "username"
	flagPassword  = "password"
)
