// Package config loads settings for applications embedding generated API
// clients: base URL, timeout, default headers, logging and tracing options.
//
// Settings come from a YAML file (viper), optionally overlaid with
// environment variables and a .env file (godotenv), and are validated with
// struct tags before use:
//
//	settings, err := config.Load("petstore-client", config.LoaderOptions{})
//	if err != nil {
//	    return err
//	}
package config
