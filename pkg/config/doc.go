/*
Package config provides configuration loading and validation for the faraday
CLI.

Configuration is read from a YAML file, default values are applied, and the
result is validated before use. Environment variables of the form
FARADAY_SECTION_FIELD override file values (e.g. FARADAY_LOGGING_LEVEL).

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}
*/
package config
