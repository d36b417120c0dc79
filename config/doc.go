// Package config loads the settings of the sysprops command from the
// environment and optional dotenv files, and builds its logger.
package config
