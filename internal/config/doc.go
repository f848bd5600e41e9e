// Package config provides configuration structures and utilities for rosterscan.
// It defines the endpoint, transport and output options and loads them from
// defaults, a YAML file, the environment and CLI flags, in that order.
package config
