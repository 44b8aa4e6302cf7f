// Package config defines the immutable configuration value shared by all
// tools of a stack as well as helpers to load it from YAML/JSON documents and
// to merge tool requirements into it with explicit conflict detection.
package config
