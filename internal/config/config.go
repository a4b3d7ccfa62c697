package config

import "os"

const DefaultSiteDir = "."

// SiteDir returns the site directory from the LAUNCHPAD_SITE env var,
// falling back to DefaultSiteDir. Only the interactive surfaces consult
// it; the generator itself works purely from its arguments.
func SiteDir() string {
	if env := os.Getenv("LAUNCHPAD_SITE"); env != "" {
		return env
	}
	return DefaultSiteDir
}
