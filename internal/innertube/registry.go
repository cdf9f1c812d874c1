package innertube

// Profiles returns the known impersonation profiles keyed by registry alias.
func Profiles() map[string]ClientProfile {
	return map[string]ClientProfile{
		"web":     WebClient,
		"android": AndroidClient,
	}
}

// Lookup resolves a registry alias to its profile.
func Lookup(alias string) (ClientProfile, bool) {
	p, ok := Profiles()[alias]
	return p, ok
}
