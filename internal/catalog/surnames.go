package catalog

// defaultCommonSurnames lists last names frequent enough across rosters
// that a bare surname hit is unreliable without team context in the same
// text. Deployments override it via configuration; this set is data, not
// matching logic.
var defaultCommonSurnames = []string{
	"smith", "jones", "williams", "brown", "taylor",
	"davies", "wilson", "evans", "thomas", "johnson",
	"roberts", "walker", "wright", "robinson", "thompson",
	"white", "hughes", "edwards", "green", "lewis",
	"wood", "harris", "martin", "jackson", "clarke",
	"james", "baker", "phillips", "mitchell", "carter",
	"silva", "santos", "fernandez", "rodriguez", "garcia",
	"martinez", "lopez", "gonzalez", "perez", "sanchez",
	"ramirez", "torres", "gomez", "diaz", "hernandez",
	"moreno", "alves", "pereira", "costa", "oliveira",
}

// CommonSurnames returns the surname set used to flag context-dependent
// last-name patterns. Pass overrides from configuration to swap the set
// wholesale; an empty slice falls back to the built-in default.
func CommonSurnames(overrides []string) map[string]bool {
	names := defaultCommonSurnames
	if len(overrides) > 0 {
		names = overrides
	}

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
