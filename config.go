package wheelerboss

// Variant selects which succinct encoding Build produces (spec.md
// section 9 "Multi-variant core"): the classical edge-labelled BOSS
// representation, or the select-free SBWT bitmap representation. Both
// are built from the same edge-centric enumeration and answer the same
// query contract.
type Variant int

const (
	// VariantBOSS builds a BOSSIndex (spec.md section 3 "Indexed graph
	// (BOSS form)").
	VariantBOSS Variant = iota
	// VariantSBWT builds an SBWTIndex (spec.md section 3 "Indexed graph
	// (SBWT form)").
	VariantSBWT
)

// BuildConfig collects the construction-time tunables, the same role
// db.go's DBConf plays for the teacher's compression pipeline: a plain
// struct with a package-level default.
type BuildConfig struct {
	// K is the node label length (spec.md section 4.3). Must be >= 1.
	K int
	// Variant selects BOSS or SBWT encoding.
	Variant Variant
}

// DefaultBuildConfig mirrors db.go's DefaultDBConf: sane defaults a
// caller can start from and override selectively.
var DefaultBuildConfig = BuildConfig{
	K:       31,
	Variant: VariantBOSS,
}
