package wheelerboss

// Build constructs an Index from inputs at the given config's k (spec.md
// section 6 "build(inputs, k) -> Index"). Every input string must have
// length >= conf.K and conf.K must be >= 1; violations are reported as a
// *PreconditionError immediately, before any partial construction is
// attempted (spec.md section 7).
func Build(inputs []string, conf BuildConfig) (Index, error) {
	table, err := enumerateKmers(inputs, conf.K)
	if err != nil {
		return nil, err
	}
	switch conf.Variant {
	case VariantSBWT:
		return buildSBWT(table, conf.K)
	default:
		return buildBOSS(table, conf.K)
	}
}

// BuildBOSS is a convenience wrapper around Build for callers that want
// the concrete BOSSIndex type rather than the Index interface.
func BuildBOSS(inputs []string, k int) (*BOSSIndex, error) {
	table, err := enumerateKmers(inputs, k)
	if err != nil {
		return nil, err
	}
	return buildBOSS(table, k)
}

// BuildSBWT is a convenience wrapper around Build for callers that want
// the concrete SBWTIndex type rather than the Index interface.
func BuildSBWT(inputs []string, k int) (*SBWTIndex, error) {
	table, err := enumerateKmers(inputs, k)
	if err != nil {
		return nil, err
	}
	return buildSBWT(table, k)
}
