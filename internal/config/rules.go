package config

// RuleConfig holds settings that change which moves the engine accepts.
type RuleConfig struct {
	// PathBlocking makes rooks, bishops and queens stop at the first
	// occupied square on their line. The baseline rule set only checks
	// the shape of the move and lets sliding pieces pass through.
	PathBlocking bool
}

// NewRuleConfig creates a RuleConfig for the baseline rule set.
func NewRuleConfig() *RuleConfig {
	return &RuleConfig{}
}
