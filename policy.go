package compactor

import (
	"sort"

	"github.com/asayers/compactor/datetime"
	"github.com/asayers/compactor/endian"
	"github.com/asayers/compactor/errs"
	"github.com/asayers/compactor/internal/hash"
)

type policyRule struct {
	days uint16
	res  datetime.Resolution
}

// Policy describes how a Compactor reduces the resolution of older data as
// it ages, and when it discards data entirely.
type Policy struct {
	// compactionRules run oldest (lowest resolution) to newest (highest
	// resolution); the boundary of rule i is the day cutoff at which data
	// is reduced to that rule's resolution.
	compactionRules []policyRule
	maxRes          datetime.Resolution
	maxRetention    uint16
}

// MaxRes returns the finest resolution this policy will ever record data at.
func (p Policy) MaxRes() datetime.Resolution {
	return p.maxRes
}

// MaxRetention returns the number of days after which data is discarded
// entirely.
func (p Policy) MaxRetention() uint16 {
	return p.maxRetention
}

// Fingerprint returns a stable hash of this policy's rules. Two policies
// built from the same rules, in any order, produce the same fingerprint;
// snapshot restoration uses it to reject data written under a different
// policy.
func (p Policy) Fingerprint() uint64 {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, 3+3*len(p.compactionRules))
	b = engine.AppendUint16(b, p.maxRetention)
	b = append(b, byte(p.maxRes))
	for _, r := range p.compactionRules {
		b = engine.AppendUint16(b, r.days)
		b = append(b, byte(r.res))
	}

	return hash.ID(string(b))
}

// PolicyBuilder accumulates retention rules before validating them into a
// Policy.
type PolicyBuilder struct {
	rules []policyRule
}

// NewPolicyBuilder starts an empty policy.
func NewPolicyBuilder() *PolicyBuilder {
	return &PolicyBuilder{}
}

// KeepForDays registers a rule: data may be kept at resolution res for up
// to numDays days. Rules may be added in any order; Build sorts and
// validates them.
func (b *PolicyBuilder) KeepForDays(numDays uint16, res datetime.Resolution) *PolicyBuilder {
	b.rules = append(b.rules, policyRule{days: numDays, res: res})

	return b
}

// Build validates the accumulated rules and produces a Policy.
//
// Rules are sorted by (days, resolution) descending and exact duplicates
// are removed. The remaining rules must have strictly increasing
// resolution as days decreases — otherwise one rule would dominate
// another (keep data longer at an equal-or-finer resolution), which is
// always a mistake rather than a meaningful policy.
func (b *PolicyBuilder) Build() (Policy, error) {
	if len(b.rules) == 0 {
		return Policy{}, errs.ErrZeroRetention
	}

	rules := make([]policyRule, len(b.rules))
	copy(rules, b.rules)

	for _, r := range rules {
		if r.days == 0 {
			return Policy{}, errs.ErrPolicyAppliesForZeroDays
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].days != rules[j].days {
			return rules[i].days > rules[j].days
		}

		return rules[i].res > rules[j].res
	})

	deduped := rules[:1]
	for _, r := range rules[1:] {
		last := deduped[len(deduped)-1]
		if r.days == last.days && r.res == last.res {
			continue
		}
		deduped = append(deduped, r)
	}

	for i := 1; i < len(deduped); i++ {
		if deduped[i].res <= deduped[i-1].res {
			return Policy{}, errs.ErrSomePoliciesDominateOthers
		}
	}

	maxRes := deduped[len(deduped)-1].res
	maxRetention := deduped[0].days

	var compactionRules []policyRule
	for i := 0; i < len(deduped)-1; i++ {
		compactionRules = append(compactionRules, policyRule{days: deduped[i+1].days, res: deduped[i].res})
	}

	return Policy{
		compactionRules: compactionRules,
		maxRes:          maxRes,
		maxRetention:    maxRetention,
	}, nil
}
