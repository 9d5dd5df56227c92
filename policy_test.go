package compactor

import (
	"errors"
	"testing"

	"github.com/asayers/compactor/datetime"
	"github.com/asayers/compactor/errs"
	"github.com/stretchr/testify/require"
)

func TestPolicyBuilder_ZeroRetention(t *testing.T) {
	_, err := NewPolicyBuilder().Build()
	require.ErrorIs(t, err, errs.ErrZeroRetention)
}

func TestPolicyBuilder_ZeroDays(t *testing.T) {
	_, err := NewPolicyBuilder().KeepForDays(0, datetime.Day).Build()
	require.ErrorIs(t, err, errs.ErrPolicyAppliesForZeroDays)
}

func TestPolicyBuilder_DominatedPolicies(t *testing.T) {
	cases := [][2]policyRule{
		{{days: 5, res: datetime.Hour}, {days: 2, res: datetime.AmPm}},
		{{days: 2, res: datetime.AmPm}, {days: 5, res: datetime.Hour}},
		{{days: 2, res: datetime.Hour}, {days: 2, res: datetime.AmPm}},
	}
	for _, c := range cases {
		_, err := NewPolicyBuilder().
			KeepForDays(c[0].days, c[0].res).
			KeepForDays(c[1].days, c[1].res).
			Build()
		require.True(t, errors.Is(err, errs.ErrSomePoliciesDominateOthers), "%v", c)
	}
}

func TestPolicyBuilder_DuplicatePolicies(t *testing.T) {
	x, err := NewPolicyBuilder().
		KeepForDays(2, datetime.Hour).
		KeepForDays(2, datetime.Hour).
		Build()
	require.NoError(t, err)

	y, err := NewPolicyBuilder().KeepForDays(2, datetime.Hour).Build()
	require.NoError(t, err)

	require.Equal(t, y, x)
}

func TestPolicyBuilder_Build(t *testing.T) {
	p, err := NewPolicyBuilder().
		KeepForDays(2, datetime.AmPm).
		KeepForDays(3, datetime.Day).
		KeepForDays(1, datetime.Hour).
		Build()
	require.NoError(t, err)
	require.Equal(t, datetime.Hour, p.MaxRes())
	require.EqualValues(t, 3, p.MaxRetention())
	require.Equal(t, []policyRule{
		{days: 2, res: datetime.Day},
		{days: 1, res: datetime.AmPm},
	}, p.compactionRules)
}
