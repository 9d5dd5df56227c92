package datetime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmPm_String(t *testing.T) {
	require.Equal(t, "AM", AM.String())
	require.Equal(t, "PM", PM.String())
}

func TestAmPmFromBit(t *testing.T) {
	require.Equal(t, AM, amPmFromBit(0))
	require.Equal(t, PM, amPmFromBit(1))
}

func TestSixHour_String(t *testing.T) {
	require.Equal(t, "night", Night.String())
	require.Equal(t, "morning", Morning.String())
	require.Equal(t, "afternoon", Afternoon.String())
	require.Equal(t, "evening", Evening.String())
}

func TestSixHourFromValue(t *testing.T) {
	require.Equal(t, Night, sixHourFromValue(0))
	require.Equal(t, Morning, sixHourFromValue(1))
	require.Equal(t, Afternoon, sixHourFromValue(2))
	require.Equal(t, Evening, sixHourFromValue(3))
}
