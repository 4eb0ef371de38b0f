package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gamma/internal/testutil"
)

func TestStandings(t *testing.T) {
	b := testutil.MustParseDiagram(
		"1.2",
		"1.2",
		"3.1",
	)

	standings := Standings(b, 4)
	require.Len(t, standings, 4)

	assert.Equal(t, Standing{PlayerID: 1, Fields: 3, Areas: 2}, standings[0])
	assert.Equal(t, Standing{PlayerID: 2, Fields: 2, Areas: 1}, standings[1])
	assert.Equal(t, Standing{PlayerID: 3, Fields: 1, Areas: 1}, standings[2])
	assert.Equal(t, Standing{PlayerID: 4}, standings[3])

	assert.Equal(t, []int{1}, Leaders(standings))
}

func TestLeaders(t *testing.T) {
	tied := Standings(testutil.MustParseDiagram("12", ".."), 3)
	assert.Equal(t, []int{1, 2}, Leaders(tied))

	empty := Standings(testutil.MustParseDiagram(".."), 2)
	assert.Empty(t, Leaders(empty))
	assert.Empty(t, Leaders(nil))
}
