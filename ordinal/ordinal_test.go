package ordinal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eftil/sudoku-core/ordinal"
)

func TestDigitToOrdinalIdentities(t *testing.T) {
	cases := []struct {
		digit int
		want  string
	}{
		{1, "1"},
		{2, "2"},
		{3, "w"},
		{4, "w+1"},
		{5, "w+2"},
		{6, "w*2"},
		{7, "w*2+1"},
		{8, "w*2+2"},
		{9, "w^2"},
	}
	for _, tc := range cases {
		got := ordinal.DigitToOrdinal(tc.digit).String()
		assert.Equal(t, tc.want, got, "digit %d", tc.digit)
	}
}

func TestAddLeftAbsorption(t *testing.T) {
	one := ordinal.DigitToOrdinal(1)
	omega := ordinal.DigitToOrdinal(3)

	require.True(t, one.Add(omega).Equal(omega), "1 + w should equal w")
	require.False(t, omega.Add(one).Equal(omega), "w + 1 should not equal w")
}

func TestMulAbsorption(t *testing.T) {
	two := ordinal.DigitToOrdinal(2)
	omega := ordinal.DigitToOrdinal(3)

	require.True(t, two.Mul(omega).Equal(omega), "2*w should equal w")

	omegaTimesTwo := omega.Mul(two)
	omegaPlusOmega := omega.Add(omega)
	require.True(t, omegaTimesTwo.Equal(omegaPlusOmega), "w*2 should equal w+w")
	require.False(t, omegaTimesTwo.Equal(omega), "w*2 should not equal w")
}

func TestAdditionAssociative(t *testing.T) {
	a := ordinal.DigitToOrdinal(4)
	b := ordinal.DigitToOrdinal(7)
	c := ordinal.DigitToOrdinal(9)

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	assert.True(t, left.Equal(right))
}

func TestZeroIdentityForAddition(t *testing.T) {
	alpha := ordinal.DigitToOrdinal(8)
	assert.True(t, ordinal.Zero().Add(alpha).Equal(alpha))
	assert.True(t, alpha.Add(ordinal.Zero()).Equal(alpha))
}

func TestMultiplicationIdentities(t *testing.T) {
	alpha := ordinal.DigitToOrdinal(6)
	assert.True(t, ordinal.One().Mul(alpha).Equal(alpha))
	assert.True(t, alpha.Mul(ordinal.One()).Equal(alpha))
	assert.True(t, ordinal.Zero().Mul(alpha).Equal(ordinal.Zero()))
	assert.True(t, alpha.Mul(ordinal.Zero()).Equal(ordinal.Zero()))
}

func TestOrdinalSumAndProduct(t *testing.T) {
	sum := ordinal.OrdinalSum([]int{9, 4, 7, 1})
	// 9 -> w^2, 4 -> w+1, 7 -> w*2+1, 1 -> 1; left-absorbing chain.
	expected := ordinal.DigitToOrdinal(9).
		Add(ordinal.DigitToOrdinal(4)).
		Add(ordinal.DigitToOrdinal(7)).
		Add(ordinal.DigitToOrdinal(1))
	assert.True(t, sum.Equal(expected))

	prod := ordinal.OrdinalProduct([]int{2, 3})
	expectedProd := ordinal.DigitToOrdinal(2).Mul(ordinal.DigitToOrdinal(3))
	assert.True(t, prod.Equal(expectedProd))

	// Product over an empty slice is the multiplicative identity.
	assert.True(t, ordinal.OrdinalProduct(nil).Equal(ordinal.One()))
	assert.True(t, ordinal.OrdinalSum(nil).Equal(ordinal.Zero()))
}

func TestNewCheckedDomainError(t *testing.T) {
	_, err := ordinal.NewChecked([]int64{1, 1 << 40})
	require.Error(t, err)
	var domainErr *ordinal.DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestEqualityIgnoresTrailingZeros(t *testing.T) {
	a := ordinal.New([]int64{3, 0, 0})
	b := ordinal.New([]int64{3})
	assert.True(t, a.Equal(b))
}
