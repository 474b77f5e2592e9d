package prng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestBoxMuller_Distribution(t *testing.T) {
	bm := NewBoxMuller(NewMT19937(123))
	values := bm.Generate(50000, 0, 1)

	mean, std := stat.MeanStdDev(values, nil)
	assert.InDelta(t, 0.0, mean, 0.03)
	assert.InDelta(t, 1.0, std, 0.03)
}

func TestBoxMuller_MuSigma(t *testing.T) {
	bm := NewBoxMuller(NewMT19937(5))
	values := bm.Generate(50000, 5, 2)

	mean, std := stat.MeanStdDev(values, nil)
	assert.InDelta(t, 5.0, mean, 0.05)
	assert.InDelta(t, 2.0, std, 0.05)
}

func TestBoxMuller_SpareIsUsed(t *testing.T) {
	// 一様乱数源の呼び出し回数を数え、2回目の Next では呼ばれないことを確認
	calls := 0
	mt := NewMT19937(1)
	src := Float64Func(func() float64 {
		calls++
		return mt.Float64()
	})
	bm := NewBoxMuller(src)

	bm.Next()
	afterFirst := calls
	bm.Next()
	assert.Equal(t, afterFirst, calls)
	assert.Equal(t, 0, afterFirst%2)
}

func TestBoxMuller_Bytes(t *testing.T) {
	bm := NewBoxMuller(NewMT19937(42))
	data := bm.Bytes(10000)
	assert.Len(t, data, 10000)

	var sum float64
	for _, b := range data {
		sum += float64(b)
	}
	assert.InDelta(t, 127.0, sum/float64(len(data)), 3.0)
}

func TestBoxMullerBasic(t *testing.T) {
	z0, z1 := BoxMullerBasic(math.Exp(-0.5), 0)
	assert.InDelta(t, 1.0, z0, 1e-12)
	assert.InDelta(t, 0.0, z1, 1e-12)

	z0, z1 = BoxMullerBasic(1, 0.3)
	assert.Zero(t, z0)
	assert.Zero(t, z1)
}
