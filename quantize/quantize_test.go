package quantize

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arloliu/bstid/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lonDomain  = Domain{Min: -180, Max: 180}
	latDomain  = Domain{Min: -90, Max: 90}
	altDomain  = Domain{Min: 0, Max: 1000}
	timeDomain = Domain{Min: 0, Max: 1 << 32}
)

// bisect is the reference bisection: halve [lo, hi) bits times, taking the
// upper half when value >= mid.
func bisect(value float64, d Domain, bits int) uint64 {
	lo, hi := d.Min, d.Max
	var code uint64
	for range bits {
		mid := (lo + hi) / 2
		if value >= mid {
			code = code<<1 | 1
			lo = mid
		} else {
			code <<= 1
			hi = mid
		}
	}

	return code
}

func TestNewDomain(t *testing.T) {
	d, err := NewDomain(-180, 180)
	require.NoError(t, err)
	require.Equal(t, 360.0, d.Width())
	require.Equal(t, 0.0, d.Mid())
	require.Equal(t, "[-180, 180)", d.String())

	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"empty", 1, 1},
		{"inverted", 2, 1},
		{"nan", math.NaN(), 1},
		{"inf", 0, math.Inf(1)},
		{"width overflow", -1e308, 1e308},
		{"width overflow at max float", -math.MaxFloat64, math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDomain(tt.lo, tt.hi)
			require.ErrorIs(t, err, errs.ErrInvalidDomain)
		})
	}
}

func TestDomain_Contains(t *testing.T) {
	require.True(t, lonDomain.Contains(-180))
	require.True(t, lonDomain.Contains(179.999))
	require.False(t, lonDomain.Contains(180))
	require.False(t, lonDomain.Contains(-180.001))
	require.False(t, lonDomain.Contains(math.NaN()))
}

func TestQuantize_MatchesBisection(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	domains := []Domain{lonDomain, latDomain, altDomain, timeDomain}

	for _, d := range domains {
		for range 2000 {
			v := d.Min + rng.Float64()*d.Width()
			bits := rng.Intn(25)
			require.Equal(t, bisect(v, d, bits), Quantize(v, d, bits), "value=%v bits=%d domain=%s", v, bits, d)
		}
	}
}

func TestQuantize_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		bits  int
		want  uint64
	}{
		{"domain min", -180, 8, 0},
		{"just below max", math.Nextafter(180, 0), 8, 255},
		{"max clamps to last cell", 180, 8, 255},
		{"above max clamps", 500, 8, 255},
		{"below min clamps", -500, 8, 0},
		{"nan maps to zero", math.NaN(), 8, 0},
		{"zero bits", 123, 0, 0},
		{"midpoint goes up", 0, 1, 1},
		{"full width", 180, 64, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.value, lonDomain, tt.bits))
		})
	}
}

func TestQuantize_Monotonic(t *testing.T) {
	prev := uint64(0)
	for v := -180.0; v < 180; v += 0.37 {
		code := Quantize(v, lonDomain, 12)
		require.GreaterOrEqual(t, code, prev)
		prev = code
	}
}

func TestDequantize_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, d := range []Domain{lonDomain, latDomain, altDomain, timeDomain} {
		for bits := 1; bits <= 40; bits++ {
			v := d.Min + rng.Float64()*d.Width()
			code := Quantize(v, d, bits)
			got := Dequantize(code, d, bits)
			half := CellWidth(d, bits) / 2
			require.InDelta(t, v, got, half*(1+1e-9), "bits=%d domain=%s", bits, d)

			lo, hi := Cell(code, d, bits)
			require.LessOrEqual(t, lo, v)
			require.Greater(t, hi, v)
		}
	}
}

func TestDequantize_ZeroBits(t *testing.T) {
	require.Equal(t, 0.0, Dequantize(0, lonDomain, 0))
	require.Equal(t, 500.0, Dequantize(0, altDomain, 0))
}

func TestCell(t *testing.T) {
	lo, hi := Cell(3, altDomain, 2)
	require.Equal(t, 750.0, lo)
	require.Equal(t, 1000.0, hi)
	require.Equal(t, 875.0, Dequantize(3, altDomain, 2))
	require.Equal(t, 250.0, CellWidth(altDomain, 2))
}

func TestMaxCode(t *testing.T) {
	require.Equal(t, uint64(0), MaxCode(0))
	require.Equal(t, uint64(1), MaxCode(1))
	require.Equal(t, uint64(1023), MaxCode(10))
	require.Equal(t, uint64(math.MaxUint64), MaxCode(64))
}

func BenchmarkQuantize(b *testing.B) {
	for b.Loop() {
		Quantize(139.75, lonDomain, 20)
	}
}
