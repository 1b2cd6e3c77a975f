package filter

import (
	"math"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"moto-rentals-backend/internal/domain"
)

// Fingerprint hashes a FilterState canonically: facet membership order does
// not change the result.
func Fingerprint(s domain.FilterState) uint64 {
	d := xxhash.New()
	writeField(d, s.RentalType)
	writeField(d, strconv.FormatBool(s.AvailableNowOnly))
	writeField(d, strconv.FormatUint(math.Float64bits(s.PriceMin), 16))
	writeField(d, strconv.FormatUint(math.Float64bits(s.PriceMax), 16))
	writeSet(d, s.Brands)
	writeSet(d, s.ModelYears)
	writeSet(d, s.BodyTypes)
	writeField(d, s.Transmission)
	writeSet(d, s.FuelTypes)
	return d.Sum64()
}

func writeSet(d *xxhash.Digest, set []string) {
	sorted := slices.Clone(set)
	slices.Sort(sorted)
	writeField(d, strconv.Itoa(len(sorted)))
	for _, v := range sorted {
		writeField(d, v)
	}
}

// Length-prefixed so that adjacent fields cannot run together.
func writeField(d *xxhash.Digest, v string) {
	_, _ = d.WriteString(strconv.Itoa(len(v)))
	_, _ = d.WriteString(":")
	_, _ = d.WriteString(v)
}
