package service

import (
	"math"
	"sort"

	"meetpoint/core/constants"
	"meetpoint/core/errors"
	"meetpoint/modules/recommendation/entity"
)

// earthRadiusMeters is the mean Earth radius used by the Haversine formula.
const earthRadiusMeters = 6371000.0

// LocationRanker scores the candidate catalog against participant starting
// points. Pure computation, safe for concurrent use.
type LocationRanker struct {
	// TopK bounds how many candidates are returned. Truncation to TopK is
	// part of the contract, not a silent cutoff.
	TopK int
}

// NewLocationRanker creates a ranker returning the default top 5 candidates.
func NewLocationRanker() *LocationRanker {
	return &LocationRanker{TopK: constants.DefaultLocationTopK}
}

// RankLocations computes, for every catalog candidate, the mean and worst-case
// great-circle distance to the supplied points and returns the TopK candidates
// sorted ascending by mean distance.
//
// The fairness score (max - mean) is carried for display and downstream
// tie-breaking; it is deliberately NOT the sort key. Zero points yields an
// empty ranking, not an error.
func (r *LocationRanker) RankLocations(
	points []entity.GeoPoint,
	catalog []entity.CandidateLocation,
) ([]entity.RankedLocation, *errors.AppError) {

	for _, p := range points {
		if err := validateGeoPoint("points", p); err != nil {
			return nil, err
		}
	}
	for _, c := range catalog {
		if err := validateGeoPoint("catalog.coordinates", c.Coordinates); err != nil {
			return nil, err
		}
	}

	if len(points) == 0 {
		return []entity.RankedLocation{}, nil
	}

	ranked := make([]entity.RankedLocation, 0, len(catalog))
	for _, candidate := range catalog {
		var sum, max float64
		for _, p := range points {
			d := haversineMeters(candidate.Coordinates, p)
			sum += d
			if d > max {
				max = d
			}
		}
		mean := sum / float64(len(points))

		ranked = append(ranked, entity.RankedLocation{
			Candidate:          candidate,
			MeanDistanceMeters: mean,
			MaxDistanceMeters:  max,
			FairnessScore:      max - mean,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanDistanceMeters < ranked[j].MeanDistanceMeters
	})

	if r.TopK > 0 && len(ranked) > r.TopK {
		ranked = ranked[:r.TopK]
	}
	return ranked, nil
}

// haversineMeters returns the great-circle distance between two points.
//
//	a = sin²(Δφ/2) + cos(φ1)·cos(φ2)·sin²(Δλ/2)
//	c = 2·atan2(√a, √(1-a))
//	d = R·c
func haversineMeters(p1, p2 entity.GeoPoint) float64 {
	phi1 := p1.Latitude * math.Pi / 180
	phi2 := p2.Latitude * math.Pi / 180
	deltaPhi := (p2.Latitude - p1.Latitude) * math.Pi / 180
	deltaLambda := (p2.Longitude - p1.Longitude) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func validateGeoPoint(field string, p entity.GeoPoint) *errors.AppError {
	if p.Latitude < -90 || p.Latitude > 90 {
		return errors.NewValidationError(field+".latitude", "must be within [-90, 90]")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return errors.NewValidationError(field+".longitude", "must be within [-180, 180]")
	}
	return nil
}
