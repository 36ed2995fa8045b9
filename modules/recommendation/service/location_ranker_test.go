package service

import (
	"math"
	"testing"

	"meetpoint/modules/recommendation/entity"
)

func point(lat, lng float64) entity.GeoPoint {
	return entity.GeoPoint{Latitude: lat, Longitude: lng}
}

func candidate(id string, lat, lng float64) entity.CandidateLocation {
	return entity.CandidateLocation{ID: id, Name: id, Coordinates: point(lat, lng)}
}

func TestHaversineMeters_SymmetricAndZeroAtIdentity(t *testing.T) {
	pairs := [][2]entity.GeoPoint{
		{point(37.7793, -122.4157), point(37.7596, -122.4269)},
		{point(0, 0), point(0, 180)},
		{point(-45.1, 170.9), point(60.2, -30.4)},
	}

	for _, pair := range pairs {
		ab := haversineMeters(pair[0], pair[1])
		ba := haversineMeters(pair[1], pair[0])
		if ab != ba {
			t.Errorf("haversineMeters(%v,%v) = %v, reversed = %v", pair[0], pair[1], ab, ba)
		}
	}

	p := point(37.7793, -122.4157)
	if d := haversineMeters(p, p); d != 0 {
		t.Errorf("haversineMeters(p,p) = %v, want 0", d)
	}
}

func TestHaversineMeters_KnownDistance(t *testing.T) {
	// San Francisco to Los Angeles is roughly 559 km great-circle.
	sf := point(37.7749, -122.4194)
	la := point(34.0522, -118.2437)

	d := haversineMeters(sf, la)
	if d < 550_000 || d > 570_000 {
		t.Errorf("haversineMeters(SF,LA) = %v m, want ~559 km", d)
	}
}

func TestRankLocations_SortedAscendingByMeanDistance(t *testing.T) {
	ranker := NewLocationRanker()

	points := []entity.GeoPoint{
		point(37.7793, -122.4157),
		point(37.7706, -122.3922),
		point(37.7880, -122.4075),
	}
	catalog := []entity.CandidateLocation{
		candidate("far", 34.0522, -118.2437),
		candidate("near", 37.7800, -122.4100),
		candidate("mid", 37.7000, -122.4500),
	}

	ranked, appErr := ranker.RankLocations(points, catalog)
	if appErr != nil {
		t.Fatalf("RankLocations() error = %v", appErr)
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].MeanDistanceMeters > ranked[i].MeanDistanceMeters {
			t.Errorf("ranking not ascending at %d: %v > %v",
				i, ranked[i-1].MeanDistanceMeters, ranked[i].MeanDistanceMeters)
		}
	}
	if ranked[0].Candidate.ID != "near" {
		t.Errorf("first candidate = %q, want \"near\"", ranked[0].Candidate.ID)
	}
	for _, r := range ranked {
		if r.FairnessScore < 0 {
			t.Errorf("candidate %q fairness = %v, want >= 0", r.Candidate.ID, r.FairnessScore)
		}
		if math.Abs(r.FairnessScore-(r.MaxDistanceMeters-r.MeanDistanceMeters)) > 1e-9 {
			t.Errorf("candidate %q fairness = %v, want max-mean = %v",
				r.Candidate.ID, r.FairnessScore, r.MaxDistanceMeters-r.MeanDistanceMeters)
		}
	}
}

func TestRankLocations_CandidateAtParticipantCoordinatesRanksFirst(t *testing.T) {
	ranker := NewLocationRanker()

	here := point(51.5074, -0.1278)
	points := []entity.GeoPoint{here, here, here}
	catalog := []entity.CandidateLocation{
		candidate("elsewhere", 48.8566, 2.3522),
		candidate("exact", here.Latitude, here.Longitude),
	}

	ranked, appErr := ranker.RankLocations(points, catalog)
	if appErr != nil {
		t.Fatalf("RankLocations() error = %v", appErr)
	}

	first := ranked[0]
	if first.Candidate.ID != "exact" {
		t.Fatalf("first candidate = %q, want \"exact\"", first.Candidate.ID)
	}
	if first.MeanDistanceMeters != 0 {
		t.Errorf("MeanDistanceMeters = %v, want 0", first.MeanDistanceMeters)
	}
	if first.FairnessScore != 0 {
		t.Errorf("FairnessScore = %v, want 0", first.FairnessScore)
	}
}

func TestRankLocations_OutlierParticipantInflatesFairnessNotOrder(t *testing.T) {
	ranker := NewLocationRanker()

	// Tight cluster plus one far-away participant. The candidate at the
	// cluster wins on mean distance but carries a large fairness score.
	points := []entity.GeoPoint{
		point(37.7700, -122.4100),
		point(37.7710, -122.4110),
		point(37.7720, -122.4120),
		point(40.7128, -74.0060), // outlier
	}
	catalog := []entity.CandidateLocation{
		candidate("cluster", 37.7710, -122.4110),
		candidate("nowhere-near", 25.7617, -80.1918),
	}

	ranked, appErr := ranker.RankLocations(points, catalog)
	if appErr != nil {
		t.Fatalf("RankLocations() error = %v", appErr)
	}

	if ranked[0].Candidate.ID != "cluster" {
		t.Fatalf("first candidate = %q, want \"cluster\"", ranked[0].Candidate.ID)
	}
	if ranked[0].FairnessScore < 1_000_000 {
		t.Errorf("FairnessScore = %v, want large gap from the outlier", ranked[0].FairnessScore)
	}
}

func TestRankLocations_ZeroPointsYieldsEmptyRanking(t *testing.T) {
	ranker := NewLocationRanker()

	ranked, appErr := ranker.RankLocations(nil, []entity.CandidateLocation{
		candidate("somewhere", 10, 10),
	})
	if appErr != nil {
		t.Fatalf("RankLocations() error = %v, want nil (absence, not error)", appErr)
	}
	if len(ranked) != 0 {
		t.Errorf("len(ranked) = %d, want 0", len(ranked))
	}
}

func TestRankLocations_TruncatesToTopK(t *testing.T) {
	ranker := NewLocationRanker()

	points := []entity.GeoPoint{point(0, 0)}
	catalog := make([]entity.CandidateLocation, 0, 8)
	for i := 0; i < 8; i++ {
		catalog = append(catalog, candidate(string(rune('a'+i)), float64(i), float64(i)))
	}

	ranked, appErr := ranker.RankLocations(points, catalog)
	if appErr != nil {
		t.Fatalf("RankLocations() error = %v", appErr)
	}
	if len(ranked) != ranker.TopK {
		t.Errorf("len(ranked) = %d, want TopK = %d", len(ranked), ranker.TopK)
	}
	// The nearest candidates must survive truncation.
	if ranked[0].Candidate.ID != "a" {
		t.Errorf("first candidate = %q, want \"a\"", ranked[0].Candidate.ID)
	}
}

func TestRankLocations_OutOfRangeCoordinatesAreRejected(t *testing.T) {
	ranker := NewLocationRanker()

	tests := []struct {
		name    string
		points  []entity.GeoPoint
		catalog []entity.CandidateLocation
	}{
		{
			name:    "point latitude out of range",
			points:  []entity.GeoPoint{point(91, 0)},
			catalog: []entity.CandidateLocation{candidate("ok", 0, 0)},
		},
		{
			name:    "point longitude out of range",
			points:  []entity.GeoPoint{point(0, -181)},
			catalog: []entity.CandidateLocation{candidate("ok", 0, 0)},
		},
		{
			name:    "catalog latitude out of range",
			points:  []entity.GeoPoint{point(0, 0)},
			catalog: []entity.CandidateLocation{candidate("bad", -95, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := ranker.RankLocations(tt.points, tt.catalog)
			if appErr == nil {
				t.Fatal("RankLocations() error = nil, want validation error")
			}
		})
	}
}
