package service

import (
	"context"
	"testing"

	"meetpoint/core/cache"
	"meetpoint/core/errors"
	meetingEntity "meetpoint/modules/meeting/entity"
	participantEntity "meetpoint/modules/participant/entity"
	"meetpoint/modules/recommendation/entity"

	"github.com/google/uuid"
)

// ===================== mocks =====================

type mockRecommendationRepo struct {
	stored map[uuid.UUID]*entity.MeetingRecommendation
}

func newMockRecommendationRepo() *mockRecommendationRepo {
	return &mockRecommendationRepo{stored: map[uuid.UUID]*entity.MeetingRecommendation{}}
}

func (m *mockRecommendationRepo) UpsertRecommendation(ctx context.Context, rec *entity.MeetingRecommendation) error {
	copied := *rec
	m.stored[rec.MeetingID] = &copied
	return nil
}

func (m *mockRecommendationRepo) GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entity.MeetingRecommendation, error) {
	return m.stored[meetingID], nil
}

func (m *mockRecommendationRepo) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	delete(m.stored, meetingID)
	return nil
}

type mockMeetingRepo struct {
	meetings map[uuid.UUID]*meetingEntity.Meeting
}

func newMockMeetingRepo() *mockMeetingRepo {
	return &mockMeetingRepo{meetings: map[uuid.UUID]*meetingEntity.Meeting{}}
}

func (m *mockMeetingRepo) CreateMeeting(ctx context.Context, meeting *meetingEntity.Meeting) (*meetingEntity.Meeting, error) {
	m.meetings[meeting.ID] = meeting
	return meeting, nil
}

func (m *mockMeetingRepo) GetMeetingByID(ctx context.Context, id uuid.UUID) (*meetingEntity.Meeting, error) {
	return m.meetings[id], nil
}

func (m *mockMeetingRepo) GetMeetingByCode(ctx context.Context, code string) (*meetingEntity.Meeting, error) {
	for _, meeting := range m.meetings {
		if meeting.Code == code {
			return meeting, nil
		}
	}
	return nil, nil
}

func (m *mockMeetingRepo) ListRecentMeetings(ctx context.Context, limit int) ([]meetingEntity.Meeting, error) {
	return nil, nil
}

func (m *mockMeetingRepo) UpdateMeeting(ctx context.Context, meeting *meetingEntity.Meeting) error {
	m.meetings[meeting.ID] = meeting
	return nil
}

func (m *mockMeetingRepo) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	delete(m.meetings, id)
	return nil
}

type mockParticipantRepo struct {
	participants map[uuid.UUID][]participantEntity.Participant
}

func newMockParticipantRepo() *mockParticipantRepo {
	return &mockParticipantRepo{participants: map[uuid.UUID][]participantEntity.Participant{}}
}

func (m *mockParticipantRepo) UpsertParticipant(ctx context.Context, p *participantEntity.Participant) (*participantEntity.Participant, error) {
	m.participants[p.MeetingID] = append(m.participants[p.MeetingID], *p)
	return p, nil
}

func (m *mockParticipantRepo) GetParticipantsByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]participantEntity.Participant, error) {
	return m.participants[meetingID], nil
}

func (m *mockParticipantRepo) RemoveParticipant(ctx context.Context, meetingID uuid.UUID, participantID uuid.UUID) error {
	return nil
}

type mockCache struct {
	entries map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string][]byte{}}
}

func (m *mockCache) SetRecommendation(ctx context.Context, meetingID string, payload []byte) error {
	m.entries[meetingID] = payload
	return nil
}

func (m *mockCache) GetRecommendation(ctx context.Context, meetingID string) ([]byte, error) {
	if payload, ok := m.entries[meetingID]; ok {
		return payload, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *mockCache) DeleteRecommendation(ctx context.Context, meetingID string) error {
	delete(m.entries, meetingID)
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error { return nil }

// ===================== helpers =====================

func float64Ptr(v float64) *float64 { return &v }

func newTestService() (*RecommendationService, *mockRecommendationRepo, *mockMeetingRepo, *mockParticipantRepo, *mockCache) {
	recRepo := newMockRecommendationRepo()
	meetings := newMockMeetingRepo()
	participants := newMockParticipantRepo()
	c := newMockCache()

	catalog := []entity.CandidateLocation{
		candidate("central-library", 37.7793, -122.4157),
		candidate("dolores-park", 37.7596, -122.4269),
	}

	svc := NewRecommendationService(recRepo, meetings, participants, c, catalog)
	return svc, recRepo, meetings, participants, c
}

func newTestMeeting() *meetingEntity.Meeting {
	return &meetingEntity.Meeting{
		ID:            uuid.New(),
		Code:          "abc12345",
		Title:         "Quarterly sync",
		OrganizerName: "dana",
		AvailableDays: meetingEntity.DayList{"2026-09-01", "2026-09-02"},
		StartTime:     "09:00",
		EndTime:       "17:00",
	}
}

// ===================== tests =====================

func TestRefresh_MeetingNotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, appErr := svc.Refresh(context.Background(), uuid.New())
	if appErr == nil {
		t.Fatal("Refresh() error = nil, want not found")
	}
	if appErr.Code != errors.ErrNotFound {
		t.Errorf("Code = %v, want %v", appErr.Code, errors.ErrNotFound)
	}
}

func TestRefresh_NoParticipantsYieldsAbsentTimeAndEmptyRanking(t *testing.T) {
	svc, recRepo, meetings, _, _ := newTestService()

	meeting := newTestMeeting()
	meetings.meetings[meeting.ID] = meeting

	resp, appErr := svc.Refresh(context.Background(), meeting.ID)
	if appErr != nil {
		t.Fatalf("Refresh() error = %v", appErr)
	}

	if resp.Time.Available {
		t.Error("Time.Available = true, want false with no submissions")
	}
	if len(resp.Locations) != 0 {
		t.Errorf("len(Locations) = %d, want 0 with no points", len(resp.Locations))
	}

	stored := recRepo.stored[meeting.ID]
	if stored == nil {
		t.Fatal("snapshot was not persisted")
	}
	if stored.TimeRecommendation.Present {
		t.Error("persisted time recommendation should be absent")
	}
}

func TestRefresh_ComputesPersistsAndCaches(t *testing.T) {
	svc, recRepo, meetings, participants, c := newTestService()

	meeting := newTestMeeting()
	meeting.OrganizerLat = float64Ptr(37.7880)
	meeting.OrganizerLng = float64Ptr(-122.4075)
	meetings.meetings[meeting.ID] = meeting

	participants.participants[meeting.ID] = []participantEntity.Participant{
		{
			MeetingID:    meeting.ID,
			Name:         "ana",
			Availability: participantEntity.AvailabilitySet{slot(0, 4)},
			Latitude:     float64Ptr(37.7700),
			Longitude:    float64Ptr(-122.4100),
		},
		{
			MeetingID:    meeting.ID,
			Name:         "ben",
			Availability: participantEntity.AvailabilitySet{slot(0, 4), slot(0, 5)},
		},
	}

	resp, appErr := svc.Refresh(context.Background(), meeting.ID)
	if appErr != nil {
		t.Fatalf("Refresh() error = %v", appErr)
	}

	if !resp.Time.Available || !resp.Time.Universal {
		t.Errorf("Time = %+v, want available universal recommendation", resp.Time)
	}
	if len(resp.Time.Ranges) != 1 || resp.Time.Ranges[0].AttendeeCount != 2 {
		t.Errorf("Ranges = %+v, want single range with 2 attendees", resp.Time.Ranges)
	}

	// Two points contribute: ana's location plus the organizer's.
	if len(resp.Locations) != 2 {
		t.Fatalf("len(Locations) = %d, want 2 ranked candidates", len(resp.Locations))
	}
	if resp.Locations[0].MeanDistanceMeters > resp.Locations[1].MeanDistanceMeters {
		t.Error("locations not sorted ascending by mean distance")
	}

	if recRepo.stored[meeting.ID] == nil {
		t.Error("snapshot was not persisted")
	}
	if _, ok := c.entries[meeting.ID.String()]; !ok {
		t.Error("snapshot was not cached")
	}
}

func TestGetRecommendation_ServesCacheFirst(t *testing.T) {
	svc, _, meetings, _, c := newTestService()

	meeting := newTestMeeting()
	meetings.meetings[meeting.ID] = meeting

	// Prime the cache via a refresh; the follow-up read must not error and
	// must return the same meeting.
	if _, appErr := svc.Refresh(context.Background(), meeting.ID); appErr != nil {
		t.Fatalf("Refresh() error = %v", appErr)
	}
	if len(c.entries) != 1 {
		t.Fatal("expected cache to be primed")
	}

	resp, appErr := svc.GetRecommendation(context.Background(), meeting.ID)
	if appErr != nil {
		t.Fatalf("GetRecommendation() error = %v", appErr)
	}
	if resp.MeetingID != meeting.ID.String() {
		t.Errorf("MeetingID = %q, want %q", resp.MeetingID, meeting.ID.String())
	}
}

func TestGetRecommendation_CorruptCacheEntryFallsThrough(t *testing.T) {
	svc, recRepo, meetings, _, c := newTestService()

	meeting := newTestMeeting()
	meetings.meetings[meeting.ID] = meeting

	// An undecodable cache entry must not surface as the response or an error.
	c.entries[meeting.ID.String()] = []byte("{not json")

	resp, appErr := svc.GetRecommendation(context.Background(), meeting.ID)
	if appErr != nil {
		t.Fatalf("GetRecommendation() error = %v", appErr)
	}
	if resp.MeetingID != meeting.ID.String() {
		t.Errorf("MeetingID = %q, want %q", resp.MeetingID, meeting.ID.String())
	}
	if recRepo.stored[meeting.ID] == nil {
		t.Error("fallthrough should recompute and persist the snapshot")
	}
}

func TestGetRecommendation_ComputesOnMiss(t *testing.T) {
	svc, recRepo, meetings, _, _ := newTestService()

	meeting := newTestMeeting()
	meetings.meetings[meeting.ID] = meeting

	resp, appErr := svc.GetRecommendation(context.Background(), meeting.ID)
	if appErr != nil {
		t.Fatalf("GetRecommendation() error = %v", appErr)
	}
	if resp == nil {
		t.Fatal("GetRecommendation() = nil")
	}
	if recRepo.stored[meeting.ID] == nil {
		t.Error("compute-on-miss should persist the snapshot")
	}
}
