//go:build unit

package commands_test

import (
	"context"
	"time"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/domain/reservation"
	"rentmarket/internal/domain/review"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory unit of work backing the command tests. It mirrors the conditional
// updates the SQL repositories rely on (status guards, approve-once, unique
// check type per reservation) so the race-sensitive paths are exercised.

type fakeNotification struct {
	UserID uuid.UUID
	Topic  string
}

type fakeState struct {
	items         map[uuid.UUID]shared.ItemSnapshot
	reservations  map[uuid.UUID]*shared.ReservationSnapshot
	checks        map[uuid.UUID]*shared.ConditionCheckSnapshot
	reviews       map[uuid.UUID]*shared.ReviewSnapshot
	responses     map[uuid.UUID]string
	helpful       map[uuid.UUID]int
	notifications []fakeNotification
	recalcs       []string
	patches       map[uuid.UUID][]shared.EnrichmentPatch
}

func newFakeState() *fakeState {
	return &fakeState{
		items:        make(map[uuid.UUID]shared.ItemSnapshot),
		reservations: make(map[uuid.UUID]*shared.ReservationSnapshot),
		checks:       make(map[uuid.UUID]*shared.ConditionCheckSnapshot),
		reviews:      make(map[uuid.UUID]*shared.ReviewSnapshot),
		responses:    make(map[uuid.UUID]string),
		helpful:      make(map[uuid.UUID]int),
		patches:      make(map[uuid.UUID][]shared.EnrichmentPatch),
	}
}

func (s *fakeState) addItem(ownerID uuid.UUID, pricePerDay int64) uuid.UUID {
	id := uuid.New()
	s.items[id] = shared.ItemSnapshot{ID: id, OwnerID: ownerID, Title: "camera kit", PricePerDay: pricePerDay}
	return id
}

func (s *fakeState) addReservation(itemID, renterID uuid.UUID, status reservation.Status, start, end time.Time) uuid.UUID {
	id := uuid.New()
	s.reservations[id] = &shared.ReservationSnapshot{
		ID:         id,
		ItemID:     itemID,
		RenterID:   renterID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: 200_000,
		Status:     status.String(),
	}
	return id
}

func (s *fakeState) addCheck(reservationID, itemID, uploadedBy uuid.UUID, checkType conditioncheck.CheckType, approved bool) uuid.UUID {
	id := uuid.New()
	s.checks[id] = &shared.ConditionCheckSnapshot{
		ID:            id,
		ReservationID: reservationID,
		ItemID:        itemID,
		UploadedBy:    uploadedBy,
		CheckType:     checkType.String(),
		IsApproved:    approved,
	}
	return id
}

func (s *fakeState) addReview(reviewerID uuid.UUID, revieweeID, itemID, reservationID *uuid.UUID, reviewType review.ReviewType) uuid.UUID {
	id := uuid.New()
	s.reviews[id] = &shared.ReviewSnapshot{
		ID:            id,
		ReviewerID:    reviewerID,
		RevieweeID:    revieweeID,
		ItemID:        itemID,
		ReservationID: reservationID,
		ReviewType:    reviewType.String(),
	}
	return id
}

func (s *fakeState) notificationTopics() []string {
	topics := make([]string, len(s.notifications))
	for i, n := range s.notifications {
		topics[i] = n.Topic
	}
	return topics
}

// ---- unit of work ----

type fakeUoW struct {
	s *fakeState
}

func newFakeUoW(s *fakeState) *fakeUoW { return &fakeUoW{s: s} }

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{s: u.s})
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return &fakeReads{s: u.s} }

type fakeTx struct {
	s *fakeState
}

func (t *fakeTx) Reservations() shared.ReservationRepository       { return &fakeReservationRepo{s: t.s} }
func (t *fakeTx) ConditionChecks() shared.ConditionCheckRepository { return &fakeCheckRepo{s: t.s} }
func (t *fakeTx) Reviews() shared.ReviewRepository                 { return &fakeReviewRepo{s: t.s} }
func (t *fakeTx) RatingStats() shared.RatingStatsRepository        { return &fakeStatsRepo{s: t.s} }
func (t *fakeTx) Notifications() shared.NotificationRepository     { return &fakeNotificationRepo{s: t.s} }
func (t *fakeTx) Reads() shared.CommandReads                       { return &fakeReads{s: t.s} }
func (t *fakeTx) DB() db.DBTX                                      { return nil }

// ---- command reads ----

type fakeReads struct {
	s *fakeState
}

func (r *fakeReads) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return &item, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, ok := r.s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ConditionCheckByID(_ context.Context, id uuid.UUID) (*shared.ConditionCheckSnapshot, error) {
	snap, ok := r.s.checks[id]
	if !ok {
		return nil, infra.WrapRepoErr("condition check not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) ConditionCheckByType(_ context.Context, reservationID uuid.UUID, checkType conditioncheck.CheckType) (*shared.ConditionCheckSnapshot, error) {
	for _, snap := range r.s.checks {
		if snap.ReservationID == reservationID && snap.CheckType == checkType.String() {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, infra.WrapRepoErr("condition check not found", nil, infra.KindNotFound)
}

func (r *fakeReads) ReviewByID(_ context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap, ok := r.s.reviews[id]
	if !ok {
		return nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	cp := *snap
	return &cp, nil
}

// ---- write repositories ----

type fakeReservationRepo struct {
	s *fakeState
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	for _, snap := range r.s.reservations {
		if snap.ItemID != res.ItemID() {
			continue
		}
		status := reservation.Status(snap.Status)
		if status.IsBlocking() && !res.DateRange().End().Before(snap.StartDate) && !snap.EndDate.Before(res.DateRange().Start()) {
			return uuid.Nil, infra.WrapRepoErr("overlapping reservation", nil, infra.KindConflict)
		}
	}
	id := uuid.New()
	r.s.reservations[id] = &shared.ReservationSnapshot{
		ID:         id,
		ItemID:     res.ItemID(),
		RenterID:   res.RenterID(),
		StartDate:  res.DateRange().Start(),
		EndDate:    res.DateRange().End(),
		TotalPrice: res.TotalPrice(),
		Status:     res.Status().String(),
	}
	return id, nil
}

func (r *fakeReservationRepo) HasBlockingOverlap(_ context.Context, _ db.DBTX, itemID uuid.UUID, start, end time.Time) (bool, error) {
	for _, snap := range r.s.reservations {
		if snap.ItemID != itemID {
			continue
		}
		status := reservation.Status(snap.Status)
		if status.IsBlocking() && !end.Before(snap.StartDate) && !snap.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) UpdateStatusFromPending(_ context.Context, _ db.DBTX, id uuid.UUID, status reservation.Status) (int64, error) {
	snap, ok := r.s.reservations[id]
	if !ok || snap.Status != reservation.StatusPending.String() {
		return 0, nil
	}
	snap.Status = status.String()
	return 1, nil
}

func (r *fakeReservationRepo) SetCheckUploaded(_ context.Context, _ db.DBTX, id uuid.UUID, checkType conditioncheck.CheckType, uploaded bool) error {
	snap, ok := r.s.reservations[id]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if checkType == conditioncheck.CheckBeforeRental {
		snap.BeforeCheckCompleted = uploaded
	} else {
		snap.AfterCheckCompleted = uploaded
	}
	return nil
}

func (r *fakeReservationRepo) ApplyCheckApproval(_ context.Context, _ db.DBTX, id uuid.UUID, checkType conditioncheck.CheckType) (int64, error) {
	snap, ok := r.s.reservations[id]
	if !ok {
		return 0, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	status := reservation.Status(snap.Status)
	if checkType == conditioncheck.CheckBeforeRental {
		if status != reservation.StatusPending && status != reservation.StatusActive {
			return 0, nil
		}
		snap.CanStartRental = true
		snap.Status = reservation.StatusActive.String()
		return 1, nil
	}
	if status != reservation.StatusActive {
		return 0, nil
	}
	snap.CanCompleteRental = true
	snap.Status = reservation.StatusCompleted.String()
	return 1, nil
}

type fakeCheckRepo struct {
	s *fakeState
}

func (r *fakeCheckRepo) Create(_ context.Context, _ db.DBTX, check *conditioncheck.ConditionCheck) (uuid.UUID, error) {
	for _, snap := range r.s.checks {
		if snap.ReservationID == check.ReservationID() && snap.CheckType == check.CheckType().String() {
			return uuid.Nil, infra.WrapRepoErr("duplicate check", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.s.checks[id] = &shared.ConditionCheckSnapshot{
		ID:            id,
		ReservationID: check.ReservationID(),
		ItemID:        check.ItemID(),
		UploadedBy:    check.UploadedBy(),
		CheckType:     check.CheckType().String(),
	}
	return id, nil
}

func (r *fakeCheckRepo) ApproveOnce(_ context.Context, _ db.DBTX, id, _ uuid.UUID, _ time.Time) (int64, error) {
	snap, ok := r.s.checks[id]
	if !ok || snap.IsApproved {
		return 0, nil
	}
	snap.IsApproved = true
	return 1, nil
}

func (r *fakeCheckRepo) UpdateEnrichment(_ context.Context, _ db.DBTX, id uuid.UUID, patch shared.EnrichmentPatch) error {
	if _, ok := r.s.checks[id]; !ok {
		return infra.WrapRepoErr("condition check not found", nil, infra.KindNotFound)
	}
	r.s.patches[id] = append(r.s.patches[id], patch)
	return nil
}

func (r *fakeCheckRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.checks[id]; !ok {
		return infra.WrapRepoErr("condition check not found", nil, infra.KindNotFound)
	}
	delete(r.s.checks, id)
	return nil
}

type fakeReviewRepo struct {
	s *fakeState
}

func (r *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	for _, snap := range r.s.reviews {
		if snap.ReviewerID == rev.ReviewerID() &&
			snap.ReviewType == rev.Type().String() &&
			equalUUIDPtr(snap.ReservationID, rev.ReservationID()) {
			return uuid.Nil, infra.WrapRepoErr("duplicate review", nil, infra.KindDuplicateKey)
		}
	}
	id := uuid.New()
	r.s.reviews[id] = &shared.ReviewSnapshot{
		ID:            id,
		ReviewerID:    rev.ReviewerID(),
		RevieweeID:    rev.RevieweeID(),
		ItemID:        rev.ItemID(),
		ReservationID: rev.ReservationID(),
		ReviewType:    rev.Type().String(),
	}
	return id, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, _ db.DBTX, id uuid.UUID, _ int, _ string) error {
	if _, ok := r.s.reviews[id]; !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.reviews[id]; !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	delete(r.s.reviews, id)
	return nil
}

func (r *fakeReviewRepo) SetResponseOnce(_ context.Context, _ db.DBTX, id uuid.UUID, response string, _ time.Time) (int64, error) {
	snap, ok := r.s.reviews[id]
	if !ok {
		return 0, infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	if snap.Response != nil {
		return 0, nil
	}
	snap.Response = &response
	r.s.responses[id] = response
	return 1, nil
}

func (r *fakeReviewRepo) IncrementHelpful(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.s.reviews[id]; !ok {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	r.s.helpful[id]++
	return nil
}

type fakeStatsRepo struct {
	s *fakeState
}

func (r *fakeStatsRepo) RecalcItemRating(_ context.Context, _ db.DBTX, itemID uuid.UUID) error {
	r.s.recalcs = append(r.s.recalcs, "item:"+itemID.String())
	return nil
}

func (r *fakeStatsRepo) RecalcUserRenterRating(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	r.s.recalcs = append(r.s.recalcs, "renter:"+userID.String())
	return nil
}

func (r *fakeStatsRepo) RecalcUserLenderRating(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	r.s.recalcs = append(r.s.recalcs, "lender:"+userID.String())
	return nil
}

type fakeNotificationRepo struct {
	s *fakeState
}

func (r *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, userID uuid.UUID, topic string, _ []byte) error {
	r.s.notifications = append(r.s.notifications, fakeNotification{UserID: userID, Topic: topic})
	return nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (int64, error) {
	return 1, nil
}

// ---- query fakes for read-after-write paths ----

type fakeReservationQueries struct {
	s *fakeState
}

func (q *fakeReservationQueries) GetByID(ctx context.Context, _ uuid.UUID, _ string, id uuid.UUID) (*queries.ReservationView, error) {
	return q.GetByIDSystem(ctx, id)
}

func (q *fakeReservationQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	snap, ok := q.s.reservations[id]
	if !ok {
		return nil, queries.ErrReservationNotFound
	}
	item := q.s.items[snap.ItemID]
	return &queries.ReservationView{
		ID:                   snap.ID,
		ItemID:               snap.ItemID,
		ItemTitle:            item.Title,
		ItemOwnerID:          item.OwnerID,
		RenterID:             snap.RenterID,
		StartDate:            snap.StartDate,
		EndDate:              snap.EndDate,
		TotalPrice:           snap.TotalPrice,
		Status:               snap.Status,
		BeforeCheckCompleted: snap.BeforeCheckCompleted,
		AfterCheckCompleted:  snap.AfterCheckCompleted,
		CanStartRental:       snap.CanStartRental,
		CanCompleteRental:    snap.CanCompleteRental,
	}, nil
}

func (q *fakeReservationQueries) ListByRenter(_ context.Context, _ uuid.UUID, _ *queries.Cursor, _ int) ([]*queries.ReservationListItem, *queries.Cursor, error) {
	return nil, nil, nil
}

type fakeCheckQueries struct {
	s *fakeState
}

func (q *fakeCheckQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.ConditionCheckView, error) {
	snap, ok := q.s.checks[id]
	if !ok {
		return nil, queries.ErrConditionCheckNotFound
	}
	return &queries.ConditionCheckView{
		ID:            snap.ID,
		ReservationID: snap.ReservationID,
		ItemID:        snap.ItemID,
		UploadedBy:    snap.UploadedBy,
		CheckType:     snap.CheckType,
		PhotoURLs:     []string{"https://cdn.example.com/photo-1.jpg"},
		IsApproved:    snap.IsApproved,
	}, nil
}

func (q *fakeCheckQueries) ListByReservation(_ context.Context, reservationID uuid.UUID) ([]*queries.ConditionCheckView, error) {
	var views []*queries.ConditionCheckView
	for _, snap := range q.s.checks {
		if snap.ReservationID == reservationID {
			view, _ := q.GetByID(context.Background(), snap.ID)
			views = append(views, view)
		}
	}
	return views, nil
}

// ---- ports ----

type capturingPublisher struct {
	events []string
}

func (p *capturingPublisher) Publish(_ context.Context, event string, _ any) {
	p.events = append(p.events, event)
}

type stubAnalyzer struct {
	enabled  bool
	analysis *conditioncheck.Analysis
	err      error
}

func (a *stubAnalyzer) Enabled() bool { return a.enabled }

func (a *stubAnalyzer) AnalyzeCondition(_ context.Context, _ []string, _ string) (*conditioncheck.Analysis, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.analysis, nil
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
