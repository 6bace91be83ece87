package services

import (
	"testing"
	"time"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChallengeFixture() (*ChallengeService, *fakeChallengeRepo, *fakeNoticeRepo) {
	challengeRepo := newFakeChallengeRepo()
	noticeRepo := &fakeNoticeRepo{}
	svc := NewChallengeService(challengeRepo, NewNoticeService(noticeRepo))
	return svc, challengeRepo, noticeRepo
}

func validCreateRequest() models.CreateChallengeRequest {
	return models.CreateChallengeRequest{
		Title:    "React 챌린지",
		Source:   "기술 블로그 번역",
		Field:    string(models.FieldTranslation),
		Type:     string(models.TypeGroup),
		Deadline: time.Now().AddDate(0, 1, 0),
		Capacity: "50",
		Content:  "React 공식 문서를 함께 번역합니다.",
	}
}

func TestCreateChallengeStartsPending(t *testing.T) {
	svc, repo, noticeRepo := newChallengeFixture()

	challenge, err := svc.Create(validCreateRequest(), 123)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, challenge.Status)
	assert.False(t, challenge.IsDelete)
	assert.False(t, challenge.IsClose)
	assert.False(t, challenge.IsApprove)
	assert.False(t, challenge.IsReject)
	assert.Equal(t, uint(123), challenge.UserID)
	assert.NotZero(t, challenge.ID)
	assert.Len(t, repo.challenges, 1)

	// Creation is not a moderation transition; no notice goes out.
	assert.Empty(t, noticeRepo.notices)
}

func TestCreateChallengeValidation(t *testing.T) {
	svc, _, _ := newChallengeFixture()

	cases := []struct {
		name   string
		mutate func(*models.CreateChallengeRequest)
	}{
		{"non-numeric capacity", func(r *models.CreateChallengeRequest) { r.Capacity = "많이" }},
		{"zero capacity", func(r *models.CreateChallengeRequest) { r.Capacity = "0" }},
		{"negative capacity", func(r *models.CreateChallengeRequest) { r.Capacity = "-5" }},
		{"unknown field", func(r *models.CreateChallengeRequest) { r.Field = "요리" }},
		{"unknown type", func(r *models.CreateChallengeRequest) { r.Type = "단체전" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.Create(req, 1)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateChallengeNotifiesOwner(t *testing.T) {
	svc, _, noticeRepo := newChallengeFixture()
	created, err := svc.Create(validCreateRequest(), 123)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, models.UpdateChallengeRequest{Title: "Vue 챌린지"})
	require.NoError(t, err)
	assert.Equal(t, "Vue 챌린지", updated.Title)

	owned := noticeRepo.forUser(123)
	require.Len(t, owned, 1)
	assert.Equal(t, models.CategoryChallenge, owned[0].Category)
	assert.Contains(t, owned[0].Content, "수정")
	assert.Contains(t, owned[0].Content, "Vue 챌린지")
}

func TestUpdateChallengeNotFound(t *testing.T) {
	svc, _, _ := newChallengeFixture()

	_, err := svc.Update(99, models.UpdateChallengeRequest{Title: "없는 챌린지"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelChallenge(t *testing.T) {
	svc, repo, noticeRepo := newChallengeFixture()
	created, err := svc.Create(validCreateRequest(), 123)
	require.NoError(t, err)

	cancelled, err := svc.Cancel(created.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.IsClose)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, models.StatusCancelled, repo.challenges[created.ID].Status)

	owned := noticeRepo.forUser(123)
	require.Len(t, owned, 1)
	assert.Contains(t, owned[0].Content, "취소")
}

func TestSoftDeleteChallenge(t *testing.T) {
	svc, repo, noticeRepo := newChallengeFixture()
	created, err := svc.Create(validCreateRequest(), 123)
	require.NoError(t, err)

	deleted, err := svc.SoftDelete(created.ID, "더 이상 진행하지 않습니다")
	require.NoError(t, err)
	assert.True(t, deleted.IsDelete)
	assert.Equal(t, models.StatusDeleted, deleted.Status)
	require.NotNil(t, deleted.DeleteReason)
	assert.Equal(t, "더 이상 진행하지 않습니다", *deleted.DeleteReason)

	// Soft delete keeps the row.
	assert.Contains(t, repo.challenges, created.ID)

	owned := noticeRepo.forUser(123)
	require.Len(t, owned, 1)
	assert.Contains(t, owned[0].Content, "삭제")
	assert.Contains(t, owned[0].Content, "더 이상 진행하지 않습니다")
}

func TestHardDeleteChallenge(t *testing.T) {
	svc, repo, noticeRepo := newChallengeFixture()
	created, err := svc.Create(validCreateRequest(), 123)
	require.NoError(t, err)

	require.NoError(t, svc.HardDelete(created.ID))

	assert.NotContains(t, repo.challenges, created.ID)
	assert.Equal(t, []uint{created.ID}, repo.deleted)

	owned := noticeRepo.forUser(123)
	require.Len(t, owned, 1)
	assert.Contains(t, owned[0].Content, "완전 삭제")
}

func TestHardDeleteNotFound(t *testing.T) {
	svc, _, _ := newChallengeFixture()
	assert.ErrorIs(t, svc.HardDelete(404), ErrNotFound)
}

func TestNoticeFailureDoesNotUndoMutation(t *testing.T) {
	challengeRepo := newFakeChallengeRepo()
	noticeRepo := &fakeNoticeRepo{createErr: assert.AnError}
	svc := NewChallengeService(challengeRepo, NewNoticeService(noticeRepo))

	created, err := svc.Create(validCreateRequest(), 1)
	require.NoError(t, err)

	// The cancel itself succeeds even though its notice cannot be stored.
	cancelled, err := svc.Cancel(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)
	assert.Equal(t, models.StatusCancelled, challengeRepo.challenges[created.ID].Status)
}

func TestListChallengesExcludesSoftDeleted(t *testing.T) {
	svc, _, _ := newChallengeFixture()
	first, err := svc.Create(validCreateRequest(), 1)
	require.NoError(t, err)
	second := validCreateRequest()
	second.Title = "Go 챌린지"
	_, err = svc.Create(second, 1)
	require.NoError(t, err)

	_, err = svc.SoftDelete(first.ID, "중단")
	require.NoError(t, err)

	challenges, pageInfo, err := svc.List(ChallengeListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "Go 챌린지", challenges[0].Title)
	assert.Equal(t, int64(1), pageInfo.TotalCount)
	assert.Equal(t, 1, pageInfo.TotalPages)
}

func TestListChallengesFilters(t *testing.T) {
	svc, _, _ := newChallengeFixture()
	req := validCreateRequest()
	_, err := svc.Create(req, 1)
	require.NoError(t, err)

	other := validCreateRequest()
	other.Title = "영문법 스터디"
	other.Field = string(models.FieldStudy)
	_, err = svc.Create(other, 1)
	require.NoError(t, err)

	challenges, _, err := svc.List(ChallengeListQuery{Keyword: "react", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "React 챌린지", challenges[0].Title)

	challenges, _, err = svc.List(ChallengeListQuery{Field: string(models.FieldStudy), Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "영문법 스터디", challenges[0].Title)

	_, _, err = svc.List(ChallengeListQuery{Field: "요리", Page: 1, PageSize: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
