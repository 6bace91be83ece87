package services

import (
	"testing"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackFixture() (*FeedbackService, *AttendService, *ChallengeService, *fakeNoticeRepo) {
	challengeRepo := newFakeChallengeRepo()
	attendRepo := newFakeAttendRepo()
	likeRepo := newFakeLikeRepo()
	feedbackRepo := newFakeFeedbackRepo()
	noticeRepo := &fakeNoticeRepo{}
	noticeSvc := NewNoticeService(noticeRepo)
	challengeSvc := NewChallengeService(challengeRepo, noticeSvc)
	attendSvc := NewAttendService(attendRepo, challengeRepo, likeRepo, noticeSvc)
	feedbackSvc := NewFeedbackService(feedbackRepo, attendRepo, challengeRepo, noticeSvc)
	return feedbackSvc, attendSvc, challengeSvc, noticeRepo
}

func TestCreateFeedbackNotifiesAttendAuthor(t *testing.T) {
	feedbacks, attends, challenges, noticeRepo := newFeedbackFixture()
	challenge, err := challenges.Create(validCreateRequest(), 1)
	require.NoError(t, err)
	attend, err := attends.Submit(challenge.ID, 7, "제출본", false)
	require.NoError(t, err)

	feedback, err := feedbacks.Create(attend.ID, 9, "문장 연결이 자연스럽습니다")
	require.NoError(t, err)
	assert.Equal(t, attend.ID, feedback.AttendID)
	assert.Equal(t, uint(9), feedback.UserID)

	authorNotices := noticeRepo.forUser(7)
	// One for the submission going to the owner is on user 1; the author
	// gets exactly the feedback notice.
	require.Len(t, authorNotices, 1)
	assert.Equal(t, models.CategoryFeedback, authorNotices[0].Category)
	assert.Contains(t, authorNotices[0].Content, "피드백")
	require.NotNil(t, authorNotices[0].AttendID)
	assert.Equal(t, attend.ID, *authorNotices[0].AttendID)
}

func TestFeedbackNoticeFallsBackWhenChallengeGone(t *testing.T) {
	feedbacks, attends, challenges, noticeRepo := newFeedbackFixture()
	challenge, err := challenges.Create(validCreateRequest(), 1)
	require.NoError(t, err)
	attend, err := attends.Submit(challenge.ID, 7, "제출본", false)
	require.NoError(t, err)

	require.NoError(t, challenges.HardDelete(challenge.ID))
	_, err = feedbacks.Create(attend.ID, 9, "내용")
	require.NoError(t, err)

	authorNotices := noticeRepo.forUser(7)
	require.Len(t, authorNotices, 1)
	assert.NotContains(t, authorNotices[0].Content, "''")
	assert.Contains(t, authorNotices[0].Content, "참여한 챌린지")
}

func TestCreateFeedbackUnknownAttend(t *testing.T) {
	feedbacks, _, _, _ := newFeedbackFixture()
	_, err := feedbacks.Create(404, 9, "내용")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAndDeleteFeedback(t *testing.T) {
	feedbacks, attends, challenges, _ := newFeedbackFixture()
	challenge, err := challenges.Create(validCreateRequest(), 1)
	require.NoError(t, err)
	attend, err := attends.Submit(challenge.ID, 7, "제출본", false)
	require.NoError(t, err)
	created, err := feedbacks.Create(attend.ID, 9, "처음 내용")
	require.NoError(t, err)

	updated, err := feedbacks.Update(created.ID, "고친 내용")
	require.NoError(t, err)
	assert.Equal(t, "고친 내용", updated.Content)

	require.NoError(t, feedbacks.Delete(created.ID))
	_, err = feedbacks.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, feedbacks.Delete(created.ID), ErrNotFound)
}

func TestListFeedbackByAttend(t *testing.T) {
	feedbacks, attends, challenges, _ := newFeedbackFixture()
	challenge, err := challenges.Create(validCreateRequest(), 1)
	require.NoError(t, err)
	attend, err := attends.Submit(challenge.ID, 7, "제출본", false)
	require.NoError(t, err)

	_, err = feedbacks.Create(attend.ID, 9, "첫 번째")
	require.NoError(t, err)
	_, err = feedbacks.Create(attend.ID, 10, "두 번째")
	require.NoError(t, err)

	list, err := feedbacks.ListByAttend(attend.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "첫 번째", list[0].Content)

	_, err = feedbacks.ListByAttend(404)
	assert.ErrorIs(t, err, ErrNotFound)
}
