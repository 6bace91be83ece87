package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/daheemang/challenge-platform/backend/internal/models"
	"github.com/daheemang/challenge-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// In-memory store fakes shared by the service tests.

type fakeNoticeRepo struct {
	notices    []models.Notice
	nextID     uint
	createErr  error
	markCalls  int
	lastOffset int
	lastLimit  int
}

func (f *fakeNoticeRepo) CreateNotice(n *models.Notice) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	n.ID = f.nextID
	n.CreatedAt = time.Now()
	f.notices = append(f.notices, *n)
	return nil
}

func (f *fakeNoticeRepo) GetNoticeByID(id uint) (*models.Notice, error) {
	for i := range f.notices {
		if f.notices[i].ID == id {
			n := f.notices[i]
			return &n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNoticeRepo) MarkAsRead(id uint) error {
	f.markCalls++
	for i := range f.notices {
		if f.notices[i].ID == id {
			f.notices[i].IsRead = true
			return nil
		}
	}
	return nil
}

func (f *fakeNoticeRepo) GetByRecipientID(recipientID uint, offset, limit int) ([]models.Notice, int64, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	var matched []models.Notice
	for _, n := range f.notices {
		if n.UserID == recipientID {
			matched = append(matched, n)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeNoticeRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range f.notices {
		if n.UserID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNoticeRepo) forUser(userID uint) []models.Notice {
	var out []models.Notice
	for _, n := range f.notices {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type fakeChallengeRepo struct {
	challenges map[uint]*models.Challenge
	nextID     uint
	lastOrder  string
	deleted    []uint
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[uint]*models.Challenge)}
}

func (f *fakeChallengeRepo) CreateChallenge(ch *models.Challenge) error {
	f.nextID++
	ch.ID = f.nextID
	ch.CreatedAt = time.Now()
	cp := *ch
	f.challenges[ch.ID] = &cp
	return nil
}

func (f *fakeChallengeRepo) GetChallengeByID(id uint) (*models.Challenge, error) {
	ch, ok := f.challenges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeChallengeRepo) UpdateChallenge(ch *models.Challenge) error {
	if _, ok := f.challenges[ch.ID]; !ok {
		return fmt.Errorf("challenge %d does not exist", ch.ID)
	}
	cp := *ch
	f.challenges[ch.ID] = &cp
	return nil
}

func (f *fakeChallengeRepo) DeleteChallenge(id uint) error {
	delete(f.challenges, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeChallengeRepo) ListChallenges(filter repositories.ChallengeFilter, offset, limit int, order string) ([]models.Challenge, int64, error) {
	f.lastOrder = order
	var matched []models.Challenge
	for id := uint(1); id <= f.nextID; id++ {
		ch, ok := f.challenges[id]
		if !ok || ch.IsDelete {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(ch.Title), strings.ToLower(filter.Keyword)) {
			continue
		}
		if filter.Field != "" && ch.Field != filter.Field {
			continue
		}
		if filter.Type != "" && ch.Type != filter.Type {
			continue
		}
		if filter.Status != "" && ch.Status != filter.Status {
			continue
		}
		matched = append(matched, *ch)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeAttendRepo struct {
	attends map[uint]*models.Attend
	nextID  uint
}

func newFakeAttendRepo() *fakeAttendRepo {
	return &fakeAttendRepo{attends: make(map[uint]*models.Attend)}
}

func (f *fakeAttendRepo) CreateAttend(a *models.Attend) error {
	f.nextID++
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	cp := *a
	f.attends[a.ID] = &cp
	return nil
}

func (f *fakeAttendRepo) GetAttendByID(id uint) (*models.Attend, error) {
	a, ok := f.attends[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttendRepo) UpdateAttend(a *models.Attend) error {
	cp := *a
	f.attends[a.ID] = &cp
	return nil
}

func (f *fakeAttendRepo) ListByChallengeID(challengeID uint, offset, limit int) ([]models.Attend, int64, error) {
	var matched []models.Attend
	for id := uint(1); id <= f.nextID; id++ {
		a, ok := f.attends[id]
		if !ok || a.ChallengeID != challengeID || a.IsSave || a.IsDelete {
			continue
		}
		matched = append(matched, *a)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeAttendRepo) CountSubmitted(challengeID uint) (int64, error) {
	var count int64
	for _, a := range f.attends {
		if a.ChallengeID == challengeID && !a.IsSave && !a.IsDelete {
			count++
		}
	}
	return count, nil
}

type fakeLikeRepo struct {
	likes map[string]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]bool)}
}

func likeKey(attendID, userID uint) string {
	return fmt.Sprintf("%d:%d", attendID, userID)
}

func (f *fakeLikeRepo) CreateLike(l *models.AttendLike) error {
	f.likes[likeKey(l.AttendID, l.UserID)] = true
	return nil
}

func (f *fakeLikeRepo) DeleteLike(attendID, userID uint) error {
	key := likeKey(attendID, userID)
	if !f.likes[key] {
		return fmt.Errorf("like not found")
	}
	delete(f.likes, key)
	return nil
}

func (f *fakeLikeRepo) HasUserLiked(attendID, userID uint) (bool, error) {
	return f.likes[likeKey(attendID, userID)], nil
}

func (f *fakeLikeRepo) GetLikesCountByAttendID(attendID uint) (int64, error) {
	var count int64
	for key := range f.likes {
		if strings.HasPrefix(key, fmt.Sprintf("%d:", attendID)) {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users      map[uint]*models.User
	nextID     uint
	lastOffset int
	lastLimit  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (f *fakeUserRepo) CreateUser(u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(u *models.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) ListUsers(offset, limit int) ([]models.User, int64, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	var matched []models.User
	for id := uint(1); id <= f.nextID; id++ {
		if u, ok := f.users[id]; ok && !u.IsDelete {
			matched = append(matched, *u)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

type fakeFeedbackRepo struct {
	feedbacks map[uint]*models.Feedback
	nextID    uint
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{feedbacks: make(map[uint]*models.Feedback)}
}

func (f *fakeFeedbackRepo) CreateFeedback(fb *models.Feedback) error {
	f.nextID++
	fb.ID = f.nextID
	fb.CreatedAt = time.Now()
	cp := *fb
	f.feedbacks[fb.ID] = &cp
	return nil
}

func (f *fakeFeedbackRepo) GetFeedbackByID(id uint) (*models.Feedback, error) {
	fb, ok := f.feedbacks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *fb
	return &cp, nil
}

func (f *fakeFeedbackRepo) GetFeedbacksByAttendID(attendID uint) ([]models.Feedback, error) {
	var out []models.Feedback
	for id := uint(1); id <= f.nextID; id++ {
		if fb, ok := f.feedbacks[id]; ok && fb.AttendID == attendID {
			out = append(out, *fb)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) UpdateFeedback(fb *models.Feedback) error {
	cp := *fb
	f.feedbacks[fb.ID] = &cp
	return nil
}

func (f *fakeFeedbackRepo) DeleteFeedback(id uint) error {
	delete(f.feedbacks, id)
	return nil
}
