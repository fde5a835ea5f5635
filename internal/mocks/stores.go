package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/openlearn/forum-api/internal/domain"
	"github.com/openlearn/forum-api/internal/store"
)

// StudentStore is an in-memory store.StudentStore.
type StudentStore struct {
	mu       sync.Mutex
	students map[uuid.UUID]*domain.Student
}

var _ store.StudentStore = (*StudentStore)(nil)

// NewStudentStore creates an empty in-memory student store.
func NewStudentStore() *StudentStore {
	return &StudentStore{students: make(map[uuid.UUID]*domain.Student)}
}

// Create implements store.StudentStore.Create, enforcing email uniqueness.
func (s *StudentStore) Create(_ context.Context, student *domain.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.students {
		if existing.Email == student.Email {
			return store.ErrEmailExists
		}
	}

	copied := *student
	s.students[student.ID] = &copied
	return nil
}

// GetByID implements store.StudentStore.GetByID.
func (s *StudentStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return nil, store.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

// GetByEmail implements store.StudentStore.GetByEmail.
func (s *StudentStore) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, student := range s.students {
		if student.Email == email {
			copied := *student
			return &copied, nil
		}
	}
	return nil, store.ErrStudentNotFound
}

// QuestionStore is an in-memory store.QuestionStore.
type QuestionStore struct {
	mu        sync.Mutex
	seq       int
	order     map[uuid.UUID]int
	questions map[uuid.UUID]*domain.Question
}

var _ store.QuestionStore = (*QuestionStore)(nil)

// NewQuestionStore creates an empty in-memory question store.
func NewQuestionStore() *QuestionStore {
	return &QuestionStore{
		order:     make(map[uuid.UUID]int),
		questions: make(map[uuid.UUID]*domain.Question),
	}
}

// Create implements store.QuestionStore.Create, enforcing slug uniqueness.
func (s *QuestionStore) Create(_ context.Context, question *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.questions {
		if existing.Slug == question.Slug {
			return store.ErrSlugExists
		}
	}

	copied := *question
	s.seq++
	s.order[question.ID] = s.seq
	s.questions[question.ID] = &copied
	return nil
}

// GetByID implements store.QuestionStore.GetByID.
func (s *QuestionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := s.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}
	copied := *question
	return &copied, nil
}

// GetBySlug implements store.QuestionStore.GetBySlug.
func (s *QuestionStore) GetBySlug(_ context.Context, slug string) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, question := range s.questions {
		if question.Slug == slug {
			copied := *question
			return &copied, nil
		}
	}
	return nil, store.ErrQuestionNotFound
}

// ListRecent implements store.QuestionStore.ListRecent.
func (s *QuestionStore) ListRecent(_ context.Context, page int) ([]*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*domain.Question, 0, len(s.questions))
	for _, question := range s.questions {
		copied := *question
		all = append(all, &copied)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return s.order[all[i].ID] > s.order[all[j].ID]
	})

	return paginate(all, page), nil
}

// Update implements store.QuestionStore.Update.
func (s *QuestionStore) Update(_ context.Context, question *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[question.ID]; !ok {
		return store.ErrQuestionNotFound
	}
	copied := *question
	s.questions[question.ID] = &copied
	return nil
}

// Delete implements store.QuestionStore.Delete.
func (s *QuestionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return store.ErrQuestionNotFound
	}
	delete(s.questions, id)
	delete(s.order, id)
	return nil
}

// AnswerStore is an in-memory store.AnswerStore. It holds a reference to the
// student store so list operations can hydrate author names the way the
// postgres join does; a missing author fails the whole call.
type AnswerStore struct {
	mu       sync.Mutex
	seq      int
	order    map[uuid.UUID]int
	answers  map[uuid.UUID]*domain.Answer
	students *StudentStore
}

var _ store.AnswerStore = (*AnswerStore)(nil)

// NewAnswerStore creates an empty in-memory answer store backed by the given
// student store for author hydration.
func NewAnswerStore(students *StudentStore) *AnswerStore {
	return &AnswerStore{
		order:    make(map[uuid.UUID]int),
		answers:  make(map[uuid.UUID]*domain.Answer),
		students: students,
	}
}

// Create implements store.AnswerStore.Create.
func (s *AnswerStore) Create(_ context.Context, answer *domain.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *answer
	s.seq++
	s.order[answer.ID] = s.seq
	s.answers[answer.ID] = &copied
	return nil
}

// GetByID implements store.AnswerStore.GetByID.
func (s *AnswerStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	answer, ok := s.answers[id]
	if !ok {
		return nil, store.ErrAnswerNotFound
	}
	copied := *answer
	return &copied, nil
}

// ListByQuestionID implements store.AnswerStore.ListByQuestionID.
func (s *AnswerStore) ListByQuestionID(
	ctx context.Context,
	questionID uuid.UUID,
	page int,
) ([]*domain.AnswerWithAuthor, error) {
	s.mu.Lock()
	matched := make([]*domain.Answer, 0)
	for _, answer := range s.answers {
		if answer.QuestionID == questionID {
			copied := *answer
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return s.order[matched[i].ID] > s.order[matched[j].ID]
	})
	s.mu.Unlock()

	matched = paginate(matched, page)

	result := make([]*domain.AnswerWithAuthor, 0, len(matched))
	for _, answer := range matched {
		author, err := s.students.GetByID(ctx, answer.AuthorID)
		if err != nil {
			return nil, err
		}
		result = append(result, &domain.AnswerWithAuthor{
			Answer:     *answer,
			AuthorName: author.Name,
		})
	}
	return result, nil
}

// Update implements store.AnswerStore.Update.
func (s *AnswerStore) Update(_ context.Context, answer *domain.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.answers[answer.ID]; !ok {
		return store.ErrAnswerNotFound
	}
	copied := *answer
	s.answers[answer.ID] = &copied
	return nil
}

// Delete implements store.AnswerStore.Delete.
func (s *AnswerStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.answers[id]; !ok {
		return store.ErrAnswerNotFound
	}
	delete(s.answers, id)
	delete(s.order, id)
	return nil
}

// CommentStore is an in-memory store.CommentStore with author hydration
// backed by the given student store.
type CommentStore struct {
	mu       sync.Mutex
	seq      int
	order    map[uuid.UUID]int
	comments map[uuid.UUID]*domain.Comment
	students *StudentStore
}

var _ store.CommentStore = (*CommentStore)(nil)

// NewCommentStore creates an empty in-memory comment store.
func NewCommentStore(students *StudentStore) *CommentStore {
	return &CommentStore{
		order:    make(map[uuid.UUID]int),
		comments: make(map[uuid.UUID]*domain.Comment),
		students: students,
	}
}

// Create implements store.CommentStore.Create.
func (s *CommentStore) Create(_ context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *comment
	s.seq++
	s.order[comment.ID] = s.seq
	s.comments[comment.ID] = &copied
	return nil
}

// GetByID implements store.CommentStore.GetByID.
func (s *CommentStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, store.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

// ListByParent implements store.CommentStore.ListByParent.
func (s *CommentStore) ListByParent(
	ctx context.Context,
	parentID uuid.UUID,
	parentType domain.CommentParent,
	page int,
) ([]*domain.CommentWithAuthor, error) {
	s.mu.Lock()
	matched := make([]*domain.Comment, 0)
	for _, comment := range s.comments {
		if comment.ParentID == parentID && comment.ParentType == parentType {
			copied := *comment
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return s.order[matched[i].ID] > s.order[matched[j].ID]
	})
	s.mu.Unlock()

	matched = paginate(matched, page)

	result := make([]*domain.CommentWithAuthor, 0, len(matched))
	for _, comment := range matched {
		author, err := s.students.GetByID(ctx, comment.AuthorID)
		if err != nil {
			return nil, err
		}
		result = append(result, &domain.CommentWithAuthor{
			Comment:    *comment,
			AuthorName: author.Name,
		})
	}
	return result, nil
}

// Delete implements store.CommentStore.Delete.
func (s *CommentStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(s.comments, id)
	delete(s.order, id)
	return nil
}

// DeleteByParent implements store.CommentStore.DeleteByParent.
func (s *CommentStore) DeleteByParent(
	_ context.Context,
	parentID uuid.UUID,
	parentType domain.CommentParent,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, comment := range s.comments {
		if comment.ParentID == parentID && comment.ParentType == parentType {
			delete(s.comments, id)
			delete(s.order, id)
		}
	}
	return nil
}

// AttachmentStore is an in-memory store.AttachmentStore.
type AttachmentStore struct {
	mu          sync.Mutex
	attachments map[uuid.UUID]*domain.Attachment
}

var _ store.AttachmentStore = (*AttachmentStore)(nil)

// NewAttachmentStore creates an empty in-memory attachment store.
func NewAttachmentStore() *AttachmentStore {
	return &AttachmentStore{attachments: make(map[uuid.UUID]*domain.Attachment)}
}

// Create implements store.AttachmentStore.Create.
func (s *AttachmentStore) Create(_ context.Context, attachment *domain.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *attachment
	s.attachments[attachment.ID] = &copied
	return nil
}

// GetByID implements store.AttachmentStore.GetByID.
func (s *AttachmentStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attachment, ok := s.attachments[id]
	if !ok {
		return nil, store.ErrAttachmentNotFound
	}
	copied := *attachment
	return &copied, nil
}

// NotificationStore is an in-memory store.NotificationStore. All created
// notifications stay accessible through All for assertions.
type NotificationStore struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]*domain.Notification
	created       []uuid.UUID
}

var _ store.NotificationStore = (*NotificationStore)(nil)

// NewNotificationStore creates an empty in-memory notification store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{notifications: make(map[uuid.UUID]*domain.Notification)}
}

// Create implements store.NotificationStore.Create.
func (s *NotificationStore) Create(_ context.Context, notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *notification
	s.notifications[notification.ID] = &copied
	s.created = append(s.created, notification.ID)
	return nil
}

// GetByID implements store.NotificationStore.GetByID.
func (s *NotificationStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[id]
	if !ok {
		return nil, store.ErrNotificationNotFound
	}
	copied := *notification
	return &copied, nil
}

// Update implements store.NotificationStore.Update.
func (s *NotificationStore) Update(_ context.Context, notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[notification.ID]; !ok {
		return store.ErrNotificationNotFound
	}
	copied := *notification
	s.notifications[notification.ID] = &copied
	return nil
}

// All returns every stored notification in creation order.
func (s *NotificationStore) All() []*domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Notification, 0, len(s.created))
	for _, id := range s.created {
		copied := *s.notifications[id]
		result = append(result, &copied)
	}
	return result
}

// paginate slices one fixed-size page out of an already-ordered list.
func paginate[T any](items []T, page int) []T {
	offset := store.PageOffset(page)
	if offset >= len(items) {
		return []T{}
	}
	end := offset + store.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
