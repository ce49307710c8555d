package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"artisanhub/internal/email"
	"artisanhub/internal/models"
	"artisanhub/internal/repositories"
)

// In-memory repository fakes. IDs are assigned sequentially and the
// lookup semantics mirror the real implementations, including their
// sentinel errors.

type fakeIDSource struct {
	next int
}

func (f *fakeIDSource) id(prefix string) string {
	f.next++
	return fmt.Sprintf("%s-%d", prefix, f.next)
}

// ---------------- users ----------------

type fakeUserRepo struct {
	ids           fakeIDSource
	users         map[string]*models.User
	refreshTokens map[string]*models.RefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[string]*models.User),
		refreshTokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByIDs(ids []string) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == emailAddr {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = r.ids.id("user")
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Location = user.Location
	stored.PhoneNumber = user.PhoneNumber
	return nil
}

func (r *fakeUserRepo) UpdateProfilePic(userID, url string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ProfilePic = url
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetToken == token && token != "" {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) SetResetToken(userID, token string, expiresAt time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.ResetToken = token
	user.ResetTokenExp = &expiresAt
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = r.ids.id("rt")
	}
	copied := *token
	r.refreshTokens[token.Token] = &copied
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	stored, ok := r.refreshTokens[token]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	for token, stored := range r.refreshTokens {
		if stored.UserID == userID {
			delete(r.refreshTokens, token)
		}
	}
	return nil
}

// ---------------- artisan profiles ----------------

type fakeArtisanRepo struct {
	ids      fakeIDSource
	profiles map[string]*models.ArtisanProfile
}

func newFakeArtisanRepo() *fakeArtisanRepo {
	return &fakeArtisanRepo{profiles: make(map[string]*models.ArtisanProfile)}
}

func (r *fakeArtisanRepo) Create(profile *models.ArtisanProfile) error {
	if profile.ID == "" {
		profile.ID = r.ids.id("artisan")
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeArtisanRepo) FindByID(id string) (*models.ArtisanProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrArtisanNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeArtisanRepo) FindByUserID(userID string) (*models.ArtisanProfile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, repositories.ErrArtisanNotFound
}

func (r *fakeArtisanRepo) Update(profile *models.ArtisanProfile) error {
	stored, ok := r.profiles[profile.ID]
	if !ok {
		return repositories.ErrArtisanNotFound
	}
	stored.Skills = profile.Skills
	stored.Location = profile.Location
	stored.Latitude = profile.Latitude
	stored.Longitude = profile.Longitude
	return nil
}

func (r *fakeArtisanRepo) SearchByLocation(query string) ([]models.ArtisanProfile, error) {
	lowered := strings.ToLower(query)
	var matches []models.ArtisanProfile
	for _, profile := range r.profiles {
		if strings.Contains(strings.ToLower(profile.Location), lowered) {
			matches = append(matches, *profile)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeArtisanRepo) FindAllWithCoordinates() ([]models.ArtisanProfile, error) {
	var matches []models.ArtisanProfile
	for _, profile := range r.profiles {
		if profile.Latitude != nil && profile.Longitude != nil {
			matches = append(matches, *profile)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// ---------------- messages ----------------

type fakeMessageRepo struct {
	ids      fakeIDSource
	messages []models.Message
	clock    time.Time
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if message.ID == "" {
		message.ID = r.ids.id("msg")
	}
	r.clock = r.clock.Add(time.Second)
	message.CreatedAt = r.clock
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) FindByID(id string) (*models.Message, error) {
	for i := range r.messages {
		if r.messages[i].ID == id {
			copied := r.messages[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrMessageNotFound
}

func (r *fakeMessageRepo) FindUserMessages(userID string) ([]models.Message, error) {
	var matches []models.Message
	for _, m := range r.messages {
		if m.SenderID == userID || m.RecipientID == userID {
			matches = append(matches, m)
		}
	}
	sortByCreatedAt(matches)
	return matches, nil
}

func (r *fakeMessageRepo) FindConversation(userID, partnerID string, after time.Time) ([]models.Message, error) {
	var matches []models.Message
	for _, m := range r.messages {
		between := (m.SenderID == userID && m.RecipientID == partnerID) ||
			(m.SenderID == partnerID && m.RecipientID == userID)
		if !between {
			continue
		}
		if !after.IsZero() && !m.CreatedAt.After(after) {
			continue
		}
		matches = append(matches, m)
	}
	sortByCreatedAt(matches)
	return matches, nil
}

func (r *fakeMessageRepo) FindTopLevelReceived(userID string) ([]models.Message, error) {
	var matches []models.Message
	for _, m := range r.messages {
		if m.RecipientID == userID && m.ParentID == nil {
			matches = append(matches, m)
		}
	}
	sortByCreatedAt(matches)
	return matches, nil
}

func sortByCreatedAt(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}

// ---------------- jobs ----------------

type fakeJobRepo struct {
	ids          fakeIDSource
	jobs         map[string]*models.JobPost
	applications map[string]*models.JobApplication
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:         make(map[string]*models.JobPost),
		applications: make(map[string]*models.JobApplication),
	}
}

func (r *fakeJobRepo) Create(job *models.JobPost) error {
	if job.ID == "" {
		job.ID = r.ids.id("job")
	}
	job.CreatedAt = time.Now()
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.JobPost, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) FindAll(criteria repositories.JobCriteria) ([]models.JobPost, int64, error) {
	var matches []models.JobPost
	for _, job := range r.jobs {
		if criteria.Location != "" &&
			!strings.Contains(strings.ToLower(job.Location), strings.ToLower(criteria.Location)) {
			continue
		}
		if criteria.Status != "" && string(job.Status) != criteria.Status {
			continue
		}
		if criteria.OwnerID != "" && job.OwnerID != criteria.OwnerID {
			continue
		}
		matches = append(matches, *job)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, int64(len(matches)), nil
}

func (r *fakeJobRepo) Update(job *models.JobPost) error {
	stored, ok := r.jobs[job.ID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	stored.Title = job.Title
	stored.Description = job.Description
	stored.Location = job.Location
	stored.Budget = job.Budget
	stored.Latitude = job.Latitude
	stored.Longitude = job.Longitude
	return nil
}

func (r *fakeJobRepo) UpdateStatus(jobID string, status models.JobStatus) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.Status = status
	return nil
}

func (r *fakeJobRepo) Delete(jobID string) error {
	delete(r.jobs, jobID)
	return nil
}

func (r *fakeJobRepo) CreateApplication(application *models.JobApplication) error {
	if application.ID == "" {
		application.ID = r.ids.id("app")
	}
	application.CreatedAt = time.Now()
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeJobRepo) FindApplicationByID(id string) (*models.JobApplication, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (r *fakeJobRepo) FindApplication(artisanID, jobID string) (*models.JobApplication, error) {
	for _, application := range r.applications {
		if application.ArtisanID == artisanID && application.JobID == jobID {
			copied := *application
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeJobRepo) FindApplicationsByJob(jobID string) ([]models.JobApplication, error) {
	var matches []models.JobApplication
	for _, application := range r.applications {
		if application.JobID == jobID {
			matches = append(matches, *application)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeJobRepo) FindApplicationsByArtisan(artisanID string) ([]models.JobApplication, error) {
	var matches []models.JobApplication
	for _, application := range r.applications {
		if application.ArtisanID == artisanID {
			matches = append(matches, *application)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (r *fakeJobRepo) UpdateApplicationStatus(applicationID string, status models.ApplicationStatus) error {
	application, ok := r.applications[applicationID]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Status = status
	return nil
}

// ---------------- favorites ----------------

type fakeFavoriteRepo struct {
	ids       fakeIDSource
	favorites map[string]*models.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]*models.Favorite)}
}

func favoriteKey(userID, artisanID string) string {
	return userID + "/" + artisanID
}

func (r *fakeFavoriteRepo) Create(favorite *models.Favorite) error {
	key := favoriteKey(favorite.UserID, favorite.ArtisanID)
	if _, ok := r.favorites[key]; ok {
		return repositories.ErrFavoriteExists
	}
	if favorite.ID == "" {
		favorite.ID = r.ids.id("fav")
	}
	favorite.CreatedAt = time.Now()
	copied := *favorite
	r.favorites[key] = &copied
	return nil
}

func (r *fakeFavoriteRepo) Delete(userID, artisanID string) error {
	delete(r.favorites, favoriteKey(userID, artisanID))
	return nil
}

func (r *fakeFavoriteRepo) Exists(userID, artisanID string) (bool, error) {
	_, ok := r.favorites[favoriteKey(userID, artisanID)]
	return ok, nil
}

func (r *fakeFavoriteRepo) FindByUser(userID string) ([]models.Favorite, error) {
	var matches []models.Favorite
	for _, favorite := range r.favorites {
		if favorite.UserID == userID {
			matches = append(matches, *favorite)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// ---------------- reviews ----------------

type fakeReviewRepo struct {
	ids     fakeIDSource
	reviews []models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = r.ids.id("review")
	}
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) FindAll() ([]models.Review, error) {
	return append([]models.Review(nil), r.reviews...), nil
}

func (r *fakeReviewRepo) FindByArtisan(artisanID string) ([]models.Review, error) {
	var matches []models.Review
	for _, review := range r.reviews {
		if review.ArtisanID == artisanID {
			matches = append(matches, review)
		}
	}
	return matches, nil
}

func (r *fakeReviewRepo) ExistsByCustomerAndArtisan(customerID, artisanID string) (bool, error) {
	for _, review := range r.reviews {
		if review.CustomerID == customerID && review.ArtisanID == artisanID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) AverageRating(artisanID string) (float64, error) {
	var sum, count int
	for _, review := range r.reviews {
		if review.ArtisanID == artisanID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

// ---------------- notifications ----------------

type fakeNotificationRepo struct {
	ids           fakeIDSource
	notifications []models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = r.ids.id("notif")
	}
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			copied := r.notifications[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) FindUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	var matches []models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if criteria.UnreadOnly && n.IsRead {
			continue
		}
		if criteria.Type != "" && n.Type != criteria.Type {
			continue
		}
		matches = append(matches, n)
	}
	return matches, int64(len(matches)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(notificationID string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == notificationID && !r.notifications[i].IsRead {
			now := time.Now()
			r.notifications[i].IsRead = true
			r.notifications[i].ReadAt = &now
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].IsRead {
			now := time.Now()
			r.notifications[i].IsRead = true
			r.notifications[i].ReadAt = &now
		}
	}
	return nil
}

func (r *fakeNotificationRepo) GetUnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// ---------------- email ----------------

type fakeEmailProvider struct {
	sent []*email.Message
}

func (p *fakeEmailProvider) Send(msg *email.Message) error {
	p.sent = append(p.sent, msg)
	return nil
}

// ---------------- storage ----------------

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(path string) string {
	return "/uploads/" + path
}
