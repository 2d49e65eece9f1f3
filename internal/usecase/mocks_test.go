package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/bikya/bikya-backend/internal/domain/contract"
	"github.com/bikya/bikya-backend/internal/domain/entity"
)

// Hand-rolled fakes for the repository and service contracts. Each fake
// keeps its state in maps and exposes error fields to force failures.

type stubLogger struct{}

func (stubLogger) Debugf(format string, args ...interface{}) {}
func (stubLogger) Infof(format string, args ...interface{})  {}
func (stubLogger) Warnf(format string, args ...interface{})  {}
func (stubLogger) Errorf(format string, args ...interface{}) {}
func (stubLogger) Fatalf(format string, args ...interface{}) {}

type stubConfig struct {
	paymentSecret string
	currency      string
}

func (c stubConfig) GetAppBaseURL() string                      { return "http://localhost:8080" }
func (c stubConfig) GetSendActivationEmail() bool               { return false }
func (c stubConfig) GetRefreshTokenExpiry() time.Duration       { return 24 * time.Hour }
func (c stubConfig) GetPasswordResetTokenExpiry() time.Duration { return time.Hour }
func (c stubConfig) GetPaymentKeySecret() string                { return c.paymentSecret }
func (c stubConfig) GetPaymentCurrency() string {
	if c.currency == "" {
		return "INR"
	}
	return c.currency
}

type stubUUID struct {
	next string
}

func (g stubUUID) NewUUID() string { return g.next }

type fakeMailService struct {
	SendErr error
	Sent    []string // recipient addresses, in order
}

func (m *fakeMailService) SendEmail(ctx context.Context, to, subject, body string) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, to)
	return nil
}

type fakeFileStorage struct {
	UploadErr error
	Uploaded  int
}

func (s *fakeFileStorage) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	s.Uploaded++
	return "https://cdn.example.com/" + folder + "/" + file.Filename, nil
}

func (s *fakeFileStorage) DeleteImage(ctx context.Context, url string) error { return nil }

type fakeBikeRepo struct {
	Bikes      map[string]*entity.Bike
	ReserveErr error
	Released   []string
}

func newFakeBikeRepo(bikes ...*entity.Bike) *fakeBikeRepo {
	repo := &fakeBikeRepo{Bikes: make(map[string]*entity.Bike)}
	for _, b := range bikes {
		repo.Bikes[b.ID] = b
	}
	return repo
}

func (r *fakeBikeRepo) CreateBike(ctx context.Context, bike *entity.Bike) error {
	r.Bikes[bike.ID] = bike
	return nil
}

func (r *fakeBikeRepo) GetBikeByID(ctx context.Context, id string) (*entity.Bike, error) {
	bike, ok := r.Bikes[id]
	if !ok {
		return nil, ErrBikeNotFound
	}
	return bike, nil
}

func (r *fakeBikeRepo) GetBikes(ctx context.Context, opts *contract.BikeFilterOptions) ([]*entity.Bike, error) {
	var out []*entity.Bike
	for _, b := range r.Bikes {
		if opts != nil && opts.Category != nil && string(b.Category) != *opts.Category {
			continue
		}
		if opts != nil && opts.MaxPricePerHour != nil && b.PricePerHour > *opts.MaxPricePerHour {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBikeRepo) SearchNear(ctx context.Context, lng, lat, radiusMeters float64, onlyAvailable bool) ([]*entity.Bike, error) {
	return r.GetBikes(ctx, nil)
}

func (r *fakeBikeRepo) UpdateBike(ctx context.Context, id string, updates map[string]interface{}) (*entity.Bike, error) {
	bike, ok := r.Bikes[id]
	if !ok {
		return nil, ErrBikeNotFound
	}
	return bike, nil
}

func (r *fakeBikeRepo) DeleteBike(ctx context.Context, id string) error {
	delete(r.Bikes, id)
	return nil
}

func (r *fakeBikeRepo) ReserveBike(ctx context.Context, id string) error {
	if r.ReserveErr != nil {
		return r.ReserveErr
	}
	bike, ok := r.Bikes[id]
	if !ok {
		return ErrBikeNotFound
	}
	if !bike.Availability {
		return ErrBikeUnavailable
	}
	bike.Availability = false
	return nil
}

func (r *fakeBikeRepo) ReleaseBike(ctx context.Context, id string) error {
	r.Released = append(r.Released, id)
	if bike, ok := r.Bikes[id]; ok {
		bike.Availability = true
	}
	return nil
}

type fakeBookingRepo struct {
	Bookings  map[string]*entity.Booking
	CreateErr error

	StatusUpdates []entity.BookingStatus
	MarkedActive  []string // "bookingID:paymentID"
	OrderIDsSet   []string
	Reviews       []*entity.BookingReview
}

func newFakeBookingRepo(bookings ...*entity.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{Bookings: make(map[string]*entity.Booking)}
	for _, b := range bookings {
		repo.Bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.Bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	booking, ok := r.Bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) GetBookingByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	for _, b := range r.Bookings {
		if b.OrderID != nil && *b.OrderID == orderID {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *fakeBookingRepo) GetBookings(ctx context.Context, opts *contract.BookingFilterOptions) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range r.Bookings {
		if opts != nil && opts.UserID != nil && b.UserID != *opts.UserID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus, cancelReason *string) error {
	booking, ok := r.Bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.Status = status
	booking.CancelReason = cancelReason
	r.StatusUpdates = append(r.StatusUpdates, status)
	return nil
}

func (r *fakeBookingRepo) MarkActive(ctx context.Context, id string, paymentID string) error {
	booking, ok := r.Bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.Status = entity.BookingStatusActive
	booking.PaymentID = &paymentID
	r.MarkedActive = append(r.MarkedActive, id+":"+paymentID)
	return nil
}

func (r *fakeBookingRepo) SetOrderID(ctx context.Context, id string, orderID string) error {
	booking, ok := r.Bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.OrderID = &orderID
	r.OrderIDsSet = append(r.OrderIDsSet, orderID)
	return nil
}

func (r *fakeBookingRepo) SetReview(ctx context.Context, id string, review *entity.BookingReview) error {
	booking, ok := r.Bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.Review = review
	r.Reviews = append(r.Reviews, review)
	return nil
}

type fakeDocumentRepo struct {
	Docs        map[string]*entity.Document
	ApprovedFor map[string]bool
	ApprovedErr error

	ReviewedIDs []string
}

func newFakeDocumentRepo(docs ...*entity.Document) *fakeDocumentRepo {
	repo := &fakeDocumentRepo{
		Docs:        make(map[string]*entity.Document),
		ApprovedFor: make(map[string]bool),
	}
	for _, d := range docs {
		repo.Docs[d.ID] = d
	}
	return repo
}

func (r *fakeDocumentRepo) CreateDocument(ctx context.Context, doc *entity.Document) error {
	r.Docs[doc.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) GetDocumentByID(ctx context.Context, id string) (*entity.Document, error) {
	doc, ok := r.Docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

func (r *fakeDocumentRepo) GetDocumentsByUser(ctx context.Context, userID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.Docs {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetPendingDocuments(ctx context.Context, limit int64) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.Docs {
		if d.Status == entity.DocumentStatusPending {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) SetReview(ctx context.Context, id string, status entity.DocumentStatus, reason *string, reviewerID string) error {
	doc, ok := r.Docs[id]
	if !ok {
		return ErrDocumentNotFound
	}
	now := time.Now()
	doc.Status = status
	doc.RejectionReason = reason
	doc.ReviewedBy = &reviewerID
	doc.ReviewedAt = &now
	r.ReviewedIDs = append(r.ReviewedIDs, id)
	return nil
}

func (r *fakeDocumentRepo) HasApprovedDocument(ctx context.Context, userID string) (bool, error) {
	if r.ApprovedErr != nil {
		return false, r.ApprovedErr
	}
	return r.ApprovedFor[userID], nil
}

type fakeUserRepo struct {
	Users     map[string]*entity.User
	UpdateErr error

	IDProofFlags map[string]bool
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		Users:        make(map[string]*entity.User),
		IDProofFlags: make(map[string]bool),
	}
	for _, u := range users {
		repo.Users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.Users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.Users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByRole(ctx context.Context, role entity.UserRole) (*entity.User, error) {
	for _, u := range r.Users {
		if u.Role == role {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if r.UpdateErr != nil {
		return nil, r.UpdateErr
	}
	r.Users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	if _, ok := r.Users[id]; !ok {
		return ErrUserNotFound
	}
	return nil
}

func (r *fakeUserRepo) SetIDProofApproved(ctx context.Context, id string, approved bool) error {
	user, ok := r.Users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.IDProofApproved = approved
	r.IDProofFlags[id] = approved
	return nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	delete(r.Users, id)
	return nil
}

type fakeTokenRepo struct {
	Tokens map[string]*entity.Token // keyed by user id

	Updated []string // token ids passed to UpdateToken
	Revoked []string
}

func newFakeTokenRepo(tokens ...*entity.Token) *fakeTokenRepo {
	repo := &fakeTokenRepo{Tokens: make(map[string]*entity.Token)}
	for _, tok := range tokens {
		repo.Tokens[tok.UserID] = tok
	}
	return repo
}

func (r *fakeTokenRepo) CreateToken(ctx context.Context, token *entity.Token) error {
	r.Tokens[token.UserID] = token
	return nil
}

func (r *fakeTokenRepo) GetTokenByID(ctx context.Context, id string) (*entity.Token, error) {
	for _, tok := range r.Tokens {
		if tok.ID == id {
			return tok, nil
		}
	}
	return nil, ErrTokenNotFound
}

func (r *fakeTokenRepo) GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error) {
	tok, ok := r.Tokens[userID]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return tok, nil
}

func (r *fakeTokenRepo) GetTokenByVerifier(ctx context.Context, verifier string) (*entity.Token, error) {
	for _, tok := range r.Tokens {
		if tok.Verifier == verifier {
			return tok, nil
		}
	}
	return nil, ErrTokenNotFound
}

func (r *fakeTokenRepo) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	r.Updated = append(r.Updated, tokenID)
	return nil
}

func (r *fakeTokenRepo) RevokeToken(ctx context.Context, id string) error {
	r.Revoked = append(r.Revoked, id)
	return nil
}

func (r *fakeTokenRepo) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	return nil
}

// fakeHasher treats every hash comparison as a match unless told otherwise.
type fakeHasher struct {
	Mismatch bool
}

func (h *fakeHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }

func (h *fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if h.Mismatch {
		return errBoom
	}
	return nil
}

func (h *fakeHasher) HashString(s string) string { return "hashed:" + s }

func (h *fakeHasher) CheckHash(s, hash string) bool { return !h.Mismatch }

type fakeJWTService struct {
	Claims *entity.Claims

	AccessRoles  []entity.UserRole
	RefreshRoles []entity.UserRole
}

func (j *fakeJWTService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	j.AccessRoles = append(j.AccessRoles, role)
	return "access-" + userID, nil
}

func (j *fakeJWTService) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	j.RefreshRoles = append(j.RefreshRoles, role)
	return "refresh-" + userID, nil
}

func (j *fakeJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	return j.Claims, nil
}

func (j *fakeJWTService) ParseRefreshToken(token string) (*entity.Claims, error) {
	return j.Claims, nil
}

type fakeGateway struct {
	CreateErr error
	FetchErr  error

	OrdersCreated []int64 // amounts, in minor units
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (*entity.PaymentOrder, error) {
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}
	g.OrdersCreated = append(g.OrdersCreated, amount)
	return &entity.PaymentOrder{
		OrderID:   "order_" + receipt,
		Amount:    amount,
		Currency:  currency,
		Receipt:   receipt,
		Status:    "created",
		CreatedAt: time.Now(),
	}, nil
}

func (g *fakeGateway) FetchPayment(ctx context.Context, paymentID string) (map[string]interface{}, error) {
	if g.FetchErr != nil {
		return nil, g.FetchErr
	}
	return map[string]interface{}{"id": paymentID, "status": "captured"}, nil
}

var errBoom = errors.New("boom")
