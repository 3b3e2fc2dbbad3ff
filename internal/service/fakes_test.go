package service

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/repository"
)

var errStoreDown = errors.New("store down")

type fakeUsers struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]domain.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return domain.User{}, err
	}
	f.nextID++
	user.ID = f.nextID
	user.Password = string(hash)
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (domain.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

type fakeElections struct {
	rows      map[uint]domain.Election
	links     map[uint][]uint
	nextID    uint
	appendErr error
}

func newFakeElections() *fakeElections {
	return &fakeElections{rows: map[uint]domain.Election{}, links: map[uint][]uint{}}
}

func (f *fakeElections) seed(userID uint, name string) domain.Election {
	f.nextID++
	e := domain.Election{ID: f.nextID, UserID: userID, Name: name, Code: name + "-code"}
	f.rows[e.ID] = e

	return e
}

func (f *fakeElections) Create(_ context.Context, e domain.Election) (domain.Election, error) {
	for _, row := range f.rows {
		if row.UserID == e.UserID && row.Name == e.Name {
			return domain.Election{}, repository.ErrElectionNameExists
		}
	}
	f.nextID++
	e.ID = f.nextID
	f.rows[e.ID] = e

	return e, nil
}

func (f *fakeElections) FindByID(_ context.Context, id uint) (domain.Election, error) {
	e, ok := f.rows[id]
	if !ok {
		return domain.Election{}, repository.ErrElectionNotFound
	}
	e.User = &domain.UserSummary{ID: e.UserID}

	return e, nil
}

func (f *fakeElections) FindByOwnerAndName(_ context.Context, userID uint, name string) (domain.Election, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.Name == name {
			return row, nil
		}
	}

	return domain.Election{}, repository.ErrElectionNotFound
}

func (f *fakeElections) Update(_ context.Context, e domain.Election) error {
	row := f.rows[e.ID]
	row.Name, row.StartTime, row.EndTime = e.Name, e.StartTime, e.EndTime
	f.rows[e.ID] = row

	return nil
}

func (f *fakeElections) Delete(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeElections) AppendCategory(ctx context.Context, electionID, categoryID uint) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.links[electionID] = append(f.links[electionID], categoryID)

	return nil
}

func (f *fakeElections) List(_ context.Context, q domain.ElectionQuery) ([]domain.Election, error) {
	var result []domain.Election
	for _, row := range f.rows {
		if row.UserID == q.OwnerID {
			result = append(result, row)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })

	return result, nil
}

func (f *fakeElections) Count(ctx context.Context, q domain.ElectionQuery) (int64, error) {
	rows, _ := f.List(ctx, q)
	return int64(len(rows)), nil
}

type fakeCategories struct {
	rows       map[uint]domain.Category
	candidates map[uint]int64
	elections  *fakeElections
	nextID     uint
	counted    bool
}

func newFakeCategories(elections *fakeElections) *fakeCategories {
	return &fakeCategories{rows: map[uint]domain.Category{}, candidates: map[uint]int64{}, elections: elections}
}

func (f *fakeCategories) seed(electionID uint, name string) domain.Category {
	f.nextID++
	c := domain.Category{ID: f.nextID, ElectionID: electionID, Name: name}
	f.rows[c.ID] = c

	return c
}

func (f *fakeCategories) Create(_ context.Context, c domain.Category) (domain.Category, error) {
	for _, row := range f.rows {
		if row.ElectionID == c.ElectionID && row.Name == c.Name {
			return domain.Category{}, repository.ErrCategoryNameExists
		}
	}
	f.nextID++
	c.ID = f.nextID
	f.rows[c.ID] = c

	return c, nil
}

func (f *fakeCategories) FindByID(ctx context.Context, id uint) (domain.Category, error) {
	c, ok := f.rows[id]
	if !ok {
		return domain.Category{}, repository.ErrCategoryNotFound
	}
	if e, err := f.elections.FindByID(ctx, c.ElectionID); err == nil {
		c.Election = &e
	}

	return c, nil
}

func (f *fakeCategories) FindByElectionAndName(_ context.Context, electionID uint, name string) (domain.Category, error) {
	for _, row := range f.rows {
		if row.ElectionID == electionID && row.Name == name {
			return row, nil
		}
	}

	return domain.Category{}, repository.ErrCategoryNotFound
}

func (f *fakeCategories) ExistsInElection(_ context.Context, categoryID, electionID uint) (bool, error) {
	c, ok := f.rows[categoryID]
	return ok && c.ElectionID == electionID, nil
}

func (f *fakeCategories) Update(_ context.Context, c domain.Category) error {
	row := f.rows[c.ID]
	row.Name, row.ElectionID = c.Name, c.ElectionID
	f.rows[c.ID] = row

	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeCategories) ListByElection(_ context.Context, scope domain.ElectionScope) ([]domain.Category, error) {
	var result []domain.Category
	for _, row := range f.rows {
		if row.ElectionID == scope.ElectionID {
			result = append(result, row)
		}
	}

	return result, nil
}

func (f *fakeCategories) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	f.counted = true
	rows, _ := f.ListByElection(ctx, domain.ElectionScope{ElectionID: electionID})

	return int64(len(rows)), nil
}

func (f *fakeCategories) CountCandidates(_ context.Context, categoryID uint) (int64, error) {
	return f.candidates[categoryID], nil
}

type fakeCandidates struct {
	rows      map[uint]domain.Candidate
	links     map[uint][]uint
	elections *fakeElections
	nextID    uint
}

func newFakeCandidates(elections *fakeElections) *fakeCandidates {
	return &fakeCandidates{rows: map[uint]domain.Candidate{}, links: map[uint][]uint{}, elections: elections}
}

func (f *fakeCandidates) Create(_ context.Context, c domain.Candidate, categoryIDs []uint) (domain.Candidate, error) {
	f.nextID++
	c.ID = f.nextID
	f.rows[c.ID] = c
	f.links[c.ID] = categoryIDs

	return c, nil
}

func (f *fakeCandidates) UpdatePhoto(_ context.Context, id uint, photoURL string) error {
	row, ok := f.rows[id]
	if !ok {
		return repository.ErrCandidateNotFound
	}
	row.PhotoURL = photoURL
	f.rows[id] = row

	return nil
}

func (f *fakeCandidates) FindByID(ctx context.Context, id uint) (domain.Candidate, error) {
	c, ok := f.rows[id]
	if !ok {
		return domain.Candidate{}, repository.ErrCandidateNotFound
	}
	if e, err := f.elections.FindByID(ctx, c.ElectionID); err == nil {
		c.Election = &e
	}

	return c, nil
}

func (f *fakeCandidates) ListByElection(_ context.Context, scope domain.ElectionScope) ([]domain.Candidate, error) {
	var result []domain.Candidate
	for _, row := range f.rows {
		if row.ElectionID == scope.ElectionID {
			result = append(result, row)
		}
	}

	return result, nil
}

func (f *fakeCandidates) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	rows, _ := f.ListByElection(ctx, domain.ElectionScope{ElectionID: electionID})
	return int64(len(rows)), nil
}

type fakeVoters struct {
	rows      map[uint]domain.Voter
	elections *fakeElections
	nextID    uint
}

func newFakeVoters(elections *fakeElections) *fakeVoters {
	return &fakeVoters{rows: map[uint]domain.Voter{}, elections: elections}
}

func (f *fakeVoters) Create(_ context.Context, v domain.Voter) (domain.Voter, error) {
	for _, row := range f.rows {
		if row.ElectionID == v.ElectionID && row.Name == v.Name {
			return domain.Voter{}, repository.ErrVoterNameExists
		}
	}
	f.nextID++
	v.ID = f.nextID
	f.rows[v.ID] = v

	return v, nil
}

func (f *fakeVoters) FindByID(ctx context.Context, id uint) (domain.Voter, error) {
	v, ok := f.rows[id]
	if !ok {
		return domain.Voter{}, repository.ErrVoterNotFound
	}
	if e, err := f.elections.FindByID(ctx, v.ElectionID); err == nil {
		v.Election = &e
	}

	return v, nil
}

func (f *fakeVoters) FindByElectionAndName(_ context.Context, electionID uint, name string) (domain.Voter, error) {
	for _, row := range f.rows {
		if row.ElectionID == electionID && row.Name == name {
			return row, nil
		}
	}

	return domain.Voter{}, repository.ErrVoterNotFound
}

func (f *fakeVoters) Update(_ context.Context, v domain.Voter) error {
	row := f.rows[v.ID]
	row.Name, row.Email, row.ElectionID = v.Name, v.Email, v.ElectionID
	f.rows[v.ID] = row

	return nil
}

func (f *fakeVoters) Delete(_ context.Context, id uint) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeVoters) ListByElection(_ context.Context, scope domain.ElectionScope) ([]domain.Voter, error) {
	var result []domain.Voter
	for _, row := range f.rows {
		if row.ElectionID == scope.ElectionID {
			result = append(result, row)
		}
	}

	return result, nil
}

func (f *fakeVoters) CountByElection(ctx context.Context, electionID uint) (int64, error) {
	rows, _ := f.ListByElection(ctx, domain.ElectionScope{ElectionID: electionID})
	return int64(len(rows)), nil
}

type fakePhotos struct {
	names []string
	err   error
}

func (f *fakePhotos) Relocate(_ context.Context, _ domain.Upload, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.names = append(f.names, name)

	return "stored/" + name, nil
}
