package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/globals"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/models"
	"github.com/abdurrahmanmahmud5981/SoleAmhere/store"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeStore struct {
	jobs       map[string]*models.Job
	lastSearch models.JobSearch
}

func newFakeStore() *fakeStore {
	return &fakeStore{jobs: map[string]*models.Job{}}
}

func (f *fakeStore) Create(_ context.Context, job *models.Job) (*models.Job, error) {
	job.ID = primitive.NewObjectID()
	f.jobs[job.ID.Hex()] = job
	return job, nil
}

func (f *fakeStore) All(_ context.Context) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeStore) ByOwner(_ context.Context, email string) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range f.jobs {
		if j.Buyer.Email == email {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeStore) ByID(_ context.Context, id string) (*models.Job, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, store.ErrInvalidID
	}
	job, ok := f.jobs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrInvalidID
	}
	if _, ok := f.jobs[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeStore) Upsert(_ context.Context, id string, job *models.Job) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}
	if existing, ok := f.jobs[id]; ok {
		count := existing.BidCount
		cp := *job
		cp.ID = oid
		cp.BidCount = count
		f.jobs[id] = &cp
		return nil
	}
	cp := *job
	cp.ID = oid
	cp.BidCount = 0
	f.jobs[id] = &cp
	return nil
}

func (f *fakeStore) Search(_ context.Context, q models.JobSearch) ([]models.Job, error) {
	f.lastSearch = q
	return f.All(context.Background())
}

func (f *fakeStore) IncBidCount(_ context.Context, id string, n int) error {
	job, ok := f.jobs[id]
	if !ok {
		return store.ErrNotFound
	}
	job.BidCount += int64(n)
	return nil
}

func newTestHandler(s *fakeStore) *Handler {
	return NewHandler(s, nil, zap.NewNop())
}

const jobBody = `{
	"title": "Build a landing page",
	"category": "Web Development",
	"description": "Single page, responsive.",
	"deadline": "2024-03-01",
	"budget": 500,
	"buyer": {"name": "Bea", "email": "b@x.com"},
	"bid_count": 99
}`

func TestCreateJobIgnoresClientBidCount(t *testing.T) {
	s := newFakeStore()
	h := newTestHandler(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-job", strings.NewReader(jobBody))
	h.CreateJob(rec, req, nil)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var created models.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.BidCount != 0 {
		t.Errorf("bid_count = %d, want 0 regardless of the request document", created.BidCount)
	}
	if created.Title != "Build a landing page" {
		t.Errorf("title = %q", created.Title)
	}
}

func TestCreateJobRejectsInvalidDocument(t *testing.T) {
	h := newTestHandler(newFakeStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-job", strings.NewReader(`{"title":"no buyer"}`))
	h.CreateJob(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetJobNotFound(t *testing.T) {
	h := newTestHandler(newFakeStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/job/x", nil)

	h.GetJob(rec, req, httprouter.Params{{Key: "id", Value: primitive.NewObjectID().Hex()}})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing job: status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.GetJob(rec, req, httprouter.Params{{Key: "id", Value: "not-a-hex-id"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want 400", rec.Code)
	}
}

func seedJob(s *fakeStore, buyerEmail string) string {
	id := primitive.NewObjectID()
	s.jobs[id.Hex()] = &models.Job{
		ID:       id,
		Title:    "Build a landing page",
		Category: "Web Development",
		Deadline: "2024-03-01",
		Buyer:    models.Buyer{Email: buyerEmail},
		BidCount: 3,
	}
	return id.Hex()
}

func TestDeleteJobOwnership(t *testing.T) {
	s := newFakeStore()
	id := seedJob(s, "b@x.com")
	h := newTestHandler(s)

	del := func(email string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/job/"+id, nil)
		req = req.WithContext(context.WithValue(req.Context(), globals.EmailKey, email))
		h.DeleteJob(rec, req, httprouter.Params{{Key: "id", Value: id}})
		return rec
	}

	if rec := del("intruder@x.com"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-owner delete: status = %d, want 401", rec.Code)
	}
	if _, ok := s.jobs[id]; !ok {
		t.Fatal("job deleted by non-owner")
	}

	if rec := del("b@x.com"); rec.Code != http.StatusOK {
		t.Fatalf("owner delete: status = %d", rec.Code)
	}
	if _, ok := s.jobs[id]; ok {
		t.Fatal("job still present after owner delete")
	}
}

func TestUpdateJobPreservesBidCount(t *testing.T) {
	s := newFakeStore()
	id := seedJob(s, "b@x.com")
	h := newTestHandler(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/update-job/"+id, strings.NewReader(jobBody))
	h.UpdateJob(rec, req, httprouter.Params{{Key: "id", Value: id}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := s.jobs[id].BidCount; got != 3 {
		t.Errorf("bid_count = %d after upsert, want 3", got)
	}
}

func TestSearchJobsQueryMapping(t *testing.T) {
	s := newFakeStore()
	h := newTestHandler(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/all-jobs?search=web&filter=Web+Development&sort=asc", nil)
	h.SearchJobs(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := models.JobSearch{Text: "web", Category: "Web Development", Sort: "asc"}
	if s.lastSearch != want {
		t.Errorf("criteria = %+v, want %+v", s.lastSearch, want)
	}
}

func TestGetJobsByOwnerScopes(t *testing.T) {
	s := newFakeStore()
	seedJob(s, "b@x.com")
	seedJob(s, "c@x.com")
	h := newTestHandler(s)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/b@x.com", nil)
	h.GetJobsByOwner(rec, req, httprouter.Params{{Key: "email", Value: "b@x.com"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []models.Job
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Buyer.Email != "b@x.com" {
		t.Errorf("got %d jobs, want exactly the owner's one", len(got))
	}
}
