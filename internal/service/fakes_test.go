package service

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-trace-warnings/internal/adapter"
	"github.com/MKhiriev/go-trace-warnings/models"
)

// memoryStore is an in-memory implementation of all repositories. Matches
// are deduplicated by identity like the SQL store does.
type memoryStore struct {
	mu         sync.Mutex
	checkins   []models.Checkin
	matches    []models.TraceTimeIntervalMatch
	metadata   []models.TraceWarningPackageMetadata
	successful *bool

	// failMetadataFor makes CreatePackageMetadata fail once per listed id.
	failMetadataFor map[int64]bool
}

var errStoreCrash = errors.New("store crashed")

func newMemoryStore(checkins ...models.Checkin) *memoryStore {
	s := &memoryStore{failMetadataFor: map[int64]bool{}}
	for i, c := range checkins {
		c.ID = int64(i + 1)
		s.checkins = append(s.checkins, c)
	}
	return s
}

func (s *memoryStore) ListCheckins(context.Context) ([]models.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.checkins), nil
}

func (s *memoryStore) CreateCheckin(_ context.Context, c models.Checkin) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = int64(len(s.checkins) + 1)
	s.checkins = append(s.checkins, c)
	return c.ID, nil
}

func (s *memoryStore) MarkSubmitted(_ context.Context, ids ...int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.checkins {
		if slices.Contains(ids, s.checkins[i].ID) {
			s.checkins[i].Submitted = true
		}
	}
	return nil
}

func (s *memoryStore) FindByLocationIDHash(_ context.Context, hash []byte) ([]models.Checkin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []models.Checkin
	for _, c := range s.checkins {
		if bytes.Equal(c.LocationIDHash, hash) {
			found = append(found, c)
		}
	}
	return found, nil
}

func (s *memoryStore) CreateMatch(_ context.Context, m models.TraceTimeIntervalMatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.matches {
		if existing.CheckinID == m.CheckinID && existing.PackageID == m.PackageID &&
			existing.StartIntervalNumber == m.StartIntervalNumber && existing.EndIntervalNumber == m.EndIntervalNumber &&
			existing.TransmissionRiskLevel == m.TransmissionRiskLevel {
			return false, nil
		}
	}
	m.ID = int64(len(s.matches) + 1)
	s.matches = append(s.matches, m)
	return true, nil
}

func (s *memoryStore) ListMatches(context.Context) ([]models.TraceTimeIntervalMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.matches), nil
}

func (s *memoryStore) ListPackageMetadata(context.Context) ([]models.TraceWarningPackageMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.metadata), nil
}

func (s *memoryStore) CreatePackageMetadata(_ context.Context, meta models.TraceWarningPackageMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMetadataFor[meta.ID] {
		delete(s.failMetadataFor, meta.ID)
		return errStoreCrash
	}
	s.metadata = slices.DeleteFunc(s.metadata, func(m models.TraceWarningPackageMetadata) bool {
		return m.Region == meta.Region && m.ID == meta.ID
	})
	s.metadata = append(s.metadata, meta)
	return nil
}

func (s *memoryStore) DeletePackageMetadata(_ context.Context, region string, ids ...int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata = slices.DeleteFunc(s.metadata, func(m models.TraceWarningPackageMetadata) bool {
		return m.Region == region && slices.Contains(ids, m.ID)
	})
	return nil
}

func (s *memoryStore) DeleteAllPackageMetadata(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata = nil
	return nil
}

func (s *memoryStore) WasRecentDownloadSuccessful(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successful != nil && *s.successful, nil
}

func (s *memoryStore) SetRecentDownloadSuccessful(_ context.Context, successful bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.successful = &successful
	return nil
}

func (s *memoryStore) metadataIDs(region string) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for _, m := range s.metadata {
		if m.Region == region {
			ids = append(ids, m.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

// fakeServer is an in-memory [adapter.WarningPackageAdapter].
type fakeServer struct {
	mu           sync.Mutex
	packages     map[string]map[int64]models.DownloadedPackage
	discoverErr  map[string]error
	downloadErr  map[int64]error
	submitted    []models.SubmissionRequest
	discoverHook func()

	discoverCalls atomic.Int64
	downloadCalls atomic.Int64
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		packages:    map[string]map[int64]models.DownloadedPackage{},
		discoverErr: map[string]error{},
		downloadErr: map[int64]error{},
	}
}

// publish stores a signed package for region and hour id.
func (f *fakeServer) publish(region string, id int64, etag string, contents models.PackageContents) {
	payload, err := adapter.EncodePackage(contents)
	if err != nil {
		panic(err)
	}
	f.put(region, id, models.DownloadedPackage{ETag: etag, Payload: payload, Signature: []byte(goodSignature)})
}

func (f *fakeServer) put(region string, id int64, pkg models.DownloadedPackage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.packages[region] == nil {
		f.packages[region] = map[int64]models.DownloadedPackage{}
	}
	f.packages[region][id] = pkg
}

func (f *fakeServer) Discover(_ context.Context, region string) (models.DiscoveryResult, error) {
	f.discoverCalls.Add(1)
	if f.discoverHook != nil {
		f.discoverHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.discoverErr[region]; err != nil {
		return models.DiscoveryResult{}, err
	}
	var ids []int64
	for id := range f.packages[region] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	if len(ids) == 0 {
		return models.DiscoveryResult{}, nil
	}
	return models.DiscoveryResult{AvailableIDs: ids, OldestID: ids[0]}, nil
}

func (f *fakeServer) Download(_ context.Context, region string, id int64) (models.DownloadedPackage, error) {
	f.downloadCalls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.downloadErr[id]; err != nil {
		return models.DownloadedPackage{}, err
	}
	pkg, ok := f.packages[region][id]
	if !ok {
		return models.DownloadedPackage{}, adapter.ErrNotFound
	}
	return pkg, nil
}

func (f *fakeServer) Submit(_ context.Context, req models.SubmissionRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, req)
	return nil
}

const goodSignature = "valid"

// signatureVerifier accepts only the signature produced by fakeServer.publish.
type signatureVerifier struct{}

func (signatureVerifier) Verify(_, signature []byte) bool {
	return string(signature) == goodSignature
}
