package service

import (
	"FrameVault/internal/repo"
	"FrameVault/internal/storage"
	"FrameVault/model"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --- fake user repository ---

type fakeUserRepo struct {
	users  map[string]model.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if _, ok := f.users[user.Username]; ok {
		return repo.ErrDuplicate
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &user, nil
}

// --- fake frame repository ---

type fakeFrameRepo struct {
	frames []model.Frame
	nextID uint64

	// failCreateAt makes the nth Create call fail (1-based, 0 disables).
	failCreateAt int
	createCalls  int
}

func newFakeFrameRepo() *fakeFrameRepo {
	return &fakeFrameRepo{}
}

func (f *fakeFrameRepo) Create(ctx context.Context, frame *model.Frame) error {
	f.createCalls++
	if f.failCreateAt != 0 && f.createCalls == f.failCreateAt {
		return errors.New("metadata store unreachable")
	}
	f.nextID++
	frame.ID = f.nextID
	f.frames = append(f.frames, *frame)
	return nil
}

func (f *fakeFrameRepo) FindByIDs(ctx context.Context, ids []uint64) ([]model.Frame, error) {
	wanted := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]model.Frame, 0, len(ids))
	for _, frame := range f.frames {
		if wanted[frame.ID] {
			out = append(out, frame)
		}
	}
	return out, nil
}

func (f *fakeFrameRepo) DeleteByIDs(ctx context.Context, ids []uint64) error {
	wanted := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	kept := f.frames[:0]
	for _, frame := range f.frames {
		if !wanted[frame.ID] {
			kept = append(kept, frame)
		}
	}
	f.frames = kept
	return nil
}

// --- fake object store ---

type fakeStore struct {
	buckets map[string]bool
	objects map[string][]byte

	// failPutAt makes the nth PutObject call fail (1-based, 0 disables).
	failPutAt int
	putCalls  int

	// failRemoveObject makes RemoveObject fail for that object key.
	failRemoveObject string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
	}
}

func objectPath(bucket, object string) string {
	return bucket + "/" + object
}

func (s *fakeStore) EnsureBucket(ctx context.Context, bucket string) error {
	s.buckets[bucket] = true
	return nil
}

func (s *fakeStore) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts storage.PutOptions) error {
	s.putCalls++
	if s.failPutAt != 0 && s.putCalls == s.failPutAt {
		return errors.New("object store unreachable")
	}
	if !s.buckets[bucket] {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectPath(bucket, object)] = data
	return nil
}

func (s *fakeStore) GetObject(ctx context.Context, bucket, object string) (io.ReadCloser, storage.ObjectInfo, error) {
	data, ok := s.objects[objectPath(bucket, object)]
	if !ok {
		return nil, storage.ObjectInfo{}, fmt.Errorf("object %s/%s does not exist", bucket, object)
	}
	info := storage.ObjectInfo{ObjectName: object, Size: int64(len(data))}
	return io.NopCloser(bytes.NewReader(data)), info, nil
}

func (s *fakeStore) RemoveObject(ctx context.Context, bucket, object string) error {
	if s.failRemoveObject != "" && s.failRemoveObject == object {
		return errors.New("object store unreachable")
	}
	// Removing a missing object succeeds, mirroring the minio store.
	delete(s.objects, objectPath(bucket, object))
	return nil
}

func (s *fakeStore) PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://store.local/%s/%s?expires=%s", bucket, object, expiry), nil
}
