package service

import (
	"FrameVault/internal/repo"
	"FrameVault/internal/storage"
	"FrameVault/model"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// MaxUploadFiles is the per-request upload limit.
const MaxUploadFiles = 15

// PresignExpiry is the lifetime of download URLs handed out by List.
const PresignExpiry = time.Hour

const defaultContentType = "image/jpeg"

// UploadInput is one payload to store.
type UploadInput struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// FrameOut is frame metadata plus a short-lived download URL bound to the
// frame's bucket and object key.
type FrameOut struct {
	model.Frame
	URL string `json:"url"`
}

// FrameService orchestrates the frame workflow across the metadata store
// and the object store. The two stores share no transaction: on upload the
// object is written before the metadata row, on delete objects are removed
// before the single bulk metadata delete. The orphan windows that ordering
// leaves behind are accepted, not compensated.
type FrameService struct {
	frames repo.FrameRepo
	store  storage.Store
	log    logrus.FieldLogger
	now    func() time.Time
}

// NewFrameService builds a FrameService.
func NewFrameService(frames repo.FrameRepo, store storage.Store, log logrus.FieldLogger) *FrameService {
	return &FrameService{
		frames: frames,
		store:  store,
		log:    log,
		now:    time.Now,
	}
}

// Upload stores each payload in the day bucket and registers a metadata
// row for it, in input order. Count validation happens before any side
// effect; after that each file commits independently, so a failure on file
// N leaves files 1..N-1 committed and aborts the rest.
func (s *FrameService) Upload(ctx context.Context, files []UploadInput) ([]model.Frame, error) {
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	results := make([]model.Frame, 0, len(files))
	for _, file := range files {
		now := s.now().UTC()
		bucket := storage.BucketFor(now)
		if err := s.store.EnsureBucket(ctx, bucket); err != nil {
			s.log.WithField("bucket", bucket).WithError(err).Error("ensure bucket failed")
			return nil, fmt.Errorf("ensure bucket %s: %w", bucket, err)
		}

		key := storage.NewObjectKey()
		contentType := file.ContentType
		if contentType == "" {
			contentType = defaultContentType
		}
		if err := s.store.PutObject(ctx, bucket, key, file.Reader, file.Size, storage.PutOptions{
			ContentType: contentType,
		}); err != nil {
			s.log.WithFields(logrus.Fields{"bucket": bucket, "object": key}).
				WithError(err).Error("store object failed")
			return nil, fmt.Errorf("store object %s/%s: %w", bucket, key, err)
		}

		frame := model.Frame{FrameName: key, RegisteredAt: now}
		if err := s.frames.Create(ctx, &frame); err != nil {
			// The object stays behind as an orphan.
			s.log.WithFields(logrus.Fields{"bucket": bucket, "object": key}).
				WithError(err).Error("register frame failed")
			return nil, fmt.Errorf("register frame %s/%s: %w", bucket, key, err)
		}
		results = append(results, frame)
	}
	return results, nil
}

// List returns the frames matching ids, each with a fresh presigned
// download URL. Unknown ids are silently omitted; result order is the
// metadata store's, not the request's.
func (s *FrameService) List(ctx context.Context, ids []uint64) ([]FrameOut, error) {
	frames, err := s.frames.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]FrameOut, 0, len(frames))
	for _, frame := range frames {
		bucket := storage.BucketFor(frame.RegisteredAt)
		url, err := s.store.PresignedGetObject(ctx, bucket, frame.FrameName, PresignExpiry)
		if err != nil {
			s.log.WithFields(logrus.Fields{"bucket": bucket, "object": frame.FrameName}).
				WithError(err).Error("presign failed")
			return nil, fmt.Errorf("presign %s/%s: %w", bucket, frame.FrameName, err)
		}
		out = append(out, FrameOut{Frame: frame, URL: url})
	}
	return out, nil
}

// Delete removes the object payload of every frame matching ids, then
// drops the metadata rows in one bulk delete. Unknown ids are skipped
// silently and already-missing objects count as removed. A removal failure
// aborts before the metadata delete, leaving the remaining rows dangling;
// that gap is accepted and logged rather than rolled back.
func (s *FrameService) Delete(ctx context.Context, ids []uint64) error {
	frames, err := s.frames.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, frame := range frames {
		bucket := storage.BucketFor(frame.RegisteredAt)
		if err := s.store.RemoveObject(ctx, bucket, frame.FrameName); err != nil {
			s.log.WithFields(logrus.Fields{
				"frame_id": frame.ID,
				"bucket":   bucket,
				"object":   frame.FrameName,
			}).WithError(err).Error("remove object failed")
			return fmt.Errorf("remove object %s/%s: %w", bucket, frame.FrameName, err)
		}
	}
	return s.frames.DeleteByIDs(ctx, ids)
}
