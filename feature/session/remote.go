package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"list-control/core/storage"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Handle is an opaque reference to a stored remote object, obtained from Put
// or discovery and required for in-place updates.
type Handle string

// RemoteStore is the capability set of the remote session store. Every call
// is best-effort from the caller's point of view: failures degrade to the
// local cache and are never surfaced to the end user.
type RemoteStore interface {
	// Put creates a new remote object named after the session id and returns
	// its handle.
	Put(ctx context.Context, rec *Record) (Handle, error)
	// Update overwrites a previously created object in place.
	Update(ctx context.Context, h Handle, rec *Record) error
	// GetByHandle fetches a record by its handle.
	GetByHandle(ctx context.Context, h Handle) (*Record, error)
	// FindBySessionID discovers a record by listing all session objects and
	// scanning for one whose name starts with the id. First match wins.
	FindBySessionID(ctx context.Context, id string) (*Record, Handle, error)
	// Remove deletes a remote object. Used to evict dead sessions on read.
	Remove(ctx context.Context, h Handle) error
}

// objectPrefix namespaces session objects inside the bucket.
const objectPrefix = "sessions/"

// ObjectStore implements RemoteStore on top of an S3-compatible bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
}

// NewObjectStore creates a remote session store backed by the given bucket.
func NewObjectStore(client storage.Client, bucket string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (o *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := o.client.BucketExists(ctx, o.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := o.client.MakeBucket(ctx, o.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

func (o *ObjectStore) write(ctx context.Context, key string, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	_, err = o.client.PutObject(ctx, o.bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to store session object: %w", err)
	}
	return nil
}

// Put creates a new session object. The key embeds the session id so
// discovery by listing works, plus a UUID suffix so the handle is unique.
func (o *ObjectStore) Put(ctx context.Context, rec *Record) (Handle, error) {
	key := fmt.Sprintf("%s%s-%s.json", objectPrefix, rec.ID, uuid.NewString())
	if err := o.write(ctx, key, rec); err != nil {
		return "", err
	}
	return Handle(key), nil
}

// Update overwrites the object at h with the given record.
func (o *ObjectStore) Update(ctx context.Context, h Handle, rec *Record) error {
	return o.write(ctx, string(h), rec)
}

// GetByHandle fetches and decodes the object at h.
func (o *ObjectStore) GetByHandle(ctx context.Context, h Handle) (*Record, error) {
	obj, err := o.client.GetObject(ctx, o.bucket, string(h), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// The SDK reports a missing key lazily, on first read.
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session object: %w", err)
	}
	return Decode(data)
}

// FindBySessionID scans all session objects for a name starting with id.
// This walks every object visible to the shared credential, so keep the
// bucket dedicated to session records.
func (o *ObjectStore) FindBySessionID(ctx context.Context, id string) (*Record, Handle, error) {
	objects := o.client.ListObjects(ctx, o.bucket, minio.ListObjectsOptions{
		Prefix:    objectPrefix,
		Recursive: true,
	})
	for info := range objects {
		if info.Err != nil {
			return nil, "", fmt.Errorf("failed to list session objects: %w", info.Err)
		}
		// Keys are <id>-<uuid>.json. A substring match could hit digits
		// inside another session's UUID suffix, so anchor on the id.
		name := strings.TrimPrefix(info.Key, objectPrefix)
		if !strings.HasPrefix(name, id+"-") {
			continue
		}
		rec, err := o.GetByHandle(ctx, Handle(info.Key))
		if err != nil {
			return nil, "", err
		}
		return rec, Handle(info.Key), nil
	}
	return nil, "", ErrNotFound
}

// Remove deletes the object at h.
func (o *ObjectStore) Remove(ctx context.Context, h Handle) error {
	return o.client.RemoveObject(ctx, o.bucket, string(h), minio.RemoveObjectOptions{})
}
