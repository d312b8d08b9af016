// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/storage"
)

// FeatureStore implements storage.FeatureRepository for BadgerDB.
type FeatureStore struct {
	backend *Backend
}

var _ storage.FeatureRepository = (*FeatureStore)(nil)

// NewFeatureStore creates a new FeatureStore on an open backend.
func NewFeatureStore(backend *Backend) (*FeatureStore, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	if backend.IsClosed() {
		return nil, storage.ErrBackendClosed
	}
	return &FeatureStore{backend: backend}, nil
}

// Close releases store resources. The backend stays open; it is owned
// by the caller.
func (s *FeatureStore) Close() error {
	return nil
}

// PutFrame stores a frame, replacing any frame already stored under
// the same key.
func (s *FeatureStore) PutFrame(ctx context.Context, key storage.FrameKey, frame *core.FeatureFrame) error {
	if frame == nil {
		return storage.ErrNilFrame
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFrameKey(key), storage.MarshalFeatureFrame(frame)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetFrame retrieves a stored frame.
func (s *FeatureStore) GetFrame(ctx context.Context, key storage.FrameKey) (*core.FeatureFrame, error) {
	var frame *core.FeatureFrame
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFrameKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			frame, err = storage.UnmarshalFeatureFrame(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return frame, nil
}

// DeleteFeature removes every frame stored for the named feature.
func (s *FeatureStore) DeleteFeature(ctx context.Context, feature string) (int, error) {
	deleted := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeFeaturePrefix(feature)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
			deleted++
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ListFrames enumerates the keys of every stored frame.
func (s *FeatureStore) ListFrames(ctx context.Context) ([]storage.FrameKey, error) {
	var keys []storage.FrameKey
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(featureFramePrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key, err := parseFrameKey(iter.Item().Key())
			if err != nil {
				return err
			}
			keys = append(keys, key)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return keys, nil
}
