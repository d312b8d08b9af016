package badger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/storage"
)

// Key prefix for stored feature frames.
const featureFramePrefix = "featfr"

// makeFrameKey generates a key for a stored frame.
// Format: prefix:feature:fingerprint:split
func makeFrameKey(key storage.FrameKey) []byte {
	return []byte(fmt.Sprintf("%s:%s:%016x:%s",
		featureFramePrefix, key.Feature, uint64(key.Dataset), key.Split))
}

// makeFeaturePrefix generates the key prefix covering every frame of
// one feature.
func makeFeaturePrefix(feature string) []byte {
	return []byte(featureFramePrefix + ":" + feature + ":")
}

// parseFrameKey recovers the FrameKey from a stored key. Feature names
// never contain a colon, so the layout splits unambiguously.
func parseFrameKey(raw []byte) (storage.FrameKey, error) {
	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 || parts[0] != featureFramePrefix {
		return storage.FrameKey{}, fmt.Errorf("malformed frame key %q", raw)
	}
	fp, err := strconv.ParseUint(parts[2], 16, 64)
	if err != nil {
		return storage.FrameKey{}, fmt.Errorf("malformed frame key %q: %w", raw, err)
	}
	return storage.FrameKey{
		Feature: parts[1],
		Dataset: core.ID(fp),
		Split:   storage.Split(parts[3]),
	}, nil
}
